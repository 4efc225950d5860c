/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package game

// SquareOf maps (file, rank) pairs, both in [0, BoardWidth), to their
// offset in the 16x16 bordered array.
func SquareOf(f, r int) Square {
	return Square(ArrWidth*(FilOrigin+f) + RnkOrigin + r)
}

// FileOf recovers the file of a square.
func FileOf(sq Square) int {
	return int((sq>>4)&15) - FilOrigin
}

// RankOf recovers the rank of a square.
func RankOf(sq Square) int {
	return int(sq&15) - RnkOrigin
}

// dir holds the eight king-neighborhood offsets in the order
// SW, W, NW, S, N, SE, E, NE (signed byte offsets into the 16x16 array;
// +1 is one rank north, +ArrWidth one file east).
var dir = [8]int8{-ArrWidth - 1, -ArrWidth, -ArrWidth + 1, -1, 1, ArrWidth - 1, ArrWidth, ArrWidth + 1}

// DirOf returns the i-th king-neighborhood offset, i in [0, 8).
func DirOf(i int) int8 { return dir[i] }

// beam holds the laser propagation offset for each King orientation:
// NN, EE, SS, WW.
var beam = [4]int8{1, ArrWidth, -1, -ArrWidth}

// BeamOf returns the propagation offset for a facing direction.
func BeamOf(o Orientation) int8 { return beam[o] }

// reflect[beam_dir][pawn_ori] gives the outgoing beam direction after a
// laser traveling beam_dir strikes a Pawn facing pawn_ori, or -1 if the
// beam struck the Pawn's back (destroying it).
var reflect = [4][4]int8{
	//  NW  NE  SE  SW
	{-1, -1, int8(EE), int8(WW)}, // NN
	{int8(NN), -1, -1, int8(SS)}, // EE
	{int8(WW), int8(EE), -1, -1}, // SS
	{-1, int8(NN), int8(SS), -1}, // WW
}

// ReflectOf returns the reflected beam direction, or -1 for "hit the back".
func ReflectOf(beamDir, pawnOri Orientation) int8 {
	return reflect[beamDir][pawnOri]
}

// AddOffset steps a square by a signed array offset.
func AddOffset(sq Square, off int8) Square {
	return Square(int(sq) + int(off))
}
