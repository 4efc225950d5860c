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

// GenerateAll enumerates every legal-shaped move for the side to move:
// Pawn translations (including stomps) and rotations for unpinned Pawns,
// King translations to empty neighbors, King rotations, and exactly one
// King null move, appended last. Moves that would zap the mover's own
// King are not filtered here; search discovers and scores those as
// blunders, per spec.md 4.4.
func GenerateAll(p *Position, out []SortableMove) int {
	colorToMove := p.ColorToMove()

	var laserMap [ArrSize]byte
	for i := range laserMap {
		laserMap[i] = 4
	}
	for f := 0; f < BoardWidth; f++ {
		for r := 0; r < BoardWidth; r++ {
			laserMap[SquareOf(f, r)] = 0
		}
	}
	MarkLaserPath(p, &laserMap, colorToMove.Opp(), 1)

	n := 0
	for i := 0; i < NumberPawns; i++ {
		sq := p.Plocs[colorToMove][i]
		if sq == 0 {
			continue
		}
		if laserMap[sq] == 1 {
			continue // pinned
		}
		for d := 0; d < 8; d++ {
			dest := AddOffset(sq, DirOf(d))
			t := p.Board[dest].Type()
			if t == Invalid || t == King {
				continue
			}
			if t == Pawn && p.Board[dest].Color() == colorToMove {
				continue
			}
			out[n] = SetSortKey(NewMove(Pawn, RotNone, sq, dest), 0)
			n++
		}
		for rot := Rotation(1); rot < 4; rot++ {
			out[n] = SetSortKey(NewMove(Pawn, rot, sq, sq), 0)
			n++
		}
	}

	kingSq := p.Kloc[colorToMove]
	for d := 0; d < 8; d++ {
		dest := AddOffset(kingSq, DirOf(d))
		if p.Board[dest].Type() != Empty {
			continue
		}
		out[n] = SetSortKey(NewMove(King, RotNone, kingSq, dest), 0)
		n++
	}
	for rot := Rotation(1); rot < 4; rot++ {
		out[n] = SetSortKey(NewMove(King, rot, kingSq, kingSq), 0)
		n++
	}
	out[n] = SetSortKey(NewMove(King, RotNone, kingSq, kingSq), 0)
	n++

	return n
}
