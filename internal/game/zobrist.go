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

import "math/rand"

// zob[sq][piece] and zobColor are the Zobrist random table. Filled once by
// initZob from a deterministic PRNG so replays and perft runs are
// reproducible across processes, per spec.md 4.2.
var zob [ArrSize][1 << 5]Key
var zobColor Key

// zobristSeed is fixed so every process computes the same table; the
// original C used a platform PRNG seeded for the run, but this core never
// persists state across processes, so determinism matters more than
// variety.
const zobristSeed = 1070372

func init() {
	initZob()
}

func initZob() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for i := 0; i < ArrSize; i++ {
		for j := 0; j < (1 << 5); j++ {
			zob[i][j] = Key(rng.Uint64())
		}
	}
	zobColor = Key(rng.Uint64())
}

// ComputeZobKey recomputes the Zobrist key for a board from scratch,
// XORing zob[sq][piece] over every playable square and zobColor when
// Black is to move. Used by invariant checks and tests, never on the
// hot incremental-update path.
func ComputeZobKey(board *[ArrSize]Piece, colorToMove Color) Key {
	var key Key
	for f := 0; f < BoardWidth; f++ {
		for r := 0; r < BoardWidth; r++ {
			sq := SquareOf(f, r)
			key ^= zob[sq][board[sq]]
		}
	}
	if colorToMove == Black {
		key ^= zobColor
	}
	return key
}
