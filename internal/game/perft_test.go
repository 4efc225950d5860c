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

import "testing"

func TestPerftDepthZeroIsOne(t *testing.T) {
	p := NewStartPosition()
	if got := Perft(p, 0); got != 1 {
		t.Fatalf("Perft(depth=0) = %d, want 1", got)
	}
}

func TestPerftDepthOneMatchesMoveCount(t *testing.T) {
	// Perft never applies Ko detection (it walks every generated move with
	// LowLevelMakeMove directly), so the comparison count here must be the
	// raw move count, not a Ko-filtered legal count.
	p := NewStartPosition()
	buf := make([]SortableMove, maxMovesTestBuf)
	n := GenerateAll(p, buf)

	if got := Perft(p, 1); got != uint64(n) {
		t.Fatalf("Perft(depth=1) = %d, want %d (moves generated directly)", got, n)
	}
}

func TestPerftIsStableAcrossTwoRuns(t *testing.T) {
	p := NewStartPosition()
	a := Perft(p, 2)
	b := Perft(p, 2)
	if a != b {
		t.Fatalf("Perft(depth=2) is not deterministic: %d != %d", a, b)
	}
}
