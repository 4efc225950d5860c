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

package search

import (
	"testing"

	. "github.com/leiserchess/engine/internal/game"
)

func TestBestMoveHistoryUpdateAndGet(t *testing.T) {
	h := NewBestMoveHistory()
	if got := h.Get(White, Pawn, SquareOf(4, 4), NE); got != 0 {
		t.Fatalf("fresh table entry = %d, want 0", got)
	}
	h.Update(White, Pawn, SquareOf(4, 4), NE, 3)
	if got := h.Get(White, Pawn, SquareOf(4, 4), NE); got != 1<<3 {
		t.Fatalf("after Update(depth=3) got %d, want %d", got, uint32(1<<3))
	}
	h.Update(White, Pawn, SquareOf(4, 4), NE, 2)
	if got := h.Get(White, Pawn, SquareOf(4, 4), NE); got != 1<<3+1<<2 {
		t.Fatalf("accumulated bonus = %d, want %d", got, uint32(1<<3+1<<2))
	}
	if got := h.Get(Black, Pawn, SquareOf(4, 4), NE); got != 0 {
		t.Fatalf("a different color's slot must stay independent, got %d", got)
	}
}

func TestBestMoveHistoryUpdateClampsDepth(t *testing.T) {
	h := NewBestMoveHistory()
	h.Update(White, King, SquareOf(5, 5), NN, 99)
	if got := h.Get(White, King, SquareOf(5, 5), NN); got != 1<<20 {
		t.Fatalf("depth above 20 should clamp to 20, got %d want %d", got, uint32(1<<20))
	}
}

func TestBestMoveHistoryClear(t *testing.T) {
	h := NewBestMoveHistory()
	h.Update(White, Pawn, SquareOf(1, 1), NE, 5)
	h.Clear()
	if got := h.Get(White, Pawn, SquareOf(1, 1), NE); got != 0 {
		t.Fatalf("Clear should zero every entry, got %d", got)
	}
}

func TestKillerTablePushesPrimaryToSecondary(t *testing.T) {
	k := NewKillerTable()
	mvA := NewMove(Pawn, RotNone, SquareOf(1, 1), SquareOf(1, 2))
	mvB := NewMove(Pawn, RotNone, SquareOf(2, 2), SquareOf(2, 3))

	k.Update(5, mvA)
	if a, b := k.Get(5); a != mvA || b != MoveNone {
		t.Fatalf("after first update got (%v,%v), want (%v,%v)", a, b, mvA, MoveNone)
	}

	k.Update(5, mvB)
	if a, b := k.Get(5); a != mvB || b != mvA {
		t.Fatalf("after second update got (%v,%v), want (%v,%v)", a, b, mvB, mvA)
	}

	k.Update(5, mvB)
	if a, b := k.Get(5); a != mvB || b != mvA {
		t.Fatalf("re-recording the primary killer must not shuffle slots, got (%v,%v)", a, b)
	}
}

func TestKillerTableOutOfRangePlyIsIgnored(t *testing.T) {
	k := NewKillerTable()
	mv := NewMove(Pawn, RotNone, SquareOf(1, 1), SquareOf(1, 2))
	k.Update(-1, mv)
	k.Update(MaxPlyInSearch, mv)
	if a, b := k.Get(-1); a != MoveNone || b != MoveNone {
		t.Fatalf("out of range ply should read back as empty, got (%v,%v)", a, b)
	}
}

func TestKillerTableClear(t *testing.T) {
	k := NewKillerTable()
	mv := NewMove(Pawn, RotNone, SquareOf(1, 1), SquareOf(1, 2))
	k.Update(0, mv)
	k.Clear()
	if a, b := k.Get(0); a != MoveNone || b != MoveNone {
		t.Fatalf("Clear should reset every ply, got (%v,%v)", a, b)
	}
}
