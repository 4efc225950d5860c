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

func TestMakeMoveTranslationUpdatesBoardAndKey(t *testing.T) {
	old := NewStartPosition()
	var pawnSq Square
	for _, sq := range old.Plocs[White] {
		if sq != 0 {
			pawnSq = sq
			break
		}
	}
	f, r := FileOf(pawnSq), RankOf(pawnSq)
	dest := SquareOf(f-1, r)
	if old.Board[dest].Type() != Empty {
		t.Fatalf("test assumption broken: %v is not empty ahead of %v", dest, pawnSq)
	}

	var next Position
	mv := NewMove(Pawn, RotNone, pawnSq, dest)
	victims := MakeMove(old, &next, mv, true)

	if victims.IsKO() {
		t.Fatalf("a plain opening translation should never be a KO")
	}
	if next.Board[dest].Type() != Pawn || next.Board[dest].Color() != White {
		t.Fatalf("destination %v should hold a White pawn after the move", dest)
	}
	if next.Board[pawnSq].Type() != Empty {
		t.Fatalf("origin %v should be empty after the move", pawnSq)
	}
	if want := ComputeZobKey(&next.Board, next.ColorToMove()); next.Key != want {
		t.Fatalf("key %x after move does not match recompute %x", next.Key, want)
	}
	if next.ColorToMove() != Black {
		t.Fatalf("side to move should flip to Black after White's move")
	}
}

func TestMakeMoveRotationPreservesSquareOccupant(t *testing.T) {
	old := NewStartPosition()
	kingSq := old.Kloc[White]
	origOri := old.Board[kingSq].Ori()

	var next Position
	mv := NewMove(King, RotRight, kingSq, kingSq)
	MakeMove(old, &next, mv, true)

	if next.Board[kingSq].Type() != King || next.Board[kingSq].Color() != White {
		t.Fatalf("king should remain on %v after rotating in place", kingSq)
	}
	wantOri := Orientation((int(origOri) + int(RotRight)) % 4)
	if got := next.Board[kingSq].Ori(); got != wantOri {
		t.Fatalf("orientation after RotRight = %v, want %v", got, wantOri)
	}
}

func TestMakeMoveStompRemovesOpponentPawn(t *testing.T) {
	p := NewEmptyPosition()
	p.place(White, King, EE, SquareOf(0, 0))
	p.place(Black, King, WW, SquareOf(9, 9))
	p.place(White, Pawn, NE, SquareOf(4, 4))
	p.place(Black, Pawn, SW, SquareOf(4, 5))
	p.Key = ComputeZobKey(&p.Board, p.ColorToMove())

	var next Position
	mv := NewMove(Pawn, RotNone, SquareOf(4, 4), SquareOf(4, 5))
	victims := MakeMove(p, &next, mv, true)

	if victims.Stomped.Type() != Pawn || victims.Stomped.Color() != Black {
		t.Fatalf("expected a stomped Black pawn, got %v", victims.Stomped)
	}
	if next.Board[SquareOf(4, 5)].Type() != Pawn || next.Board[SquareOf(4, 5)].Color() != White {
		t.Fatalf("attacker should occupy %v after stomping", SquareOf(4, 5))
	}
	if next.Board[SquareOf(4, 4)].Type() != Empty {
		t.Fatalf("stomped pawn's square %v should be empty", SquareOf(4, 4))
	}
	for _, sq := range next.Plocs[Black] {
		if sq != 0 {
			t.Fatalf("Black should have no pawns left in Plocs, found %v", sq)
		}
	}
}

// kingsOnlyPosition places two Kings far apart on different ranks, each
// firing along its own empty rank so neither laser can strike anything,
// isolating the KO check from any pawn/laser interaction.
func kingsOnlyPosition() *Position {
	p := NewEmptyPosition()
	p.place(White, King, WW, SquareOf(9, 0))
	p.place(Black, King, EE, SquareOf(0, 9))
	p.Key = ComputeZobKey(&p.Board, p.ColorToMove())
	return p
}

func TestKingNullMoveIsKOWhenRequested(t *testing.T) {
	// A King null move changes nothing but the side to move and Ply, so
	// if it produces no victims MakeMove must report it as a KO once
	// useKo is requested, per spec.md 4.5.
	p := kingsOnlyPosition()
	kingSq := p.Kloc[White]
	mv := NewMove(King, RotNone, kingSq, kingSq)

	var next Position
	victims := MakeMove(p, &next, mv, true)
	if !victims.IsKO() {
		t.Fatalf("expected a King null move with no victims to be reported as KO")
	}
}

func TestKingNullMoveWithoutKoDetectionLeavesPositionUnchanged(t *testing.T) {
	p := kingsOnlyPosition()
	kingSq := p.Kloc[White]
	mv := NewMove(King, RotNone, kingSq, kingSq)

	var next Position
	victims := MakeMove(p, &next, mv, false)
	if victims.IsKO() {
		t.Fatalf("useKo=false must never report a KO")
	}
	if next.Board[kingSq] != p.Board[kingSq] {
		t.Fatalf("a null move should leave the King's square unchanged")
	}
}
