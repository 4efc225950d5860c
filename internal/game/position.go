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

import "fmt"

// Position is the immutable-by-value game state. MakeMove copies a
// predecessor into a caller-provided fresh Position and sets History to
// point at it; the chain is read-only and used only for repetition
// detection (spec.md 3, 9).
type Position struct {
	Board   [ArrSize]Piece
	History *Position
	Key     Key
	Ply     int16
	LastMove Move
	Victims  Victims
	Kloc     [2]Square
	Plocs    [2][NumberPawns]Square
}

// ColorToMove derives the side to move from the ply parity: even is White.
func (p *Position) ColorToMove() Color {
	if p.Ply&1 == 0 {
		return White
	}
	return Black
}

// NewEmptyPosition returns a Position whose playable squares are Empty and
// whose border is Invalid, with no Kings placed yet. Used by builders.
func NewEmptyPosition() *Position {
	p := &Position{}
	for sq := 0; sq < ArrSize; sq++ {
		p.Board[sq] = InvalidPiece
	}
	for f := 0; f < BoardWidth; f++ {
		for r := 0; r < BoardWidth; r++ {
			p.Board[SquareOf(f, r)] = NewPiece(White, Empty, 0)
		}
	}
	p.Key = ComputeZobKey(&p.Board, White)
	return p
}

// place puts a piece on the board and updates Kloc/Plocs bookkeeping used
// only while building a position (not part of the make-move hot path).
func (p *Position) place(c Color, t PType, o Orientation, sq Square) {
	p.Board[sq] = NewPiece(c, t, o)
	switch t {
	case King:
		p.Kloc[c] = sq
	case Pawn:
		for i := 0; i < NumberPawns; i++ {
			if p.Plocs[c][i] == 0 {
				p.Plocs[c][i] = sq
				break
			}
		}
	}
}

// NewStartPosition builds the standard Leiserchess starting layout: one
// King and seven Pawns per side, placed symmetrically across the board's
// center with alternating diagonal Pawn orientations. No FEN source was
// retrieved for this spec (see SPEC_FULL.md 3); this layout is a documented
// design decision, not a literal translation of anything retrieved.
func NewStartPosition() *Position {
	p := NewEmptyPosition()

	// Facing NN/SS along file 9/0 keeps each King's opening laser
	// travelling through the empty half of the board rather than back
	// through its own stacked pawn file, where a chain of reflections
	// could otherwise destroy one of its own pawns before either side
	// has made a move.
	p.place(White, King, NN, SquareOf(9, 4))
	p.place(Black, King, SS, SquareOf(0, 5))

	whitePawnRanks := [NumberPawns]int{0, 1, 2, 3, 4, 5, 6}
	for i, r := range whitePawnRanks {
		o := NE
		if i%2 == 1 {
			o = NW
		}
		p.place(White, Pawn, o, SquareOf(8, r))
	}

	blackPawnRanks := [NumberPawns]int{3, 4, 5, 6, 7, 8, 9}
	for i, r := range blackPawnRanks {
		o := SW
		if i%2 == 1 {
			o = SE
		}
		p.place(Black, Pawn, o, SquareOf(1, r))
	}

	p.Key = ComputeZobKey(&p.Board, p.ColorToMove())
	return p
}

// CheckInvariants walks the board and returns an error for the first violation of
// spec.md 3's invariants: Zobrist key matches recomputation, Kloc points at
// a King of the right color, every Plocs slot either is 0 or names a Pawn
// of the right color on the board and vice versa, and the border is
// unchanged. Gated by callers (tests, debug tooling) - never on the hot
// path, mirroring the original's assert_pawn_locs.
func (p *Position) CheckInvariants() error {
	if want := ComputeZobKey(&p.Board, p.ColorToMove()); want != p.Key {
		return fmt.Errorf("zobrist key mismatch: have %x want %x", p.Key, want)
	}
	for c := White; c <= Black; c++ {
		if p.Board[p.Kloc[c]].Type() != King || p.Board[p.Kloc[c]].Color() != c {
			return fmt.Errorf("kloc[%s] does not hold a %s king", c, c)
		}
	}
	seen := map[Square]bool{}
	for c := White; c <= Black; c++ {
		for _, sq := range p.Plocs[c] {
			if sq == 0 {
				continue
			}
			if p.Board[sq].Type() != Pawn || p.Board[sq].Color() != c {
				return fmt.Errorf("plocs[%s] names %v which is not a %s pawn", c, sq, c)
			}
			seen[sq] = true
		}
	}
	for f := 0; f < BoardWidth; f++ {
		for r := 0; r < BoardWidth; r++ {
			sq := SquareOf(f, r)
			if p.Board[sq].Type() == Pawn && !seen[sq] {
				return fmt.Errorf("pawn on %v missing from plocs", sq)
			}
		}
	}
	for sq := 0; sq < ArrSize; sq++ {
		f := FileOf(Square(sq))
		r := RankOf(Square(sq))
		onBoard := f >= 0 && f < BoardWidth && r >= 0 && r < BoardWidth
		if !onBoard && p.Board[sq].Type() != Invalid {
			return fmt.Errorf("border square %d is not invalid", sq)
		}
	}
	return nil
}
