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

// Package game implements the Leiserchess board representation and move
// mechanics: square/piece encoding on a 16x16 bordered array, Zobrist
// hashing, the laser engine, move generation and make-move.
package game

import "fmt"

// Board geometry. The 10x10 playing area sits centered inside a 16x16
// array so off-board detection is a pure array lookup against the
// Invalid sentinel piece type.
const (
	ArrWidth   = 16
	ArrSize    = ArrWidth * ArrWidth
	BoardWidth = 10
	FilOrigin  = (ArrWidth - BoardWidth) / 2
	RnkOrigin  = (ArrWidth - BoardWidth) / 2

	NumberPawns = 7

	// MaxNumMoves bounds the move list: 7*(8+3) + 1*(8+4) = 89, rounded up.
	MaxNumMoves = 128
)

// Square is a byte index into the 16x16 array.
type Square uint8

// String renders a square in "<file><rank>" notation, e.g. "a0", "j9".
func (s Square) String() string {
	f := FileOf(s)
	r := RankOf(s)
	if f >= 0 {
		return fmt.Sprintf("%c%d", 'a'+byte(f), r)
	}
	return fmt.Sprintf("%c%d", 'z'+f+1, r)
}

// PType is the piece type occupying a square.
type PType uint8

const (
	Empty PType = iota
	Pawn
	King
	Invalid
)

func (t PType) String() string {
	switch t {
	case Empty:
		return "empty"
	case Pawn:
		return "pawn"
	case King:
		return "king"
	default:
		return "invalid"
	}
}

// Color identifies a side.
type Color uint8

const (
	White Color = iota
	Black
)

// Opp returns the opposing color.
func (c Color) Opp() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Orientation is a 2-bit facing: King uses the NN/EE/SS/WW compass, Pawn
// uses the NW/NE/SE/SW diagonals. Both share the same numeric space so a
// rotation is just (ori+rot) mod 4 regardless of piece type.
type Orientation uint8

const (
	NN Orientation = iota
	EE
	SS
	WW
)

const (
	NW Orientation = iota
	NE
	SE
	SW
)

var kingOriRep = [2][4]string{{"NN", "EE", "SS", "WW"}, {"nn", "ee", "ss", "ww"}}
var pawnOriRep = [2][4]string{{"NW", "NE", "SE", "SW"}, {"nw", "ne", "se", "sw"}}

// Piece packs color (bit 4), ptype (bits 2-3) and orientation (bits 0-1)
// into 5 significant bits, matching the original 256x32 Zobrist table shape.
type Piece uint8

const (
	colorShift = 4
	colorMask  = 1
	ptypeShift = 2
	ptypeMask  = 3
	oriShift   = 0
	oriMask    = 3
)

// NewPiece builds a Piece from its components.
func NewPiece(c Color, t PType, o Orientation) Piece {
	return Piece((uint8(c)&colorMask)<<colorShift | (uint8(t)&ptypeMask)<<ptypeShift | (uint8(o)&oriMask)<<oriShift)
}

// InvalidPiece is the sentinel occupying border squares.
var InvalidPiece = NewPiece(White, Invalid, 0)

// Color returns the piece's color. Meaningless for Empty/Invalid.
func (p Piece) Color() Color { return Color((uint8(p) >> colorShift) & colorMask) }

// Type returns the piece type.
func (p Piece) Type() PType { return PType((uint8(p) >> ptypeShift) & ptypeMask) }

// Ori returns the piece's orientation.
func (p Piece) Ori() Orientation { return Orientation((uint8(p) >> oriShift) & oriMask) }

// WithOri returns a copy of p rotated to the given orientation.
func (p Piece) WithOri(o Orientation) Piece {
	return NewPiece(p.Color(), p.Type(), o)
}

func (p Piece) String() string {
	switch p.Type() {
	case Empty:
		return "--"
	case Invalid:
		return "##"
	case King:
		return kingOriRep[p.Color()][p.Ori()]
	case Pawn:
		return pawnOriRep[p.Color()][p.Ori()]
	}
	return "??"
}

// Rotation enumerates the three in-place rotations plus "none".
type Rotation uint8

const (
	RotNone Rotation = iota
	RotRight
	RotUTurn
	RotLeft
)

// Move packs {ptype, rotation, from, to} into 20 bits, matching the
// original move_t layout so sort-key packing into the high 32 bits of a
// 64-bit word is a direct extension.
type Move uint32

const (
	moveMask = 0xfffff

	ptypeMvShift = 18
	ptypeMvMask  = 3
	rotShift     = 16
	rotMask      = 3
	fromShift    = 8
	fromMask     = 0xff
	toShift      = 0
	toMask       = 0xff
)

// MoveNone is the zero move, never produced by the generator.
const MoveNone Move = 0

// NewMove builds a packed move.
func NewMove(t PType, rot Rotation, from, to Square) Move {
	return Move(uint32(t&ptypeMvMask)<<ptypeMvShift |
		uint32(rot&rotMask)<<rotShift |
		uint32(from&fromMask)<<fromShift |
		uint32(to&toMask)<<toShift)
}

func (m Move) PType() PType     { return PType((m >> ptypeMvShift) & ptypeMvMask) }
func (m Move) Rot() Rotation    { return Rotation((m >> rotShift) & rotMask) }
func (m Move) From() Square     { return Square((m >> fromShift) & fromMask) }
func (m Move) To() Square       { return Square((m >> toShift) & toMask) }
func (m Move) IsRotation() bool { return m.From() == m.To() && m.Rot() != RotNone }
func (m Move) IsNull() bool     { return m.From() == m.To() && m.Rot() == RotNone }

// String renders a move in the original notation: "<from><to>" for
// translations, "<sq>{R|U|L}" for rotations, bare "<sq>" for the King
// null move.
func (m Move) String() string {
	from, to := m.From(), m.To()
	if from != to {
		return from.String() + to.String()
	}
	switch m.Rot() {
	case RotNone:
		return from.String()
	case RotRight:
		return from.String() + "R"
	case RotUTurn:
		return from.String() + "U"
	case RotLeft:
		return from.String() + "L"
	}
	return from.String() + "?"
}

// SortableMove packs a 32-bit sort key above the 20-bit move payload so a
// []SortableMove can be sorted purely on the high bits, then truncated
// back to a Move with GetMove.
type SortableMove uint64

// SetSortKey returns a sortable move with the given 32-bit key installed
// above m's bits.
func SetSortKey(m Move, key uint32) SortableMove {
	return SortableMove(uint64(key)<<32 | uint64(m&moveMask))
}

// GetMove strips the sort key, recovering the plain Move.
func GetMove(sm SortableMove) Move {
	return Move(uint64(sm) & moveMask)
}

// Victims records the pieces removed by a move: a stomped Pawn displaced
// by translation, and/or a zapped piece hit by the mover's laser.
type Victims struct {
	Stomped Piece
	Zapped  Piece
}

const sentinelByte = 0xff

// KO is returned by MakeMove when the move reproduced a prior position
// with only the side to move toggled and caused no victims.
func KO() Victims { return Victims{Piece(sentinelByte), Piece(sentinelByte)} }

// Illegal marks a move that was never legally attempted.
func Illegal() Victims { return Victims{Piece(sentinelByte), Piece(sentinelByte)} }

// IsKO reports whether v is the KO sentinel. Bitwise identical to Illegal;
// callers must track which code path produced the value.
func (v Victims) IsKO() bool { return v.Stomped == sentinelByte || v.Zapped == sentinelByte }

// IsIllegal reports whether v is the Illegal sentinel.
func (v Victims) IsIllegal() bool { return v.Stomped == sentinelByte || v.Zapped == sentinelByte }

// Zero reports that neither slot holds a victim.
func (v Victims) Zero() bool { return v.Stomped == 0 && v.Zapped == 0 }

// Exists reports that at least one slot holds a victim (not the sentinel).
func (v Victims) Exists() bool { return (v.Stomped > 0 && v.Stomped != sentinelByte) || (v.Zapped > 0 && v.Zapped != sentinelByte) }

// Key is the 64-bit Zobrist hash of a Position.
type Key uint64

// Value is a search/evaluation score from the point of view of the side to
// move (the evaluator negates its White-minus-Black sum when Black is to
// move, spec.md 4.6).
type Value int32

// ValueNA marks "no value stored"; TT Put() treats it as "preserve existing".
const ValueNA Value = -1 << 30

// ValueInf is larger in magnitude than any real score, used to initialize
// alpha/beta at the root.
const ValueInf Value = 1 << 20

// ValueType is the transposition-table bound kind recorded for a score.
type ValueType uint8

const (
	ValueNone ValueType = iota
	ValueExact
	ValueAlpha // upper bound (fail-low, best_score <= alpha)
	ValueBeta  // lower bound (fail-high, best_score >= beta)
)

func (t ValueType) String() string {
	switch t {
	case ValueExact:
		return "exact"
	case ValueAlpha:
		return "alpha"
	case ValueBeta:
		return "beta"
	default:
		return "none"
	}
}
