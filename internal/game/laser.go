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

import "math"

// walkLaser fires a beam from shooter's King in its current facing and
// walks it until it strikes a King, strikes a Pawn on its back, or runs
// off the board. visit, if non-nil, is called once per square entered, in
// order, starting with the shooter's own King square; the three external
// callers (mark mode, heuristic mode, fire) share this one traversal, the
// first two through their visit callbacks and fire with a nil visit that
// only uses the stop square, per spec.md 9's design note.
func walkLaser(p *Position, shooter Color, visit func(sq Square, piece Piece)) (stopSq Square, stopPiece Piece) {
	sq := p.Kloc[shooter]
	piece := p.Board[sq]
	if visit != nil {
		visit(sq, piece)
	}
	beamDir := piece.Ori()
	for {
		sq = AddOffset(sq, BeamOf(beamDir))
		piece = p.Board[sq]
		if visit != nil {
			visit(sq, piece)
		}
		switch piece.Type() {
		case Empty:
			continue
		case Pawn:
			nd := ReflectOf(beamDir, piece.Ori())
			if nd < 0 {
				return sq, piece
			}
			beamDir = Orientation(nd)
		case King:
			return sq, piece
		case Invalid:
			return sq, piece
		}
	}
}

// Fire walks the shooter's laser and returns the square of the piece it
// destroys, or 0 if the beam exits the board harmlessly.
func Fire(p *Position, shooter Color) Square {
	stopSq, stopPiece := walkLaser(p, shooter, nil)
	if stopPiece.Type() == Invalid {
		return 0
	}
	return stopSq
}

// MarkLaserPath ORs mask into laserMap for every square the shooter's
// laser enters, used by the move generator to find pinned pawns.
func MarkLaserPath(p *Position, laserMap *[ArrSize]byte, shooter Color, mask byte) {
	walkLaser(p, shooter, func(sq Square, _ Piece) {
		laserMap[sq] |= mask
	})
}

// Heuristics accumulates the three laser-derived evaluation quantities
// for one shooter color, computed with respect to the opponent's King.
type Heuristics struct {
	PawnPin     int
	HAttackable float64
	Mobility    int
}

// hDist is the harmonic-ish attackability distance between two squares:
// 1/(|df|+1) + 1/(|dr|+1), expressed as a single fraction to avoid a
// division by zero.
func hDist(a, b Square) float64 {
	df := math.Abs(float64(FileOf(a)-FileOf(b))) + 1
	dr := math.Abs(float64(RankOf(a)-RankOf(b))) + 1
	return (dr + df) / (dr * df)
}

// MarkLaserPathHeuristics walks shooter's laser and accumulates h.PawnPin,
// h.HAttackable and h.Mobility with respect to the opponent's King, per
// spec.md 4.3. Caller initializes h.Mobility to 9 before calling.
func MarkLaserPathHeuristics(p *Position, shooter Color, h *Heuristics) {
	targetKingSq := p.Kloc[shooter.Opp()]
	kf, kr := FileOf(targetKingSq), RankOf(targetKingSq)
	left, right := kf-1, kf+1
	bottom, top := kr-1, kr+1

	for d := 0; d < 8; d++ {
		nsq := AddOffset(targetKingSq, DirOf(d))
		if p.Board[nsq].Type() == Invalid {
			h.Mobility--
		}
	}

	walkLaser(p, shooter, func(sq Square, piece Piece) {
		f, r := FileOf(sq), RankOf(sq)
		inBox := f >= left && f <= right && r >= bottom && r <= top
		if inBox && piece.Type() != Invalid {
			h.Mobility--
		}
		if piece.Type() == Invalid {
			return
		}
		h.HAttackable += hDist(sq, targetKingSq)
		if piece.Type() == Pawn && piece.Color() != shooter {
			h.PawnPin++
		}
	})
}
