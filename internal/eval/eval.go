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

// Package eval implements the static evaluation function, scoring a
// Position from White's point of view before the side-to-move negation
// (spec.md 4.6).
package eval

import (
	"math"
	"math/rand"

	"github.com/leiserchess/engine/internal/config"
	. "github.com/leiserchess/engine/internal/game"
)

const bonusMultiplier = 0.1

// pcentral rewards a Pawn for sitting near the board's center.
func pcentral(f, r int) int32 {
	df := BoardWidth/2 - f - 1
	if df < 0 {
		df = f - BoardWidth/2
	}
	dr := BoardWidth/2 - r - 1
	if dr < 0 {
		dr = r - BoardWidth/2
	}
	bonus := 1 - math.Sqrt(float64(df*df+dr*dr))*bonusMultiplier
	return int32(float64(config.Settings.Eval.PCentral) * bonus)
}

func between(c, a, b int) bool {
	return (c >= a && c <= b) || (c <= a && c >= b)
}

// kface rewards a King for facing toward the opposing King.
func kface(p *Position, sq Square) int32 {
	piece := p.Board[sq]
	f, r := FileOf(sq), RankOf(sq)
	oppSq := p.Kloc[piece.Color().Opp()]
	deltaFil := FileOf(oppSq) - f
	deltaRnk := RankOf(oppSq) - r

	var bonus int32
	switch piece.Ori() {
	case NN:
		bonus = int32(deltaRnk)
	case EE:
		bonus = int32(deltaFil)
	case SS:
		bonus = int32(-deltaRnk)
	case WW:
		bonus = int32(-deltaFil)
	}

	denom := int32(abs(deltaRnk) + abs(deltaFil))
	if denom == 0 {
		return 0
	}
	return (bonus * config.Settings.Eval.KFace) / denom
}

// kaggressive rewards a King for the area of board that lies behind it,
// counted on the side of each axis facing away from the opposing King; the
// opposing King's own area is not part of this term. The >= branches
// are kept exactly as the source: no special-casing at the midpoint.
func kaggressive(p *Position, sq Square) int32 {
	piece := p.Board[sq]
	f, r := FileOf(sq), RankOf(sq)
	oppSq := p.Kloc[piece.Color().Opp()]
	of, or := FileOf(oppSq), RankOf(oppSq)

	var bonus int32
	if of >= f {
		bonus = int32(f + 1)
	} else {
		bonus = int32(BoardWidth - f)
	}
	if or >= r {
		bonus *= int32(r + 1)
	} else {
		bonus *= int32(BoardWidth - r)
	}

	return (config.Settings.Eval.KAggressive * bonus) / int32(BoardWidth*BoardWidth)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Evaluate scores p from White's point of view, then negates for Black to
// move, then divides by EvScoreRatio, exactly as the original composition
// (spec.md 4.6): material, KFACE, KAGGRESSIVE and PCENTRAL per piece, then
// the three laser-derived heuristics cross-wired between the colors (see
// DESIGN.md for the derivation of which shooter color feeds which side's
// score).
func Evaluate(p *Position) Value {
	var score [2]int32
	var numberPawns [2]int32

	kingMinFil, kingMaxFil := BoardWidth, 0
	kingMinRnk, kingMaxRnk := BoardWidth, 0

	for c := White; c <= Black; c++ {
		sq := p.Kloc[c]
		f, r := FileOf(sq), RankOf(sq)
		if f > kingMaxFil {
			kingMaxFil = f
		}
		if f < kingMinFil {
			kingMinFil = f
		}
		if r > kingMaxRnk {
			kingMaxRnk = r
		}
		if r < kingMinRnk {
			kingMinRnk = r
		}
		score[c] += kface(p, sq)
		score[c] += kaggressive(p, sq)
	}

	for c := White; c <= Black; c++ {
		for _, sq := range p.Plocs[c] {
			if sq == 0 {
				continue
			}
			f, r := FileOf(sq), RankOf(sq)
			numberPawns[c]++

			score[c] += config.Settings.Eval.PawnValue

			if between(r, kingMinRnk, kingMaxRnk) && between(f, kingMinFil, kingMaxFil) {
				score[c] += config.Settings.Eval.PBetween
			}

			score[c] += pcentral(f, r)
		}
	}

	var offense, defense Heuristics
	offense.Mobility, defense.Mobility = 9, 9
	MarkLaserPathHeuristics(p, White, &offense) // White's own laser toward Black's King
	MarkLaserPathHeuristics(p, Black, &defense) // Black's own laser toward White's King

	score[White] += config.Settings.Eval.HAttack * int32(offense.HAttackable)
	score[Black] += config.Settings.Eval.HAttack * int32(defense.HAttackable)

	score[White] += config.Settings.Eval.Mobility * int32(defense.Mobility)
	score[Black] += config.Settings.Eval.Mobility * int32(offense.Mobility)

	score[White] += config.Settings.Eval.PawnPin * (numberPawns[White] - int32(defense.PawnPin))
	score[Black] += config.Settings.Eval.PawnPin * (numberPawns[Black] - int32(offense.PawnPin))

	total := score[White] - score[Black]

	if config.Settings.Eval.RandomizeEval {
		m := config.Settings.Eval.RandomizeEvalMagnitude
		total += rand.Int31n(2*m+1) - m
	}

	if p.ColorToMove() == Black {
		total = -total
	}

	return Value(total / config.Settings.Eval.EvScoreRatio)
}
