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
	"github.com/leiserchess/engine/internal/config"
	. "github.com/leiserchess/engine/internal/game"
)

// MoveOutcome classifies what evaluateMove decided to do with a candidate
// move.
type MoveOutcome uint8

const (
	// MoveEvaluated carries a usable Score in MoveResult.
	MoveEvaluated MoveOutcome = iota
	// MoveIllegal means the move was a KO and must not be tried.
	MoveIllegal
	// MoveIgnored means the move was skipped without search (a quiet move
	// or an uncompensated blunder inside quiescence).
	MoveIgnored
)

// MoveResult is what evaluateMove hands back to its caller for scoring
// and move-ordering bookkeeping.
type MoveResult struct {
	Outcome MoveOutcome
	Score   Value
	SubPV   []Move
}

// movedOrientation is the orientation the piece on mv.From() will have
// after mv is played: unchanged for a translation, rotated per mv.Rot()
// for an in-place turn. Used as part of the best-move-history sort key.
func movedOrientation(p *Position, mv Move) Orientation {
	cur := p.Board[mv.From()].Ori()
	if !mv.IsRotation() {
		return cur
	}
	return Orientation((int(cur) + int(mv.Rot())) % 4)
}

// isOwnBlunder reports whether victims cost the mover a piece of its own
// color with nothing gained in return - the original's "zapped own piece
// without compensating stomp" blunder check (spec.md 4.4, 4.7). A King
// loss is handled separately as an immediate game-over before this check
// runs, so it is excluded here.
func isOwnBlunder(mover Color, v Victims) bool {
	return v.Zapped != 0 && v.Zapped.Type() == Pawn && v.Zapped.Color() == mover && v.Stomped == 0
}

// gameOverScore turns an immediate King kill into a mate score, keyed on
// the color of the zapped King (not on whose turn it happened to be) and
// node.Pov, per get_game_over_score in spec.md 4.7: zapping the White King
// always scores -WinValue*pov, the Black King +WinValue*pov, then the
// score is pulled toward zero by Ply so a faster mate scores further from
// zero. Since the laser a mover fires can zap that mover's own King
// (spec.md 4.4), this must stay keyed on color, not on an assumption that
// the kill always favors the mover.
func gameOverScore(node *Node, zapped Piece) Value {
	var score Value
	if zapped.Color() == White {
		score = -Value(config.Settings.Search.WinValue) * Value(node.Pov)
	} else {
		score = Value(config.Settings.Search.WinValue) * Value(node.Pov)
	}
	if score < 0 {
		score += Value(node.Ply)
	} else {
		score -= Value(node.Ply)
	}
	return score
}

// evaluateMove is evaluateMove from spec.md 4.7: make the move, reject a
// KO, detect an immediate win, skip non-captures and uncompensated
// blunders inside quiescence, detect repetition draws, extend the search
// on a profitable capture, apply late-move reduction with a fail-soft
// re-search, and finally dispatch to the null-window or full-window child
// search depending on node type and move order.
func (s *Search) evaluateMove(node *Node, mv Move, killerA, killerB Move, childPos *Position) MoveResult {
	mover := node.Position.ColorToMove()
	victims := MakeMove(node.Position, childPos, mv, config.Settings.Search.UseKo)

	if victims.IsKO() {
		return MoveResult{Outcome: MoveIllegal}
	}

	lmc := node.IncLegalMoveCount()

	if victims.Zapped != 0 && victims.Zapped.Type() == King {
		return MoveResult{Outcome: MoveEvaluated, Score: gameOverScore(node, victims.Zapped)}
	}

	if node.Quiescence && victims.Zero() {
		return MoveResult{Outcome: MoveIgnored}
	}

	if config.Settings.Search.DetectDraws && s.isRepeated(childPos) {
		return MoveResult{Outcome: MoveEvaluated, Score: Value(config.Settings.Search.DrawValue)}
	}

	blunder := isOwnBlunder(mover, victims)
	if node.Quiescence && blunder {
		return MoveResult{Outcome: MoveIgnored}
	}

	extension := 0
	if victims.Exists() && !blunder {
		extension = 1
	}
	newDepth := node.Depth - 1 + extension
	if newDepth < 0 {
		newDepth = 0
	}

	reduction := 0
	if node.Depth > 2 && !victims.Exists() && mv != killerA && mv != killerB {
		switch {
		case lmc+1 > int32(config.Settings.Search.LmrReduction2):
			reduction = 2
		case lmc+1 > int32(config.Settings.Search.LmrReduction1):
			reduction = 1
		}
		if newDepth-reduction < 0 {
			reduction = newDepth
		}
	}

	searchDepth := newDepth - reduction
	child := node.NewChild(childPos, scoutChildType(node, lmc), searchDepth)
	value := -s.searchChild(child)

	if reduction > 0 && !node.Aborted() && value > node.Alpha {
		child = node.NewChild(childPos, scoutChildType(node, lmc), newDepth)
		value = -s.searchChild(child)
	}

	if node.Type == NodePV && lmc > 1 && !node.Aborted() && value > node.Alpha && value < node.Beta {
		child = node.NewChild(childPos, NodePV, newDepth)
		value = -s.SearchPV(child)
	}

	return MoveResult{Outcome: MoveEvaluated, Score: value, SubPV: child.PV()}
}

// scoutChildType is the classic "first move of a PV node stays a PV node,
// everything else is searched with a null window first" rule.
func scoutChildType(node *Node, legalMoveCount int32) NodeType {
	if node.Type == NodePV && legalMoveCount == 1 {
		return NodePV
	}
	return NodeScout
}

// searchChild dispatches to the quiescence, scout or PV search depending
// on the child node's own shape - it is its own Depth/Quiescence that
// decide, not the parent's.
func (s *Search) searchChild(child *Node) Value {
	if child.Quiescence {
		return s.ScoutSearch(child)
	}
	if child.Type == NodePV {
		return s.SearchPV(child)
	}
	return s.ScoutSearch(child)
}
