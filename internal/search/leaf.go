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
	"github.com/leiserchess/engine/internal/eval"
	. "github.com/leiserchess/engine/internal/game"
)

// LeafResult is what evaluateAsLeaf hands back to the caller: either a
// terminal Score to return immediately (Terminal true), or a StandPat
// score plus a HashMove to try first in the move loop.
type LeafResult struct {
	Score           Value
	Terminal        bool
	EnterQuiescence bool
	HashMove        Move
}

// futilityMarginHalves is fmarg from spec.md 4.7, expressed in halves of a
// Pawn so the fractional steps (P/2, 5P/2, 9P/2) stay exact under integer
// pawn values: fmarg = {0, P/2, P, 5P/2, 9P/2, 7P, 10P, 15P, 20P, 30P},
// indexed by remaining depth.
var futilityMarginHalves = [10]Value{0, 1, 2, 5, 9, 14, 20, 30, 40, 60}

func futilityMargin(depth int, pawnValue Value) Value {
	if depth < 0 {
		depth = 0
	}
	if depth >= len(futilityMarginHalves) {
		depth = len(futilityMarginHalves) - 1
	}
	return futilityMarginHalves[depth] * pawnValue / 2
}

// evaluateAsLeaf is evaluate_as_leaf from spec.md 4.7: probe the
// transposition table for a cutoff or a move to try first, otherwise
// stand-pat via the static evaluator and apply null-move-margin and
// futility pruning before the caller commits to generating moves.
func (s *Search) evaluateAsLeaf(node *Node) LeafResult {
	p := node.Position

	var hashMove Move
	if config.Settings.Search.UseTT {
		if e := s.TT.Probe(p.Key); e != nil {
			hashMove = e.Move()
			if int(e.Depth()) >= node.Depth {
				switch e.Vtype() {
				case ValueExact:
					return LeafResult{Score: e.Value(), Terminal: true, HashMove: hashMove}
				case ValueAlpha:
					if e.Value() <= node.Alpha {
						return LeafResult{Score: node.Alpha, Terminal: true, HashMove: hashMove}
					}
				case ValueBeta:
					if e.Value() >= node.Beta {
						return LeafResult{Score: node.Beta, Terminal: true, HashMove: hashMove}
					}
				}
			}
		}
	}

	// stand-pat plus the having-the-move bonus, per search_common.c's
	// "score_t sps = eval(...) + HMB".
	standPat := eval.Evaluate(p) + Value(config.Settings.Search.HaveMoveBonus)

	if node.Depth <= 0 {
		return LeafResult{Score: standPat, EnterQuiescence: true, HashMove: hashMove}
	}

	pawnValue := Value(config.Settings.Eval.PawnValue)

	if node.Type == NodeScout && config.Settings.Search.UseNullMove && node.Depth <= 2 {
		margin := 3 * pawnValue
		if node.Depth == 2 {
			margin = 5 * pawnValue
		}
		if standPat-margin >= node.Beta {
			return LeafResult{Score: node.Beta, Terminal: true, HashMove: hashMove}
		}
	}

	// futility pruning: only at a scout node (never at a PV node, which
	// must keep searching to build a principal variation), and non-terminal
	// - it demotes this ply to a captures-only quiescence search rather
	// than returning a bound, per search_common.c's evaluate_as_leaf.
	if node.Type == NodeScout && node.Depth <= config.Settings.Search.FutilityDepth {
		if standPat+futilityMargin(node.Depth, pawnValue) < node.Beta {
			return LeafResult{Score: standPat, EnterQuiescence: true, HashMove: hashMove}
		}
	}

	return LeafResult{Score: standPat, HashMove: hashMove}
}
