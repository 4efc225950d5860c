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
	"context"
	"math"
	"runtime"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/op/go-logging"

	"github.com/leiserchess/engine/internal/config"
	. "github.com/leiserchess/engine/internal/game"
	myLogging "github.com/leiserchess/engine/internal/logging"
	"github.com/leiserchess/engine/internal/transpositiontable"
)

// maxMoves upper-bounds GenerateAll's output: 7 pawns * (8 translations +
// 3 rotations) + 1 king * (8 translations + 3 rotations + 1 null move).
const maxMoves = 7*11 + 12

// Search holds every piece of mutable state one search run shares across
// its tree: the transposition table, move-ordering tables, and the
// abort/clock bookkeeping should_abort_check reads in the original.
type Search struct {
	TT      *transpositiontable.TtTable
	History *BestMoveHistory
	Killers *KillerTable

	log *logging.Logger

	nodesSearched uint64
	tics          int64

	startTime time.Time
	timeLimit time.Duration
	timed     bool

	// isRunning is held for the duration of FindBestMove so IsSearching and
	// WaitWhileSearching can observe a search in flight from another
	// goroutine, mirroring the teacher's isRunning/StartSearch/StopSearch
	// gate (there built with the same semaphore package for StartSearch's
	// initSemaphore handshake).
	isRunning *semaphore.Weighted
}

// NewSearch creates a Search with a transposition table sized ttSizeMB.
func NewSearch(ttSizeMB int) *Search {
	return &Search{
		TT:        transpositiontable.NewTtTable(ttSizeMB),
		History:   NewBestMoveHistory(),
		Killers:   NewKillerTable(),
		log:       myLogging.GetSearchLog(),
		isRunning: semaphore.NewWeighted(1),
	}
}

// IsSearching reports whether a call to FindBestMove is currently running
// on this Search.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until any in-flight FindBestMove call on this
// Search has returned.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// NodesSearched returns the number of nodes visited by the most recent
// (or still running) search.
func (s *Search) NodesSearched() uint64 {
	return atomic.LoadUint64(&s.nodesSearched)
}

// FindBestMove runs iterative deepening from p up to maxDepth or until
// timeLimit elapses (0 disables the clock), returning the best move found
// and its score. Ply 0's killer/history tables persist across calls so a
// later search benefits from an earlier one's move ordering.
func (s *Search) FindBestMove(p *Position, maxDepth int, timeLimit time.Duration) (Move, Value) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("search already running")
		return MoveNone, 0
	}
	defer s.isRunning.Release(1)

	atomic.StoreUint64(&s.nodesSearched, 0)
	atomic.StoreInt64(&s.tics, 0)
	s.startTime = time.Now()
	s.timeLimit = timeLimit
	s.timed = timeLimit > 0

	var bestMove Move
	var bestScore Value

	for depth := 1; depth <= maxDepth; depth++ {
		root := NewRootNode(p, depth)
		score := s.SearchPV(root)
		if root.Aborted() && depth > 1 {
			break
		}
		if pv := root.PV(); len(pv) > 0 {
			bestMove = pv[0]
			bestScore = score
		}
		if s.log != nil {
			s.log.Debugf("depth %d score %d nodes %d bestmove %s", depth, score, s.NodesSearched(), bestMove)
		}
		if root.Aborted() {
			break
		}
	}

	return bestMove, bestScore
}

// SearchPV searches node with its full alpha-beta window, trying the
// first legal move at full width and every later move with a null-window
// scout search that only widens back to a full re-search if it raises
// alpha (searchPV / evaluateMove's PV branch in spec.md 4.7).
func (s *Search) SearchPV(node *Node) Value {
	return s.searchNode(node)
}

// ScoutSearch searches node with its null window, running a serial
// prefix of moves before fanning the remainder out across goroutines once
// enough siblings are underway to make the young-brothers-wait split
// worthwhile (spec.md 4.7, search_scout.c's scout_search).
func (s *Search) ScoutSearch(node *Node) Value {
	return s.searchNode(node)
}

func (s *Search) searchNode(node *Node) Value {
	atomic.AddUint64(&s.nodesSearched, 1)

	if s.shouldAbortCheck() {
		node.Abort()
	}
	if node.Aborted() {
		return node.Alpha
	}

	leaf := s.evaluateAsLeaf(node)
	if leaf.Terminal {
		return leaf.Score
	}
	if leaf.EnterQuiescence {
		node.Quiescence = true
	}

	moves := s.getSortableMoveList(node, leaf.HashMove)
	if len(moves) == 0 {
		return leaf.Score
	}

	killerA, killerB := s.Killers.Get(node.Ply)

	// searchProcessScore raises a PV node's Alpha as moves improve it, so
	// the window the node entered with is kept for the TT bound kind.
	origAlpha := node.Alpha

	youngBrothers := config.Settings.Search.YoungBrothersMinDepth
	serialEnd := len(moves)
	if !node.Quiescence && youngBrothers < len(moves) {
		serialEnd = youngBrothers
	}

	cutoff := false
	for i := 0; i < serialEnd && !cutoff; i++ {
		mv := GetMove(moves[i])
		var child Position
		result := s.evaluateMove(node, mv, killerA, killerB, &child)
		if result.Outcome == MoveIllegal {
			continue
		}
		if result.Outcome == MoveIgnored {
			continue
		}
		cutoff = s.searchProcessScore(node, mv, result)
	}

	if !cutoff && serialEnd < len(moves) && !node.Aborted() {
		s.searchRemainderParallel(node, moves[serialEnd:], killerA, killerB)
	}

	best := node.BestScore()
	if best == -ValueInf {
		// no legal moves at all: the mover's King has no escape and no
		// other move exists, which in this game cannot happen by
		// construction (the null move is always legal) - fall back to
		// the stand-pat score rather than asserting.
		return leaf.Score
	}

	s.updateTranspositionTable(node, best, origAlpha)
	return best
}

// searchRemainderParallel fans the late moves of node out across a bounded
// pool of goroutines, each independently calling evaluateMove and then
// funneling its result through searchProcessScore, which is internally
// synchronized on node.mu - the young-brothers-wait parallelism of
// spec.md 4.7, built on golang.org/x/sync/errgroup instead of cilk_for.
func (s *Search) searchRemainderParallel(node *Node, rest []SortableMove, killerA, killerB Move) bool {
	limit := runtime.GOMAXPROCS(0)
	if limit > len(rest) {
		limit = len(rest)
	}
	if limit < 1 {
		limit = 1
	}
	// the pinned x/sync release predates errgroup.Group.SetLimit, so the
	// fan-out width is capped with a counting semaphore instead.
	sem := make(chan struct{}, limit)

	var g errgroup.Group
	var cutoffHit int32

	for _, sm := range rest {
		mv := GetMove(sm)
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			if node.Aborted() || atomic.LoadInt32(&cutoffHit) != 0 {
				return nil
			}
			var child Position
			result := s.evaluateMove(node, mv, killerA, killerB, &child)
			if result.Outcome != MoveEvaluated {
				return nil
			}
			if s.searchProcessScore(node, mv, result) {
				atomic.StoreInt32(&cutoffHit, 1)
			}
			return nil
		})
	}
	_ = g.Wait()

	return atomic.LoadInt32(&cutoffHit) != 0
}

// searchProcessScore folds one move's result into node's best score/move
// under node.mu, updates the principal variation, and on a beta cutoff
// records the killer move and bumps its best-move-history bonus -
// search_process_score in spec.md 4.7. Returns true if the cutoff should
// stop sibling evaluation.
func (s *Search) searchProcessScore(node *Node, mv Move, result MoveResult) bool {
	node.mu.Lock()
	defer node.mu.Unlock()

	if result.Score <= node.bestScore {
		return node.bestScore >= node.Beta
	}

	node.bestScore = result.Score
	node.setPV(mv, result.SubPV)

	if node.Type == NodePV && result.Score > node.Alpha {
		node.Alpha = result.Score
	}

	if node.bestScore >= node.Beta {
		s.Killers.Update(node.Ply, mv)
		s.History.Update(node.Position.ColorToMove(), mv.PType(), mv.To(),
			movedOrientation(node.Position, mv), node.Depth)
		return true
	}
	return false
}

// shouldAbortCheck rate-limits the wall-clock check to once every
// AbortCheckPeriod nodes, matching should_abort_check's tic counter.
func (s *Search) shouldAbortCheck() bool {
	if !s.timed {
		return false
	}
	if atomic.AddInt64(&s.tics, 1)%config.Settings.Search.AbortCheckPeriod != 0 {
		return false
	}
	return time.Since(s.startTime) >= s.timeLimit
}

// isRepeated walks p's History chain two hops at a time (same side to
// move as p), stopping at the first position that consumed a victim,
// exactly as get_draw_score/is_repeated in search_common.c.
func (s *Search) isRepeated(p *Position) bool {
	for cur := p.History; cur != nil && cur.History != nil; cur = cur.History.History {
		if !cur.Victims.Zero() {
			return false
		}
		if cur.History.Key == p.Key {
			return true
		}
	}
	return false
}

// getSortableMoveList generates every move at node and assigns each a
// sort key: the transposition-table move first, then the two killer
// moves for this ply, then the best-move-history bonus for everything
// else - get_sortable_move_list in spec.md 4.7.
func (s *Search) getSortableMoveList(node *Node, hashMove Move) []SortableMove {
	buf := make([]SortableMove, maxMoves)
	n := GenerateAll(node.Position, buf)
	buf = buf[:n]

	killerA, killerB := s.Killers.Get(node.Ply)
	colorToMove := node.Position.ColorToMove()
	useTables := config.Settings.Search.EnableTables

	for i, sm := range buf {
		mv := GetMove(sm)
		var key uint32
		switch {
		case hashMove != MoveNone && mv == hashMove:
			key = math.MaxUint32
		case useTables && mv == killerA:
			key = math.MaxUint32 - 1
		case useTables && mv == killerB:
			key = math.MaxUint32 - 2
		case useTables:
			key = s.History.Get(colorToMove, mv.PType(), mv.To(), movedOrientation(node.Position, mv))
		}
		buf[i] = SetSortKey(mv, key)
	}

	sort.Slice(buf, func(i, j int) bool { return buf[i] > buf[j] })
	return buf
}

// updateTranspositionTable stores node's result, recording whether score
// is an exact value or a bound relative to node's original window
// [origAlpha, node.Beta] - update_transposition_table in spec.md 4.7.
func (s *Search) updateTranspositionTable(node *Node, score Value, origAlpha Value) {
	if !config.Settings.Search.UseTT {
		return
	}
	var vtype ValueType
	switch {
	case score <= origAlpha:
		vtype = ValueAlpha
	case score >= node.Beta:
		vtype = ValueBeta
	default:
		vtype = ValueExact
	}
	var mv Move
	if pv := node.PV(); len(pv) > 0 {
		mv = pv[0]
	}
	s.TT.Put(node.Position.Key, mv, int8(node.Depth), score, vtype, score)
}
