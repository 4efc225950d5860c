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

// Package search implements the parallel null-window ("scout") search
// described in spec.md 4.7: a young-brothers-wait fan-out over a serial
// prefix of moves at every node, transposition-table-backed, with
// quiescence, null-move and futility pruning, late-move reduction, killer
// moves and best-move history move ordering.
package search

import (
	"sync"
	"sync/atomic"

	. "github.com/leiserchess/engine/internal/game"
)

// NodeType distinguishes a principal-variation node, searched with a full
// alpha-beta window and tried first on every legal move, from a scout
// node, searched with a null window and re-searched only if it fails high.
type NodeType uint8

const (
	// NodePV is a principal-variation node.
	NodePV NodeType = iota
	// NodeScout is a null-window node.
	NodeScout
)

// Node is one ply of the search tree. legalMoveCount and abort are
// touched from the goroutines fanned out over a node's late moves, so
// both are accessed only through the atomic helpers below.
type Node struct {
	Position *Position
	Parent   *Node
	Type     NodeType

	Alpha, Beta Value
	Depth       int
	Ply         int

	// FakeColorToMove is the side to move at this node, per spec.md 4.5's
	// naming.
	FakeColorToMove Color
	// Pov is +1 if FakeColorToMove is White, -1 otherwise; multiplies a
	// raw game-over score so it reads as a win for the side that scored it.
	Pov int32

	Quiescence bool

	mu            sync.Mutex
	legalMoveCount int32
	bestScore      Value
	bestMoveIndex  int
	pv             [MaxPlyInSearch]Move
	pvLen          int

	abort int32
}

// NewRootNode creates the node the iterative-deepening driver searches
// from, with a full [-ValueInf, ValueInf] window.
func NewRootNode(p *Position, depth int) *Node {
	n := &Node{
		Position: p,
		Type:     NodePV,
		Alpha:    -ValueInf,
		Beta:     ValueInf,
		Depth:    depth,
		Ply:      0,
	}
	n.bestScore = -ValueInf
	n.bestMoveIndex = -1
	n.FakeColorToMove = p.ColorToMove()
	n.Pov = povOf(n.FakeColorToMove)
	return n
}

func povOf(c Color) int32 {
	if c == White {
		return 1
	}
	return -1
}

// NewChild derives a search node for the position reached after playing a
// move at parent, wiring up the alpha-beta window per spec.md 4.7's
// initialize_scout_node: a scout child gets the null window
// [-parent.Alpha-1, -parent.Alpha], a PV child gets the full negated
// window [-parent.Beta, -parent.Alpha].
func (parent *Node) NewChild(p *Position, typ NodeType, depth int) *Node {
	n := &Node{
		Position: p,
		Parent:   parent,
		Type:     typ,
		Depth:    depth,
		Ply:      parent.Ply + 1,
	}
	switch typ {
	case NodeScout:
		n.Beta = -parent.Alpha
		n.Alpha = n.Beta - 1
	case NodePV:
		n.Alpha = -parent.Beta
		n.Beta = -parent.Alpha
	}
	n.bestScore = -ValueInf
	n.bestMoveIndex = -1
	n.FakeColorToMove = p.ColorToMove()
	n.Pov = povOf(n.FakeColorToMove)
	n.Quiescence = parent.Quiescence || depth <= 0
	return n
}

// IncLegalMoveCount atomically increments and returns the node's legal
// move count, used to gate late-move reduction (the serial/parallel split
// point is a move-list index, not this count).
func (n *Node) IncLegalMoveCount() int32 {
	return atomic.AddInt32(&n.legalMoveCount, 1)
}

// LegalMoveCount atomically reads the node's legal move count.
func (n *Node) LegalMoveCount() int32 {
	return atomic.LoadInt32(&n.legalMoveCount)
}

// Abort marks this node (and, because Aborted walks the parent chain,
// every node below it) as abandoned by a search timeout.
func (n *Node) Abort() {
	atomic.StoreInt32(&n.abort, 1)
}

// Aborted reports whether this node or any ancestor has been aborted.
func (n *Node) Aborted() bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if atomic.LoadInt32(&cur.abort) != 0 {
			return true
		}
	}
	return false
}

// BestScore safely reads the node's best score found so far.
func (n *Node) BestScore() Value {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.bestScore
}

// PV returns a copy of the principal variation collected under this node.
func (n *Node) PV() []Move {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Move, n.pvLen)
	copy(out, n.pv[:n.pvLen])
	return out
}

// setPV records mv followed by childPV as this node's principal variation.
// Caller must hold n.mu.
func (n *Node) setPV(mv Move, childPV []Move) {
	n.pv[0] = mv
	n.pvLen = 1
	for _, m := range childPV {
		if n.pvLen >= MaxPlyInSearch {
			break
		}
		n.pv[n.pvLen] = m
		n.pvLen++
	}
}
