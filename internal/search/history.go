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
	"strings"
	"sync/atomic"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/leiserchess/engine/internal/game"
)

var out = message.NewPrinter(language.German)

// MaxPlyInSearch bounds the killer table and PV buffers.
const MaxPlyInSearch = 64

// BestMoveHistory is the "BMH" table from spec.md 4.7: a sort-key bonus
// keyed by [color][ptype][to-square][orientation-after-move], incremented
// whenever a move causes a beta cutoff in scout search. This supersedes
// the 3D [color][from][to] history table the original 8x8 engine kept,
// since here the sort key must also distinguish a piece's final facing.
type BestMoveHistory struct {
	counts [2][4][ArrSize][4]uint32
}

// NewBestMoveHistory creates an empty history table.
func NewBestMoveHistory() *BestMoveHistory {
	return &BestMoveHistory{}
}

// Get returns the current sort-key bonus for a move landing on to facing
// ori, made by color moving a piece of type t.
func (h *BestMoveHistory) Get(c Color, t PType, to Square, ori Orientation) uint32 {
	return atomic.LoadUint32(&h.counts[c][t][to][ori])
}

// Update increases the bonus for (c, t, to, ori) by 1<<depth, per the
// original's update_best_move_history (depth clamped so the shift never
// overflows a uint32).
func (h *BestMoveHistory) Update(c Color, t PType, to Square, ori Orientation, depth int) {
	if depth < 0 {
		depth = 0
	}
	if depth > 20 {
		depth = 20
	}
	atomic.AddUint32(&h.counts[c][t][to][ori], 1<<uint(depth))
}

// Clear resets every entry to zero, e.g. between games.
func (h *BestMoveHistory) Clear() {
	*h = BestMoveHistory{}
}

func (h *BestMoveHistory) String() string {
	var sb strings.Builder
	sb.WriteString(out.Sprintf("BestMoveHistory (non-zero entries only)\n"))
	for c := White; c <= Black; c++ {
		for t := PType(0); t < 4; t++ {
			for sq := 0; sq < ArrSize; sq++ {
				for o := Orientation(0); o < 4; o++ {
					v := h.counts[c][t][sq][o]
					if v != 0 {
						sb.WriteString(out.Sprintf("%s %s to=%v ori=%d: %d\n", c, t, Square(sq), o, v))
					}
				}
			}
		}
	}
	return sb.String()
}

// KillerTable holds, for each search ply, the two most recent moves that
// caused a beta cutoff there - tried early in sibling nodes at the same
// ply, per spec.md 4.7.
type KillerTable struct {
	moves [MaxPlyInSearch][2]Move
}

// NewKillerTable creates an empty killer table.
func NewKillerTable() *KillerTable {
	return &KillerTable{}
}

// Get returns the two killer moves recorded for ply.
func (k *KillerTable) Get(ply int) (a, b Move) {
	if ply < 0 || ply >= MaxPlyInSearch {
		return MoveNone, MoveNone
	}
	return k.moves[ply][0], k.moves[ply][1]
}

// Update pushes mv to the front of ply's killer slots unless it is already
// the primary killer there.
func (k *KillerTable) Update(ply int, mv Move) {
	if ply < 0 || ply >= MaxPlyInSearch {
		return
	}
	if k.moves[ply][0] == mv {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = mv
}

// Clear resets every ply's killer slots.
func (k *KillerTable) Clear() {
	*k = KillerTable{}
}
