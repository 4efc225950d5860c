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

// Perft counts the leaf nodes reachable from p in depth plies, by brute
// force move generation, not reusing MakeMove's Ko bookkeeping. Grounded
// on original_source/move_gen.c's do_perft/perft_search: it applies moves
// with LowLevelMakeMove directly and folds in the fire/stomp bookkeeping
// inline rather than calling MakeMove, since perft never needs Ko
// detection and a King-zap terminates the branch as a leaf without
// recursing further (spec.md 3's supplemented feature list).
func Perft(p *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var moves [MaxNumMoves]SortableMove
	n := GenerateAll(p, moves[:])

	var nodes uint64
	for i := 0; i < n; i++ {
		mv := GetMove(moves[i])

		var child Position
		stompedSq := LowLevelMakeMove(p, &child, mv)
		if stompedSq != 0 {
			removeStomped(&child, stompedSq)
		}

		fakeColorToMove := child.ColorToMove().Opp()
		victimSq := Fire(&child, fakeColorToMove)
		if victimSq != 0 {
			zappedKing := child.Board[victimSq].Type() == King
			removeZapped(&child, victimSq)
			if zappedKing {
				nodes++
				continue
			}
		}

		nodes += Perft(&child, depth-1)
	}
	return nodes
}
