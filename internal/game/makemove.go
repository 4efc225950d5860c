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

// LowLevelMakeMove applies the relocation/rotation phase of mv to a fresh
// Position copied from old, updating the board, Zobrist key, Kloc and
// Plocs. It returns the square of a stomped Pawn awaiting removal by the
// caller, or 0 if no stomp occurred. Ply is incremented. This is phase 1
// of spec.md 4.5 and is also reused directly by Perft.
func LowLevelMakeMove(old, p *Position, mv Move) Square {
	*p = *old
	p.History = old
	p.LastMove = mv

	from, to, rot := mv.From(), mv.To(), mv.Rot()

	p.Key ^= zobColor

	fromPiece := p.Board[from]
	toPiece := p.Board[to]

	stompedDstSq := Square(0)

	if from != to {
		if fromPiece.Type() == Pawn && toPiece.Type() == Pawn && toPiece.Color() == fromPiece.Color().Opp() {
			stompedDstSq = from
		}

		p.Key ^= zob[from][fromPiece]
		p.Key ^= zob[to][toPiece]

		p.Board[to] = fromPiece
		p.Board[from] = toPiece

		p.Key ^= zob[to][fromPiece]
		p.Key ^= zob[from][toPiece]

		if fromPiece.Type() == King {
			p.Kloc[fromPiece.Color()] = to
		}
		if toPiece.Type() == King {
			p.Kloc[toPiece.Color()] = from
		}
		if fromPiece.Type() == Pawn {
			for i := 0; i < NumberPawns; i++ {
				if p.Plocs[fromPiece.Color()][i] == from {
					p.Plocs[fromPiece.Color()][i] = to
				}
			}
		}
		if toPiece.Type() == Pawn {
			for i := 0; i < NumberPawns; i++ {
				if p.Plocs[toPiece.Color()][i] == to {
					p.Plocs[toPiece.Color()][i] = from
				}
			}
		}
	} else {
		p.Key ^= zob[from][fromPiece]
		rotated := fromPiece.WithOri(Orientation((int(fromPiece.Ori()) + int(rot)) % 4))
		p.Board[from] = rotated
		p.Key ^= zob[from][rotated]
	}

	p.Ply++
	return stompedDstSq
}

// removeStomped clears the stomped Pawn's board square and Plocs slot and
// folds its removal into the Zobrist key: the victim's zob[sq][victim]
// term is XORed out and, after zeroing the board byte, the empty-square
// term zob[sq][0] is XORed in, since ComputeZobKey hashes empty squares
// too.
func removeStomped(p *Position, sq Square) {
	victim := p.Board[sq]
	color := victim.Color()
	p.Key ^= zob[sq][victim]
	p.Board[sq] = 0
	for i := 0; i < NumberPawns; i++ {
		if p.Plocs[color][i] == sq {
			p.Plocs[color][i] = 0
		}
	}
	p.Key ^= zob[sq][p.Board[sq]]
}

func removeZapped(p *Position, sq Square) {
	victim := p.Board[sq]
	color := victim.Color()
	p.Key ^= zob[sq][victim]
	p.Board[sq] = 0
	p.Key ^= zob[sq][0]
	for i := 0; i < NumberPawns; i++ {
		if p.Plocs[color][i] == sq {
			p.Plocs[color][i] = 0
		}
	}
}

// MakeMove applies mv to old, writing the result into p, and returns the
// victims it produced. If the resulting position repeats old's with only
// the side to move toggled and produced no victims, KO() is returned
// instead and search must treat it as illegal (spec.md 4.5).
func MakeMove(old, p *Position, mv Move, useKo bool) Victims {
	stompedSq := LowLevelMakeMove(old, p, mv)

	if stompedSq == 0 {
		p.Victims.Stomped = 0
	} else {
		p.Victims.Stomped = p.Board[stompedSq]
		removeStomped(p, stompedSq)
	}

	fakeColorToMove := p.ColorToMove().Opp()
	victimSq := Fire(p, fakeColorToMove)

	if victimSq == 0 {
		p.Victims.Zapped = 0
		if useKo && p.Victims.Zero() && p.Key == old.Key^zobColor {
			return KO()
		}
	} else {
		p.Victims.Zapped = p.Board[victimSq]
		removeZapped(p, victimSq)
	}

	return p.Victims
}
