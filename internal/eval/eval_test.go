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

package eval

import (
	"testing"

	"github.com/leiserchess/engine/internal/config"
	. "github.com/leiserchess/engine/internal/game"
)

func setupDeterministic(t *testing.T) {
	t.Helper()
	config.Setup()
	config.Settings.Eval.RandomizeEval = false
}

func TestEvaluateStartPositionIsSideToMoveNegated(t *testing.T) {
	setupDeterministic(t)

	p := NewStartPosition()
	white := Evaluate(p)

	var black Position
	nullMove := NewMove(King, RotNone, p.Kloc[White], p.Kloc[White])
	MakeMove(p, &black, nullMove, false)

	if black.ColorToMove() != Black {
		t.Fatalf("test assumption broken: expected Black to move after White's null move")
	}

	// The board did not change, so Evaluate's only difference between the
	// two calls is the side-to-move negation.
	blackScore := Evaluate(&black)
	if white != -blackScore {
		t.Fatalf("Evaluate(white-to-move) = %d, want the negation of Evaluate(black-to-move) = %d", white, blackScore)
	}
}

func TestEvaluateSymmetricPositionIsZero(t *testing.T) {
	setupDeterministic(t)

	p := NewStartPosition()
	if got := Evaluate(p); got != 0 {
		t.Fatalf("the symmetric start position should evaluate to 0, got %d", got)
	}
}

func TestEvaluateRewardsMaterialAdvantage(t *testing.T) {
	setupDeterministic(t)

	p := NewEmptyPosition()
	p.Board[SquareOf(9, 0)] = NewPiece(White, King, NN)
	p.Kloc[White] = SquareOf(9, 0)
	p.Board[SquareOf(0, 9)] = NewPiece(Black, King, SS)
	p.Kloc[Black] = SquareOf(0, 9)
	p.Board[SquareOf(5, 5)] = NewPiece(White, Pawn, NE)
	p.Plocs[White][0] = SquareOf(5, 5)
	p.Key = ComputeZobKey(&p.Board, p.ColorToMove())

	if got := Evaluate(p); got <= 0 {
		t.Fatalf("an extra White pawn with White to move should score positive, got %d", got)
	}
}

func TestEvaluateEvScoreRatioDivides(t *testing.T) {
	setupDeterministic(t)

	p := NewEmptyPosition()
	p.Board[SquareOf(9, 0)] = NewPiece(White, King, NN)
	p.Kloc[White] = SquareOf(9, 0)
	p.Board[SquareOf(0, 9)] = NewPiece(Black, King, SS)
	p.Kloc[Black] = SquareOf(0, 9)
	p.Board[SquareOf(5, 5)] = NewPiece(White, Pawn, NE)
	p.Plocs[White][0] = SquareOf(5, 5)
	p.Key = ComputeZobKey(&p.Board, p.ColorToMove())

	config.Settings.Eval.EvScoreRatio = 1
	base := Evaluate(p)

	config.Settings.Eval.EvScoreRatio = 2
	scaled := Evaluate(p)
	config.Settings.Eval.EvScoreRatio = 1

	if want := base / 2; scaled != want {
		t.Fatalf("doubling EvScoreRatio should halve the raw score: base=%d scaled=%d want=%d", base, scaled, want)
	}
}
