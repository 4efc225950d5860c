//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// evalConfiguration holds the tunables of the static evaluator, named after
// the weights in the original laser-chess evaluation (spec.md 4.6).
type evalConfiguration struct {
	// RandomizeEval adds a small random term to the score so games between
	// two identically-configured engines do not repeat.
	RandomizeEval bool
	// RandomizeEvalMagnitude bounds the random term added when RandomizeEval.
	RandomizeEvalMagnitude int32

	// HAttack weights the shooter's own laser-vs-enemy-King harmonic
	// attackability term.
	HAttack int32
	// PBetween weights a Pawn sitting between the two Kings.
	PBetween int32
	// PCentral weights a Pawn's proximity to the board center.
	PCentral int32
	// KFace weights a King facing toward the opposing King.
	KFace int32
	// KAggressive weights a King's aggressive positioning relative to the
	// opponent King.
	KAggressive int32
	// Mobility weights the King's open escape squares.
	Mobility int32
	// PawnPin weights a side's own Pawns that lie outside the opposing
	// King's laser path.
	PawnPin int32

	// PawnValue is the flat material bonus for each Pawn on the board.
	PawnValue int32

	// EvScoreRatio is the divisor applied to the raw weighted sum before it
	// is used as a Value.
	EvScoreRatio int32
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.RandomizeEval = true
	Settings.Eval.RandomizeEvalMagnitude = 3

	Settings.Eval.HAttack = 6
	Settings.Eval.PBetween = 2
	Settings.Eval.PCentral = 1
	Settings.Eval.KFace = 1
	Settings.Eval.KAggressive = 1
	Settings.Eval.Mobility = 1
	Settings.Eval.PawnPin = 1
	Settings.Eval.PawnValue = 1

	Settings.Eval.EvScoreRatio = 1
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {
}
