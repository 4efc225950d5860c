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

package config

// searchConfiguration is a data structure to hold the configuration of an
// instance of a search (spec.md 4.7 and its scout-search knobs).
type searchConfiguration struct {
	// UseKo enables the Ko repetition rule during make-move.
	UseKo bool
	// DetectDraws enables repetition/draw detection beyond Ko.
	DetectDraws bool

	// Transposition table
	UseTT  bool
	TTSize int

	// UseNullMove enables the null-move pruning heuristic.
	UseNullMove bool

	// EnableTables gates use of the history/killer move-ordering tables.
	EnableTables bool

	// FutilityDepth bounds how close to the leaf futility pruning applies.
	FutilityDepth int

	// LmrReduction1/2 are the two late-move-reduction thresholds on a
	// node's legal move count: a move past LmrReduction1 is searched one
	// ply shallower, a move past LmrReduction2 two plies shallower.
	LmrReduction1 int
	LmrReduction2 int

	// TraceMoves is a loaded setting only; the search does not read it and
	// logs no per-move trace.
	TraceMoves bool

	// HaveMoveBonus (HMB) is added to the stand-pat score at a leaf to
	// reflect the tempo of having the move.
	HaveMoveBonus int32

	// HistoryMoveBonusShift is a loaded setting only; the history table does
	// not read it and always adds 1 << depth for a cutoff at a given depth.
	HistoryMoveBonusShift int

	// DrawValue/WinValue are the Value magnitudes returned for a known draw
	// or forced win, bounding search scores away from ValueInf.
	DrawValue int32
	WinValue  int32

	// AbortCheckPeriod is how many nodes pass between checks of the search
	// deadline/abort flag.
	AbortCheckPeriod int64

	// YoungBrothersMinDepth is the number of leading moves in a node's
	// sorted move list that are searched serially before the remaining
	// children are searched in parallel (the young-brothers-wait threshold,
	// spec.md 4.7).
	YoungBrothersMinDepth int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.UseKo = true
	Settings.Search.DetectDraws = true

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 128

	Settings.Search.UseNullMove = true

	Settings.Search.EnableTables = true

	Settings.Search.FutilityDepth = 2

	Settings.Search.LmrReduction1 = 1
	Settings.Search.LmrReduction2 = 2

	Settings.Search.TraceMoves = false

	Settings.Search.HistoryMoveBonusShift = 1

	Settings.Search.HaveMoveBonus = 1

	Settings.Search.DrawValue = 0
	Settings.Search.WinValue = 1 << 16

	Settings.Search.AbortCheckPeriod = 4096

	Settings.Search.YoungBrothersMinDepth = 3
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {
}
