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

package main

import (
	"runtime"
	"time"

	"flag"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/leiserchess/engine/internal/config"
	"github.com/leiserchess/engine/internal/eval"
	. "github.com/leiserchess/engine/internal/game"
	"github.com/leiserchess/engine/internal/logging"
	"github.com/leiserchess/engine/internal/search"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	perft := flag.Int("perft", 0, "run perft from depth 1 up to the given depth on the start position")
	depth := flag.Int("depth", 0, "search depth limit for -go")
	movetimeMs := flag.Int("movetime", 0, "search time in milliseconds for -go (0: depth only)")
	ttSize := flag.Int("ttsize", 0, "transposition table size in MB (0: use config default)")
	goSearch := flag.Bool("go", false, "run a search from the start position and print the best move")
	evalOnly := flag.Bool("eval", false, "print the static evaluation of the start position and exit")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	log := logging.GetLog()

	if *ttSize <= 0 {
		*ttSize = config.Settings.Search.TTSize
	}

	startPos := NewStartPosition()

	if *evalOnly {
		out.Printf("eval(startpos) = %d\n", eval.Evaluate(startPos))
		return
	}

	if *perft > 0 {
		for d := 1; d <= *perft; d++ {
			begin := time.Now()
			nodes := Perft(startPos, d)
			elapsed := time.Since(begin)
			out.Printf("perft %d: %d nodes in %s\n", d, nodes, elapsed)
		}
		return
	}

	if *goSearch {
		if *depth <= 0 {
			*depth = 6
		}
		s := search.NewSearch(*ttSize)
		begin := time.Now()
		bestMove, score := s.FindBestMove(startPos, *depth, time.Duration(*movetimeMs)*time.Millisecond)
		elapsed := time.Since(begin)
		out.Printf("bestmove %s score %d nodes %d time %s\n", bestMove, score, s.NodesSearched(), elapsed)
		return
	}

	log.Info("nothing to do: pass -perft N, -go, or -eval")
	out.Printf("running on %s, %d CPUs\n", runtime.GOOS, runtime.NumCPU())
}
