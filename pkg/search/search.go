// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package search implements iterative-deepening alpha-beta search
// (principal variation search) over a Three-Check position, backed by
// the eval package's static evaluation and a transposition table.
package search

import (
	stdtime "time"

	"github.com/mcthouacbb/Calamity/pkg/board"
	"github.com/mcthouacbb/Calamity/pkg/eval"
	"github.com/mcthouacbb/Calamity/pkg/move"
	"github.com/mcthouacbb/Calamity/pkg/search/time"
	"github.com/mcthouacbb/Calamity/pkg/search/tt"
	"github.com/mcthouacbb/Calamity/pkg/square"
)

// MaxDepth bounds how deep the search tree, and every ply-indexed
// table (killers, PV length, reductions), may go.
const MaxDepth = 256

// NewContext creates a Context searching board. Reuse a Context
// across moves of the same game so its transposition table and
// history heuristics stay warm; start a new one for a new game.
func NewContext(b *board.Board) *Context {
	return &Context{
		Board:   b,
		tt:      tt.NewTable(16),
		stopped: true,
	}
}

// Context holds everything one search needs: the position, the
// transposition table, move-ordering heuristics, and the limits and
// time manager governing how long it may run.
type Context struct {
	Board *board.Board
	tt    *tt.Table

	depth    int
	seldepth int
	nodes    int
	ttHits   int
	stopped  bool

	searchStart stdtime.Time

	killers [MaxDepth + 1][2]move.Move
	history [2][square.N][square.N]int32

	limits Limits
	time   time.Manager

	pv      move.Variation
	pvScore eval.Eval

	// report, if set, is called after every completed iterative-deepening
	// iteration so a caller (e.g. a UCI driver) can print "info" lines.
	report func(Report)
}

// SetReportFunc installs a callback invoked with a Report after each
// completed iteration of the search.
func (search *Context) SetReportFunc(f func(Report)) {
	search.report = f
}

// ResizeTT replaces the search's transposition table with one sized to
// fit within mbs megabytes, discarding whatever it held.
func (search *Context) ResizeTT(mbs int) {
	search.tt.Resize(mbs)
}

// ClearTT empties the transposition table and move-ordering heuristics,
// as the UCI "ucinewgame" command requires before a new game starts.
func (search *Context) ClearTT() {
	search.tt.Clear()
	search.killers = [MaxDepth + 1][2]move.Move{}
	search.history = [2][square.N][square.N]int32{}
}

// Search runs iterative deepening under limits and returns the best
// line found and its evaluation.
func (search *Context) Search(limits Limits) (move.Variation, eval.Eval) {
	search.start(limits)
	defer search.Stop()

	pv, score := search.iterativeDeepening()
	search.pv, search.pvScore = pv, score
	return pv, score
}

// InProgress reports whether a search is currently running.
func (search *Context) InProgress() bool {
	return !search.stopped
}

// Stop requests that any in-progress search return as soon as it
// next checks shouldStop.
func (search *Context) Stop() {
	search.stopped = true
}

func (search *Context) start(limits Limits) {
	search.UpdateLimits(limits)

	search.nodes = 0
	search.ttHits = 0
	search.seldepth = 0
	search.stopped = false
	search.searchStart = stdtime.Now()

	search.killers = [MaxDepth + 1][2]move.Move{}
}

// score returns the static evaluation of the current position.
func (search *Context) score() eval.Eval {
	return eval.Evaluate(search.Board.Current())
}

// draw returns a small randomized draw score, so the search doesn't
// treat every repetition/50-move draw identically and can still tell
// a slightly-better drawn line from a slightly-worse one.
func (search *Context) draw() eval.Eval {
	return eval.Eval(2 - (search.nodes & 3))
}
