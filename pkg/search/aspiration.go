// Copyright © 2023 Rak Laptudirm <raklaptudirm@gmail.com>
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

package search

import (
	"github.com/mcthouacbb/Calamity/pkg/eval"
	"github.com/mcthouacbb/Calamity/pkg/move"
)

// aspirationWindowDelta is the half-width of the initial window placed
// around the previous iteration's score.
const aspirationWindowDelta eval.Eval = 30

// aspirationWindow implements aspiration windows, which are a way to
// reduce the search space in an alpha-beta search. The technique is to
// use a guess of the expected value (usually from the last iteration in
// iterative deepening), and use a window around this as the alpha-beta
// bounds. Because the window is narrower, more beta cutoffs are achieved,
// and the search takes a shorter time. The drawback is that if the true
// score is outside this window, then a costly re-search must be made.
func (search *Context) aspirationWindow(depth int, prevEval eval.Eval) (eval.Eval, move.Variation) {
	alpha := -eval.Inf
	beta := eval.Inf

	windowSize := aspirationWindowDelta

	// only narrow the window once there's a prior score worth trusting
	if depth >= 5 {
		alpha = prevEval - windowSize
		beta = prevEval + windowSize
	}

	for {
		if search.shouldStop() {
			return 0, move.Variation{}
		}

		var pv move.Variation
		result := search.negamax(0, depth, alpha, beta, &pv, false)

		switch {
		case result <= alpha:
			// failed low: widen downward and re-search at the same depth
			beta = (alpha + beta) / 2
			alpha = result - windowSize

		case result >= beta:
			// failed high: widen upward
			beta = result + windowSize

		default:
			return result, pv
		}

		if alpha < -eval.Inf {
			alpha = -eval.Inf
		}
		if beta > eval.Inf {
			beta = eval.Inf
		}

		windowSize *= 2
	}
}
