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

package search

import (
	"github.com/mcthouacbb/Calamity/pkg/eval"
	"github.com/mcthouacbb/Calamity/pkg/move"
)

// quiescence searches only "noisy" moves (captures and promotions)
// past the main search's horizon, so a side isn't credited with
// material it is about to lose right back. Standing pat — the static
// eval with no move played — is always a legal choice, since a side
// is never forced to play on if doing nothing scores better.
func (search *Context) quiescence(ply int, alpha, beta eval.Eval) eval.Eval {
	search.nodes++
	if ply > search.seldepth {
		search.seldepth = ply
	}

	if search.shouldStop() {
		return 0
	}

	s := search.Board.Current()

	if s.HasWonByChecks(s.SideToMove.Other()) {
		// the side to move has already conceded ChecksToLose checks;
		// the game is over regardless of material or mobility.
		return eval.MatedIn(ply)
	}

	standPat := search.score()
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	list := s.GenerateMoves()
	if list.Count == 0 {
		if s.InCheck() {
			return eval.MatedIn(ply)
		}
		return eval.Draw
	}
	if search.Board.IsDraw() {
		return search.draw()
	}

	best := standPat
	ordered := search.scoreMoves(s, list, ply, move.Null)

	for i := 0; i < ordered.Length; i++ {
		m := ordered.PickMove(i)
		if !s.IsCapture(m) && !m.IsPromotion() {
			continue
		}

		// skip captures that lose material outright: quiescence only
		// needs to settle the exchange, not explore every recapture
		// that was never going to pay off.
		if !m.IsPromotion() && !eval.SEE(s, m, 0) {
			continue
		}

		search.Board.MakeMove(m)
		score := -search.quiescence(ply+1, -beta, -alpha)
		search.Board.UnmakeMove()

		if score > best {
			best = score
			if score > alpha {
				alpha = score
				if alpha >= beta {
					break
				}
			}
		}
	}

	return best
}
