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
	"github.com/mcthouacbb/Calamity/pkg/board"
	"github.com/mcthouacbb/Calamity/pkg/eval"
	"github.com/mcthouacbb/Calamity/pkg/move"
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/search/tt"
)

// negamax is a simplified version of the minmax searching algorithm, which
// uses a single function for both the maximizing and minimizing players.
// This can be achieved because chess is a zero-sum game and one player's
// advantage is the other's disadvantage.
// https://www.chessprogramming.org/Negamax
//
// This function also implements alpha-beta pruning to reduce the amount of
// nodes that need to be searched, due to the fact that a single refutation
// is enough to mark a position as worse compared to an already found one.
// https://www.chessprogramming.org/Alpha-Beta
func (search *Context) negamax(ply, depth int, alpha, beta eval.Eval, pv *move.Variation, cutNode bool) eval.Eval {
	pv.Clear()
	search.nodes++

	if ply > search.seldepth {
		search.seldepth = ply
	}

	s := search.Board.Current()

	switch {
	case search.shouldStop():
		// some search limit has been breached; the return value doesn't
		// matter since this iteration's result will be discarded in
		// favor of the previous one's
		return 0

	case search.Board.IsDraw():
		return search.draw()

	case s.HasWonByChecks(s.SideToMove.Other()):
		// the side to move has already conceded ChecksToLose checks;
		// the game is over regardless of material or mobility.
		return eval.MatedIn(ply)

	case depth <= 0, ply >= MaxDepth:
		return search.quiescence(ply, alpha, beta)
	}

	isRoot := ply == 0
	isPVNode := beta-alpha != 1 // beta == alpha+1 for null-window searches

	inCheck := s.InCheck()

	// mate-distance pruning: a line that wins/loses by checks faster
	// than the bounds already guarantee can never change the result.
	if !isRoot {
		matedScore := eval.MatedIn(ply)
		wonScore := eval.WonByChecksIn(ply + 1)
		if matedScore > alpha {
			alpha = matedScore
		}
		if wonScore < beta {
			beta = wonScore
		}
		if alpha >= beta {
			return alpha
		}
	}

	// transposition table probe
	var ttMove = move.Null
	entry, hit := search.tt.Probe(s.Hash)
	if hit {
		ttMove = entry.Move
		if !isPVNode && int(entry.Depth) >= depth {
			search.ttHits++
			value := entry.Value.Eval(ply)

			switch entry.Bound {
			case tt.ExactBound:
				return value
			case tt.LowerBound:
				if value > alpha {
					alpha = value
				}
			case tt.UpperBound:
				if value < beta {
					beta = value
				}
			}

			if alpha >= beta {
				return value
			}
		}
	}

	staticEval := search.score()

	// whole-node pruning techniques, skipped in check (the position is
	// too volatile to trust a static evaluation) and at PV nodes (we
	// want an exact score, not a quick cutoff).
	if !isPVNode && !inCheck {
		// reverse futility pruning: if we're already comfortably above
		// beta even after conceding depth*100, a full search is very
		// unlikely to change that.
		if depth <= 4 && staticEval-eval.Eval(100*depth) >= beta {
			return staticEval
		}

		// null-move pruning: letting the opponent move twice in a row
		// and still failing high means our position is so strong that
		// a real move will too.
		if depth >= 3 && staticEval >= beta && search.hasNonPawnMaterial(s) {
			search.Board.MakeNullMove()
			var childPV move.Variation
			score := -search.negamax(ply+1, depth-1-3, -beta, -beta+1, &childPV, !cutNode)
			search.Board.UnmakeMove()

			if search.stopped {
				return 0
			}
			if score >= beta {
				return beta
			}
		}
	}

	list := s.GenerateMoves()
	if list.Count == 0 {
		if inCheck {
			return eval.MatedIn(ply)
		}
		return eval.Draw
	}

	originalAlpha := alpha

	bestMove := ttMove
	bestEval := -eval.Inf

	quietsTried := make([]move.Move, 0, list.Count)

	ordered := search.scoreMoves(s, list, ply, ttMove)
	for i := 0; i < ordered.Length; i++ {
		m := ordered.PickMove(i)

		quiet := !s.IsCapture(m) && !m.IsPromotion()

		// late-move/futility pruning: at shallow depth and outside a
		// won/lost mating line, a quiet move so far below alpha that
		// even a generous margin can't close the gap is not worth the
		// full recursive search.
		if !isRoot && !isPVNode && !inCheck && quiet && bestEval > -eval.WinInMaxPly &&
			depth <= 6 && staticEval+eval.Eval(100+150*depth) <= alpha {
			continue
		}

		var childPV move.Variation

		search.Board.MakeMove(m)

		childInCheck := search.Board.Current().InCheck()

		var score eval.Eval
		reduction := 0
		if depth >= 3 && i >= 3 && quiet && !childInCheck {
			reduction = reductions[min(depth, MaxDepth)][min(i+1, 127)]
			if isPVNode {
				reduction--
			}
			if cutNode {
				reduction++
			}
			if reduction < 0 {
				reduction = 0
			}
			if reduction > depth-1 {
				reduction = depth - 1
			}
		}

		if i == 0 {
			score = -search.negamax(ply+1, depth-1, -beta, -alpha, &childPV, false)
		} else {
			score = -search.negamax(ply+1, depth-1-reduction, -alpha-1, -alpha, &childPV, true)

			if score > alpha && reduction > 0 {
				// the reduced search beat alpha; re-verify at full depth
				score = -search.negamax(ply+1, depth-1, -alpha-1, -alpha, &childPV, !cutNode)
			}

			if isPVNode && score > alpha && score < beta {
				// re-search with the full window to get an exact score
				score = -search.negamax(ply+1, depth-1, -beta, -alpha, &childPV, false)
			}
		}

		search.Board.UnmakeMove()

		if search.stopped {
			return 0
		}

		if quiet {
			quietsTried = append(quietsTried, m)
		}

		if score > bestEval {
			bestMove = m
			bestEval = score

			if score > alpha {
				alpha = score
				pv.Update(m, childPV)

				if alpha >= beta {
					if quiet {
						search.storeKiller(ply, m)
						bonus := historyBonus(depth)
						search.updateHistory(int(s.SideToMove), m, bonus)
						penalty := historyPenalty(depth)
						for _, failed := range quietsTried[:len(quietsTried)-1] {
							search.updateHistory(int(s.SideToMove), failed, penalty)
						}
					}
					break
				}
			}
		}
	}

	if !search.stopped {
		var bound tt.Bound
		switch {
		case bestEval <= originalAlpha:
			bound = tt.UpperBound
		case bestEval >= beta:
			bound = tt.LowerBound
		default:
			bound = tt.ExactBound
		}

		search.tt.Store(tt.Entry{
			Hash:  s.Hash,
			Value: tt.EvalFrom(bestEval, ply),
			Move:  bestMove,
			Depth: uint8(depth),
			Bound: bound,
		})
	}

	return bestEval
}

// hasNonPawnMaterial reports whether the side to move has any piece
// other than pawns and its king, used to guard null-move pruning
// against zugzwang-prone pawn/king endgames.
func (search *Context) hasNonPawnMaterial(s *board.BoardState) bool {
	us := s.SideToMove
	return s.Colors[us]&^(s.Pieces[piece.Pawn]|s.Pieces[piece.King]) != 0
}
