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
	"github.com/mcthouacbb/Calamity/pkg/move"
	"github.com/mcthouacbb/Calamity/pkg/piece"
)

// move-ordering score bands: every TT move sorts before every capture,
// and every capture sorts before every quiet move, so the three tiers
// never overlap regardless of their own internal scores.
const (
	ttMoveScore    int32 = 1_000_000
	killerScore    int32 = -1
	quietBaseScore int32 = -10_000_000
)

// scoreMoves assigns each move in list an ordering score: the TT move
// first, then captures by MVV/LVA, then killers, then quiet moves by
// history.
func (search *Context) scoreMoves(s *board.BoardState, list move.List, ply int, ttMove move.Move) move.OrderedList[int32] {
	return move.ScoreMoves(list, func(m move.Move) int32 {
		switch {
		case m == ttMove:
			return ttMoveScore

		case s.IsCapture(m):
			captured := piece.Pawn
			if !m.IsEnPassant() {
				captured = s.Mailbox[m.To()].Type()
			}
			moving := s.Mailbox[m.From()].Type()
			return int32(8*int(captured)-int(moving)) + 100

		case m == search.killers[ply][0], m == search.killers[ply][1]:
			return killerScore

		default:
			return quietBaseScore + search.history[s.SideToMove][m.From()][m.To()]
		}
	})
}
