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

import "github.com/mcthouacbb/Calamity/pkg/move"

// storeKiller records killer as the refutation of the move before it
// at this ply, bumping the previous killer down to second place. Only
// quiet moves are tracked: a capture that caused a cutoff is already
// ordered well by MVV/LVA.
func (search *Context) storeKiller(ply int, killer move.Move) {
	if killer != search.killers[ply][0] {
		search.killers[ply][1] = search.killers[ply][0]
		search.killers[ply][0] = killer
	}
}

// updateHistory applies bonus to m's history score, if m is quiet.
// The update includes a gravity term so the score stays bounded
// instead of growing without limit across a long search.
func (search *Context) updateHistory(c int, m move.Move, bonus int32) {
	entry := &search.history[c][m.From()][m.To()]
	*entry += bonus - *entry*abs32(bonus)/16384
}

// historyBonus is the history update applied on a beta cutoff at
// depth, capped so one lucky cutoff can't dominate the table.
func historyBonus(depth int) int32 {
	b := int32(depth * 155)
	if b > 2000 {
		return 2000
	}
	return b
}

// historyPenalty is applied to quiet moves that were tried and failed
// to cause the cutoff a later move did, so the table punishes moves
// that looked promising but weren't as much as it rewards the ones
// that worked.
func historyPenalty(depth int) int32 {
	return -historyBonus(depth)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
