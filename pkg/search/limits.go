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
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/search/time"
)

// Limits bounds how long a search is allowed to run, as requested by
// the caller (typically a UCI "go" command).
type Limits struct {
	Nodes int // max nodes searched, 0 means unbounded
	Depth int // max depth searched, 0 means unbounded

	Infinite        bool
	MoveTime        int // fixed time for this move, in milliseconds
	Time, Increment [piece.NColor]int
	MovesToGo       int
}

// UpdateLimits installs new limits on a Context and (re)commits to a
// time manager deadline; the caller should only do this while no
// search is already running on the context.
func (search *Context) UpdateLimits(limits Limits) {
	search.limits = limits

	if search.limits.Depth <= 0 || search.limits.Depth > MaxDepth {
		search.limits.Depth = MaxDepth
	}
	if search.limits.Nodes <= 0 {
		search.limits.Nodes = 1 << 62
	}

	switch {
	case limits.Infinite:
		search.time = time.InfiniteManager{}
	case limits.MoveTime != 0:
		search.time = &time.MoveManager{Duration: limits.MoveTime}
	case limits.Time == [piece.NColor]int{} && limits.Increment == [piece.NColor]int{}:
		// no clock given: only the depth/node limits bound the search
		search.time = time.InfiniteManager{}
	default:
		search.time = &time.NormalManager{
			Time:      limits.Time,
			Increment: limits.Increment,
			MovesToGo: limits.MovesToGo,
			Us:        search.Board.Current().SideToMove,
		}
	}

	search.time.GetDeadline()
}

// shouldStop reports whether the search must stop right now: the
// caller asked it to, a time/node limit was crossed, or (cheapest of
// all) neither has happened yet. Limits are polled every 1024 nodes
// rather than every node, since time.Now() and the node counter
// comparison are not free.
func (search *Context) shouldStop() bool {
	switch {
	case search.stopped:
		return true

	case search.nodes&1023 != 0:
		return false

	case search.nodes > search.limits.Nodes, search.time.Expired():
		search.Stop()
		return true

	default:
		return false
	}
}
