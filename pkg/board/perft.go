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

package board

// Perft counts the number of leaf positions reachable from the current
// position at the given depth, making and unmaking every move along
// the way. It is a correctness harness for GenerateMoves and MakeMove,
// not a search: depth 0 always counts as a single node.
func (b *Board) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}

	list := b.Current().GenerateMoves()
	if depth == 1 {
		return uint64(list.Count)
	}

	var nodes uint64
	for i := 0; i < list.Count; i++ {
		b.MakeMove(list.Moves[i])
		nodes += b.Perft(depth - 1)
		b.UnmakeMove()
	}
	return nodes
}

// Divide runs Perft one ply deep for every legal move and returns the
// per-move leaf counts, keyed by the move's long algebraic notation;
// useful for diffing against a reference perft to localize a bug.
func (b *Board) Divide(depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth < 1 {
		return counts
	}

	list := b.Current().GenerateMoves()
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		b.MakeMove(m)
		counts[m.String()] = b.Perft(depth - 1)
		b.UnmakeMove()
	}
	return counts
}
