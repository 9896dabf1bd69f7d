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

// Package tt implements a fixed-size, direct-mapped transposition
// table that caches search results (score, bound, depth, and best
// move) across the tree so repeated positions are not re-searched
// from scratch.
package tt

import (
	"unsafe"

	"github.com/mcthouacbb/Calamity/pkg/eval"
	"github.com/mcthouacbb/Calamity/pkg/move"
	"github.com/mcthouacbb/Calamity/pkg/zobrist"
)

// EntrySize is the size in bytes of a single tt entry.
var EntrySize = int(unsafe.Sizeof(Entry{}))

// NewTable creates a transposition table sized to fit within the
// given number of megabytes.
func NewTable(mbs int) *Table {
	size := (mbs * 1024 * 1024) / EntrySize
	if size < 1 {
		size = 1
	}
	return &Table{
		table: make([]Entry, size),
		size:  size,
	}
}

// Table is a fixed-size, direct-mapped, always-replace transposition
// table: every probe/store goes through exactly one slot (hash mod
// len(table)), and a store overwrites whatever previously occupied
// that slot.
type Table struct {
	table []Entry
	size  int
}

// Clear empties every entry in the table.
func (tt *Table) Clear() {
	clear(tt.table)
}

// Resize replaces the table with one of the new size, discarding all
// existing entries.
func (tt *Table) Resize(mbs int) {
	size := (mbs * 1024 * 1024) / EntrySize
	if size < 1 {
		size = 1
	}
	*tt = Table{
		table: make([]Entry, size),
		size:  size,
	}
}

// Store records entry's data at its hash's slot, unconditionally
// overwriting anything previously there.
func (tt *Table) Store(entry Entry) {
	*tt.fetch(entry.Hash) = entry
}

// Probe fetches the entry at hash's slot and reports whether it is
// actually usable: occupied, and not a stale collision from a
// different position.
func (tt *Table) Probe(hash zobrist.Key) (Entry, bool) {
	entry := *tt.fetch(hash)
	return entry, entry.Bound != NoBound && entry.Hash == hash
}

func (tt *Table) fetch(hash zobrist.Key) *Entry {
	return &tt.table[uint64(hash)%uint64(tt.size)]
}

// hashfullSample is the number of slots sampled from the front of the
// table to estimate occupancy, instead of scanning the whole table on
// every "info" line.
const hashfullSample = 1000

// Hashfull estimates the fraction of the table currently occupied, as
// a number in [0, 1].
func (tt *Table) Hashfull() float64 {
	n := hashfullSample
	if n > tt.size {
		n = tt.size
	}
	if n == 0 {
		return 0
	}

	used := 0
	for i := 0; i < n; i++ {
		if tt.table[i].Bound != NoBound {
			used++
		}
	}
	return float64(used) / float64(n)
}

// Entry is a single transposition table record.
type Entry struct {
	Hash  zobrist.Key // full key, to detect a collision in the slot
	Move  move.Move   // best/refutation move found for this position
	Value Eval        // score, mate-distance-adjusted for storage
	Bound Bound       // what relationship Value holds to the true score
	Depth uint8       // depth this entry was searched to
}

// Bound records whether an entry's Value is the position's exact
// score or only a bound on it, as determined by how the search that
// produced the entry terminated.
type Bound uint8

const (
	NoBound    Bound = iota // slot is empty
	ExactBound              // Value is the position's exact score
	LowerBound              // Value is a lower bound (search failed high)
	UpperBound              // Value is an upper bound (search failed low)
)

// Eval is an entry's stored score. Mate scores are normalized to
// "plys till mate from this node" rather than "from the search root",
// so the same entry stays meaningful when reached at a different ply.
type Eval eval.Eval

// EvalFrom converts a search-time score (plys till mate from root)
// into the node-relative form the table stores.
func EvalFrom(score eval.Eval, ply int) Eval {
	switch {
	case score > eval.WinInMaxPly:
		score += eval.Eval(ply)
	case score < eval.LoseInMaxPly:
		score -= eval.Eval(ply)
	}
	return Eval(score)
}

// Eval converts a stored node-relative score back into a search-time
// score (plys till mate from root), assuming it is probed at ply.
func (e Eval) Eval(ply int) eval.Eval {
	score := eval.Eval(e)
	switch {
	case score > eval.WinInMaxPly:
		score -= eval.Eval(ply)
	case score < eval.LoseInMaxPly:
		score += eval.Eval(ply)
	}
	return score
}
