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

package move

// score is any integer type move ordering scores may be expressed in.
// uint64 is excluded since OrderedMove packs it alongside a move into
// a single uint64 and would overflow.
type score interface {
	~int | ~int8 | ~int16 | ~int32 |
		~uint | ~uint8 | ~uint16 | ~uint32
}

// ScoreMoves pairs every move in list with scorer's judgment of it,
// producing an OrderedMoveList that the search loop can repeatedly
// PickMove from without a separate full sort.
func ScoreMoves[T score](list List, scorer func(Move) T) OrderedList[T] {
	ordered := make([]orderedMove[T], list.Count)
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		ordered[i] = newOrdered(m, scorer(m))
	}
	return OrderedList[T]{moves: ordered, Length: list.Count}
}

// OrderedList is a move list whose moves carry a search-assigned
// ordering score.
type OrderedList[T score] struct {
	moves  []orderedMove[T]
	Length int
}

// PickMove runs one selection-sort step: it finds the best-scoring
// move from index onward, swaps it into index, and returns it. The
// list is deliberately not sorted up front, since alpha-beta pruning
// usually means only the first few moves are ever examined.
func (list *OrderedList[T]) PickMove(index int) Move {
	bestIndex := index
	bestScore := list.moves[index].score()

	for i := index + 1; i < list.Length; i++ {
		if s := list.moves[i].score(); s > bestScore {
			bestIndex = i
			bestScore = s
		}
	}

	list.moves[index], list.moves[bestIndex] = list.moves[bestIndex], list.moves[index]
	return list.moves[index].move()
}

// newOrdered packs a move and its score into a single word: [score
// 32 bits][move 16 bits], avoiding a heap-allocated struct per move.
func newOrdered[T score](m Move, s T) orderedMove[T] {
	return orderedMove[T](uint64(uint32(s))<<16 | uint64(m))
}

type orderedMove[T score] uint64

func (m orderedMove[T]) score() T  { return T(m >> 16) }
func (m orderedMove[T]) move() Move { return Move(m & 0xFFFF) }
