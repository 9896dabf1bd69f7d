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

import "fmt"

// Variation is a principal variation: a line of moves that can be
// played one after another from the position it was collected at.
type Variation struct {
	moves []Move
}

// Move returns the variation's ith move, or Null if it doesn't have
// one that deep.
func (v *Variation) Move(i int) Move {
	if len(v.moves) <= i {
		return Null
	}
	return v.moves[i]
}

// Clear empties the variation.
func (v *Variation) Clear() {
	v.moves = v.moves[:0]
}

// Update replaces the variation with pMove followed by line: called
// by a parent node once it knows pMove is its new best move and line
// is the continuation the child node found for it.
func (v *Variation) Update(pMove Move, line Variation) {
	v.Clear()
	v.moves = append(v.moves, pMove)
	v.moves = append(v.moves, line.moves...)
}

// Len reports the number of moves in the variation.
func (v *Variation) Len() int {
	return len(v.moves)
}

// String renders the variation as space-separated long algebraic
// moves, as required for a UCI "pv" field.
func (v Variation) String() string {
	str := ""
	for i, m := range v.moves {
		if i > 0 {
			str += " "
		}
		str += m.String()
	}
	return str
}

// ensure Variation satisfies fmt.Stringer
var _ fmt.Stringer = Variation{}
