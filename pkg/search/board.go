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

import "github.com/mcthouacbb/Calamity/pkg/board"

// String returns a human-readable ascii art representation of the
// search's current position, along with its fen string and zobrist
// hash.
func (search *Context) String() string {
	return search.Board.Current().String()
}

// SetPosition replaces the search's board with a fresh one parsed
// from fen.
func (search *Context) SetPosition(fen string) error {
	b, err := board.NewBoard(fen)
	if err != nil {
		return err
	}
	search.Board = b
	return nil
}

// MakeMoves plays the given long-algebraic moves on the search board,
// in order, as used to replay a UCI "position ... moves ..." command.
func (search *Context) MakeMoves(moves ...string) error {
	for _, str := range moves {
		m, err := search.Board.Current().ParseMove(str)
		if err != nil {
			return err
		}
		search.Board.MakeMove(m)
	}
	return nil
}
