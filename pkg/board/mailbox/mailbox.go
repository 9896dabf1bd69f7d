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

// Package mailbox implements a 8x8 mailbox chessboard representation,
// used alongside bitboards for O(1) piece lookup by square.
package mailbox

import (
	"fmt"
	"strings"

	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/square"
)

// Board maps every square to the piece occupying it.
type Board [square.N]piece.Piece

// String renders the board rank 8 down to rank 1, a file to h file,
// for human-readable display.
func (b Board) String() string {
	var s strings.Builder

	s.WriteString("+---+---+---+---+---+---+---+---+\n")
	for rank := square.Rank8; ; rank-- {
		s.WriteString("| ")
		for file := square.FileA; file <= square.FileH; file++ {
			s.WriteString(b[square.From(file, rank)].String())
			s.WriteString(" | ")
		}
		fmt.Fprintln(&s, rank)
		s.WriteString("+---+---+---+---+---+---+---+---+\n")

		if rank == square.Rank1 {
			break
		}
	}
	s.WriteString("  a   b   c   d   e   f   g   h\n")

	return s.String()
}

// FEN generates the piece-placement field of a FEN string.
func (b Board) FEN() string {
	var s strings.Builder

	for rank := square.Rank8; ; rank-- {
		empty := 0
		for file := square.FileA; file <= square.FileH; file++ {
			p := b[square.From(file, rank)]
			if p == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprint(&s, empty)
				empty = 0
			}
			s.WriteString(p.String())
		}
		if empty > 0 {
			fmt.Fprint(&s, empty)
		}
		if rank != square.Rank1 {
			s.WriteByte('/')
		} else {
			break
		}
	}

	return s.String()
}
