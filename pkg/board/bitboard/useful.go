// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

package bitboard

import "github.com/mcthouacbb/Calamity/pkg/square"

// useful bitboard definitions
const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// file bitboards
const (
	FileA Board = 0x0101010101010101
	FileB Board = 0x0202020202020202
	FileC Board = 0x0404040404040404
	FileD Board = 0x0808080808080808
	FileE Board = 0x1010101010101010
	FileF Board = 0x2020202020202020
	FileG Board = 0x4040404040404040
	FileH Board = 0x8080808080808080
)

var Files = [...]Board{
	square.FileA: FileA,
	square.FileB: FileB,
	square.FileC: FileC,
	square.FileD: FileD,
	square.FileE: FileE,
	square.FileF: FileF,
	square.FileG: FileG,
	square.FileH: FileH,
}

// rank bitboards. Rank1 is White's back rank, occupying the low byte
// since a1 is square 0 and squares increase rank-major from there.
const (
	Rank1 Board = 0x00000000000000ff
	Rank2 Board = 0x000000000000ff00
	Rank3 Board = 0x0000000000ff0000
	Rank4 Board = 0x00000000ff000000
	Rank5 Board = 0x000000ff00000000
	Rank6 Board = 0x0000ff0000000000
	Rank7 Board = 0x00ff000000000000
	Rank8 Board = 0xff00000000000000
)

var Ranks = [...]Board{
	square.Rank1: Rank1,
	square.Rank2: Rank2,
	square.Rank3: Rank3,
	square.Rank4: Rank4,
	square.Rank5: Rank5,
	square.Rank6: Rank6,
	square.Rank7: Rank7,
	square.Rank8: Rank8,
}

// Squares holds a singleton bit for every square, indexed by square.Square.
var Squares [square.N]Board

// Diagonals holds the 15 a1-h8-direction diagonals, indexed by
// Square.Diagonal(). AntiDiagonals holds the 15 h1-a8-direction
// diagonals, indexed by Square.AntiDiagonal(). Both are built in
// init rather than hardcoded, since they depend on the square
// numbering.
var (
	Diagonals     [15]Board
	AntiDiagonals [15]Board
)

// Between[s1][s2] is the set of squares strictly between s1 and s2 if
// they share a rank, file, or diagonal (exclusive of both endpoints),
// or Empty otherwise. Through[s1][s2] is the full line the two squares
// lie on (inclusive of every square on it), or Empty if they share
// none.
var (
	Between [square.N][square.N]Board
	Through [square.N][square.N]Board
)

func init() {
	mask := Board(1)
	for s := square.A1; s <= square.H8; s++ {
		Squares[s] = mask
		mask <<= 1
	}

	for s := square.A1; s <= square.H8; s++ {
		Diagonals[s.Diagonal()] |= Squares[s]
		AntiDiagonals[s.AntiDiagonal()] |= Squares[s]
	}

	for s1 := square.A1; s1 <= square.H8; s1++ {
		for s2 := square.A1; s2 <= square.H8; s2++ {
			if s1 == s2 {
				continue
			}

			var line Board
			switch {
			case s1.File() == s2.File():
				line = Files[s1.File()]
			case s1.Rank() == s2.Rank():
				line = Ranks[s1.Rank()]
			case s1.Diagonal() == s2.Diagonal():
				line = Diagonals[s1.Diagonal()]
			case s1.AntiDiagonal() == s2.AntiDiagonal():
				line = AntiDiagonals[s1.AntiDiagonal()]
			default:
				continue // s1 and s2 don't share a line
			}

			occ := Squares[s1] | Squares[s2]
			Through[s1][s2] = line
			Between[s1][s2] = Hyperbola(s1, occ, line) & Hyperbola(s2, occ, line)
		}
	}
}
