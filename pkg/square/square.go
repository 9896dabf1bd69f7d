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

// Package square declares constants representing every square on a
// chessboard, and related utility functions.
//
// Squares are represented using the algebraic notation, numbered
// rank-major starting from White's back rank: a1 is 0, h1 is 7, a2 is
// 8, and h8 is 63.
// https://www.chessprogramming.org/Algebraic_Chess_Notation
// The null square is represented using the "-" symbol.
package square

import "fmt"

// New creates a new instance of a Square from the given identifier.
func New(id string) Square {
	switch {
	case id == "-":
		return None
	case len(id) != 2:
		panic("new square: invalid square id")
	}

	// ascii code to square index
	return From(fileFrom(string(id[0])), rankFrom(string(id[1])))
}

// From creates a new instance of a Square from the given file and rank.
func From(file File, rank Rank) Square {
	return Square(int(rank)*8 + int(file))
}

// Square represents a square on a chessboard.
type Square int

const None Square = -1

// N is the number of squares on a chessboard.
const N = 64

// constants representing various squares, numbered rank-major from
// White's back rank (a1 = 0) to Black's back rank (h8 = 63).
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1

	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2

	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3

	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4

	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5

	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6

	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7

	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// String converts a square into it's algebraic string representation.
func (s Square) String() string {
	if s == None {
		return "-"
	}

	// <file><rank>
	return fmt.Sprintf("%s%s", s.File(), s.Rank())
}

// File returns the file of the given square.
func (s Square) File() File {
	return File(s % 8)
}

// Rank returns the rank of the given square.
func (s Square) Rank() Rank {
	return Rank(s / 8)
}

// Diagonal returns the index (0..14) of the a1-h8 diagonal the square
// lies on; squares on the same diagonal share rank-file.
func (s Square) Diagonal() int {
	return int(s.Rank()) - int(s.File()) + 7
}

// AntiDiagonal returns the index (0..14) of the h1-a8 diagonal the
// square lies on; squares on the same anti-diagonal share rank+file.
func (s Square) AntiDiagonal() int {
	return int(s.Rank()) + int(s.File())
}
