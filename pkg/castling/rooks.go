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

package castling

import (
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/square"
)

// Squares records, for each color, the current square of the rook
// which may still castle king-side and queen-side. A rook no longer
// eligible (moved, captured, or castled already) is square.None.
//
// The generator assumes the standard king destinations (c/g file of
// the side-to-move's back rank); Chess960 rook placement is tracked
// here but not exercised by the generator (spec.md §9 open question c).
type Squares struct {
	KingSide  [piece.NColor]square.Square
	QueenSide [piece.NColor]square.Square
}

// NewSquares builds the initial rook-square table for the given
// castling rights on the standard back ranks.
func NewSquares(rights Rights) Squares {
	s := Squares{
		KingSide:  [piece.NColor]square.Square{square.None, square.None},
		QueenSide: [piece.NColor]square.Square{square.None, square.None},
	}

	if rights&WhiteKingside != 0 {
		s.KingSide[piece.White] = square.H1
	}
	if rights&WhiteQueenside != 0 {
		s.QueenSide[piece.White] = square.A1
	}
	if rights&BlackKingside != 0 {
		s.KingSide[piece.Black] = square.H8
	}
	if rights&BlackQueenside != 0 {
		s.QueenSide[piece.Black] = square.A8
	}

	return s
}

// Remove clears sq from whichever slot (if any) currently holds it.
func (s *Squares) Remove(c piece.Color, sq square.Square) {
	if s.KingSide[c] == sq {
		s.KingSide[c] = square.None
	}
	if s.QueenSide[c] == sq {
		s.QueenSide[c] = square.None
	}
}

// RemoveColor drops both of a color's castling rooks (played on a king move).
func (s *Squares) RemoveColor(c piece.Color) {
	s.KingSide[c] = square.None
	s.QueenSide[c] = square.None
}

// Rights recomputes the Rights bitmask implied by the tracked squares.
func (s Squares) Rights() Rights {
	var r Rights
	if s.KingSide[piece.White] != square.None {
		r |= WhiteKingside
	}
	if s.QueenSide[piece.White] != square.None {
		r |= WhiteQueenside
	}
	if s.KingSide[piece.Black] != square.None {
		r |= BlackKingside
	}
	if s.QueenSide[piece.Black] != square.None {
		r |= BlackQueenside
	}
	return r
}

// KingDestination is the standard king destination square for a
// castle on the given side and color.
func KingDestination(kingSide bool, c piece.Color) square.Square {
	if kingSide {
		return [piece.NColor]square.Square{square.G1, square.G8}[c]
	}
	return [piece.NColor]square.Square{square.C1, square.C8}[c]
}

// RookDestination is the standard rook destination square for a
// castle on the given side and color.
func RookDestination(kingSide bool, c piece.Color) square.Square {
	if kingSide {
		return [piece.NColor]square.Square{square.F1, square.F8}[c]
	}
	return [piece.NColor]square.Square{square.D1, square.D8}[c]
}
