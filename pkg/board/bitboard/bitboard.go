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

// Package bitboard implements a 64-bit bitboard and other related
// functions for manipulating them. Bit i of a Board corresponds to
// square.Square(i), which is rank-major starting from White's back
// rank (square a1 is bit 0).
package bitboard

import (
	"math/bits"

	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/square"
)

// Board is a 64-bit bitboard.
type Board uint64

// String returns a string representation of the given BB, one rank
// per line from rank 8 down to rank 1 to match FEN ordering.
func (b Board) String() string {
	var str string
	for rank := square.Rank8; ; rank-- {
		for file := square.FileA; file <= square.FileH; file++ {
			if b.IsSet(square.From(file, rank)) {
				str += "1"
			} else {
				str += "0"
			}
			if file != square.FileH {
				str += " "
			}
		}
		str += "\n"
		if rank == square.Rank1 {
			break
		}
	}
	return str
}

// Up shifts the given BB up (towards the 8th rank) relative to color.
func (b Board) Up(c piece.Color) Board {
	if c == piece.White {
		return b.North()
	}
	return b.South()
}

// Down shifts the given BB down (towards the 1st rank) relative to color.
func (b Board) Down(c piece.Color) Board {
	if c == piece.White {
		return b.South()
	}
	return b.North()
}

// North shifts the given BB towards the 8th rank.
func (b Board) North() Board {
	return b << 8
}

// South shifts the given BB towards the 1st rank.
func (b Board) South() Board {
	return b >> 8
}

// East shifts the given BB towards the H file, suppressing wrap.
func (b Board) East() Board {
	return (b &^ FileH) << 1
}

// West shifts the given BB towards the A file, suppressing wrap.
func (b Board) West() Board {
	return (b &^ FileA) >> 1
}

// SwapBytes reverses the rank order of the board (a vertical flip):
// White's perspective becomes Black's and vice versa.
func (b Board) SwapBytes() Board {
	return Board(bits.ReverseBytes64(uint64(b)))
}

// Pop returns the LSB of the given BB and removes it.
func (b *Board) Pop() square.Square {
	sq := b.FirstOne()
	*b &= *b - 1
	return sq
}

// Count returns the number of set bits in the given BB.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the LSB of the given BB. Undefined on an empty board.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// LastOne returns the MSB of the given BB. Undefined on an empty board.
func (b Board) LastOne() square.Square {
	return square.Square(63 - bits.LeadingZeros64(uint64(b)))
}

// Any reports whether the bitboard is non-empty.
func (b Board) Any() bool { return b != Empty }

// IsSet checks whether the given Square is set in the bitboard.
func (b Board) IsSet(index square.Square) bool {
	return b&Squares[index] != 0
}

// Set sets the given Square in the bitboard.
func (b *Board) Set(index square.Square) {
	if index == square.None {
		return
	}
	*b |= Squares[index]
}

// Unset clears the given Square in the bitboard.
func (b *Board) Unset(index square.Square) {
	if index == square.None {
		return
	}
	*b &^= Squares[index]
}
