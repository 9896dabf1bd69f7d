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

// Package move implements a packed 16-bit chess move representation,
// together with a fixed-capacity list used to collect generated moves.
package move

import (
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/square"
)

// Kind distinguishes the four move encodings a Move can hold.
type Kind uint16

const (
	Normal Kind = iota
	EnPassant
	Castle
	Promotion
)

// Move is a packed representation of a chess move:
//
//	bits 0-5:   from square
//	bits 6-11:  to square
//	bits 12-13: Kind
//	bits 14-15: promotion piece type, offset from piece.Knight
//
// Castling is encoded king-captures-own-rook: the to-square is the
// rook's square, not the king's destination.
type Move uint16

// Null is the zero move, used only as a sentinel for null-move pruning
// and as the "no move found yet" value during search and TT probes.
const Null Move = 0

// New builds a Normal move from a source and destination square.
func New(from, to square.Square) Move {
	return Move(from) | Move(to)<<6
}

// NewEnPassant builds an en-passant capture move.
func NewEnPassant(from, to square.Square) Move {
	return New(from, to) | Move(EnPassant)<<12
}

// NewCastle builds a castling move; to is the castling rook's square.
func NewCastle(from, rookSquare square.Square) Move {
	return New(from, rookSquare) | Move(Castle)<<12
}

// NewPromotion builds a promotion move to the given piece type, which
// must be one of Knight, Bishop, Rook, or Queen.
func NewPromotion(from, to square.Square, promo piece.Type) Move {
	return New(from, to) | Move(Promotion)<<12 | Move(promo-piece.Knight)<<14
}

// From returns the move's source square.
func (m Move) From() square.Square {
	return square.Square(m & 0x3f)
}

// To returns the move's destination square. For castling moves this
// is the castling rook's square, not the king's destination.
func (m Move) To() square.Square {
	return square.Square((m >> 6) & 0x3f)
}

// Kind returns the move's encoding kind.
func (m Move) Kind() Kind {
	return Kind((m >> 12) & 0x3)
}

// PromotionPiece returns the piece type a Promotion move promotes to.
// The result is meaningless for other move kinds.
func (m Move) PromotionPiece() piece.Type {
	return piece.Type((m>>14)&0x3) + piece.Knight
}

func (m Move) IsEnPassant() bool { return m.Kind() == EnPassant }
func (m Move) IsCastle() bool    { return m.Kind() == Castle }
func (m Move) IsPromotion() bool { return m.Kind() == Promotion }

// String renders a move in long algebraic form ("e2e4", "e7e8q").
// Castling moves are rendered in king-destination form as required by
// the UCI-style move-text convention (e1g1 rather than e1h1).
func (m Move) String() string {
	from, to := m.From(), m.To()

	if m.IsCastle() {
		dst := to
		if to > from {
			dst = from + 2
		} else {
			dst = from - 2
		}
		return from.String() + dst.String()
	}

	str := from.String() + to.String()
	if m.IsPromotion() {
		str += m.PromotionPiece().String()
	}
	return str
}

// MaxMoves bounds the number of pseudo/fully-legal moves any chess
// position can have; move lists are preallocated to this capacity.
const MaxMoves = 218

// List is a fixed-capacity collection of generated moves, avoiding a
// heap allocation per move-generation call on the hot search path.
type List struct {
	Moves [MaxMoves]Move
	Count int
}

// Add appends a move to the list.
func (l *List) Add(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}
