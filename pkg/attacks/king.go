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

package attacks

import (
	"github.com/mcthouacbb/Calamity/pkg/board/bitboard"
	"github.com/mcthouacbb/Calamity/pkg/castling"
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/square"
)

// kingAttacksFrom generates an attack bitboard containing all the
// possible squares a king can move to from the given square.
func kingAttacksFrom(from square.Square) bitboard.Board {
	b := board{origin: from}

	// set all possible attack squares
	b.addAttack(1, 0)
	b.addAttack(1, 1)
	b.addAttack(0, 1)
	b.addAttack(-1, 0)
	b.addAttack(0, -1)
	b.addAttack(1, -1)
	b.addAttack(-1, 1)
	b.addAttack(-1, -1)

	return b.board
}

// King returns the attack bitboard of a king on s, including pseudo-legal
// castling destinations. A castle is offered whenever rooks still
// tracks an eligible rook for that side and the squares between the
// king and that rook (exclusive of both, via bitboard.Between) are
// unoccupied; it is up to the caller (the move generator, which knows
// the check state) to withhold castles that move the king through or
// into check.
func King(s square.Square, friends, occupied bitboard.Board, rooks castling.Squares, c piece.Color) bitboard.Board {
	base := kingAttacks[s] &^ friends

	if rook := rooks.KingSide[c]; rook != square.None {
		if occupied&bitboard.Between[s][rook] == bitboard.Empty {
			base.Set(castling.KingDestination(true, c))
		}
	}
	if rook := rooks.QueenSide[c]; rook != square.None {
		if occupied&bitboard.Between[s][rook] == bitboard.Empty {
			base.Set(castling.KingDestination(false, c))
		}
	}

	return base
}

// KingAttacks returns the raw precomputed king attack set from s, with
// no friendly-piece mask or castling applied; used for attacker/check
// queries.
func KingAttacks(s square.Square) bitboard.Board {
	return kingAttacks[s]
}
