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
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/square"
)

// whitePawnMovesFrom returns the single push from s, toward rank 8.
func whitePawnMovesFrom(s square.Square) bitboard.Board {
	b := board{origin: s}
	b.addAttack(0, 1)
	return b.board
}

// blackPawnMovesFrom returns the single push from s, toward rank 1.
func blackPawnMovesFrom(s square.Square) bitboard.Board {
	b := board{origin: s}
	b.addAttack(0, -1)
	return b.board
}

func whitePawnAttacksFrom(s square.Square) bitboard.Board {
	b := board{origin: s}

	b.addAttack(1, 1)  // right
	b.addAttack(-1, 1) // left

	return b.board
}

func blackPawnAttacksFrom(s square.Square) bitboard.Board {
	b := board{origin: s}

	b.addAttack(1, -1)  // right
	b.addAttack(-1, -1) // left

	return b.board
}

// Pawn returns the set of squares a pawn of color c on s can move to,
// including the single push, the double push (only from the home
// rank, chained off the single push), and diagonal
// captures. ep, if not square.None, is treated as an enemy-occupied
// square for the capture mask.
func Pawn(s, ep square.Square, c piece.Color, friends, enemies bitboard.Board) bitboard.Board {
	occupied := friends | enemies
	enemies.Set(ep)

	single := pawnPushes[c][s] &^ occupied
	var double bitboard.Board
	if (c == piece.White && s.Rank() == square.Rank2) || (c == piece.Black && s.Rank() == square.Rank7) {
		double = single.Up(c) &^ occupied
	}
	captures := pawnAttacks[c][s] & enemies

	return single | double | captures
}

// PawnAttacks returns the raw precomputed diagonal-capture set of a
// pawn of color c on s, with no occupancy applied; used for
// attacker/check queries.
func PawnAttacks(c piece.Color, s square.Square) bitboard.Board {
	return pawnAttacks[c][s]
}

// PushTable returns the single square directly ahead of s for color c,
// with no occupancy applied; used by move generation to chain single
// and double pushes explicitly instead of through Pawn's combined mask.
func PushTable(c piece.Color, s square.Square) bitboard.Board {
	return pawnPushes[c][s]
}
