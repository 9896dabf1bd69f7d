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

// Package attacks precomputes and serves attack bitboards for every
// piece type, both the non-sliding tables (king, knight, pawn) and the
// hyperbola-quintessence sliders (bishop, rook, queen).
package attacks

import (
	"github.com/mcthouacbb/Calamity/pkg/board/bitboard"
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/square"
)

// lookup tables for precalculated attack boards of non-sliding pieces
var (
	kingAttacks   [square.N]bitboard.Board
	knightAttacks [square.N]bitboard.Board
	pawnPushes    [piece.NColor][square.N]bitboard.Board
	pawnAttacks   [piece.NColor][square.N]bitboard.Board
)

// init initializes the attack bitboard lookup tables for non-sliding
// pieces by computing the bitboards for each square.
func init() {
	for s := square.A1; s <= square.H8; s++ {
		kingAttacks[s] = kingAttacksFrom(s)
		knightAttacks[s] = knightAttacksFrom(s)
		pawnPushes[piece.White][s] = whitePawnMovesFrom(s)
		pawnPushes[piece.Black][s] = blackPawnMovesFrom(s)
		pawnAttacks[piece.White][s] = whitePawnAttacksFrom(s)
		pawnAttacks[piece.Black][s] = blackPawnAttacksFrom(s)
	}
}

type board struct {
	origin square.Square
	board  bitboard.Board
}

// addAttack adds the given square, offset from origin by the given
// file and rank deltas, to the attack bitboard, but only if it lies
// on the board.
func (b *board) addAttack(fileOffset square.File, rankOffset square.Rank) {
	attackFile := b.origin.File() + fileOffset
	attackRank := b.origin.Rank() + rankOffset

	switch {
	case attackFile < square.FileA, attackFile > square.FileH,
		attackRank < square.Rank1, attackRank > square.Rank8:
		return
	}

	attackSquare := square.From(attackFile, attackRank)
	b.board.Set(attackSquare)
}
