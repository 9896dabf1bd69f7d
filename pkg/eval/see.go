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

package eval

import (
	"github.com/mcthouacbb/Calamity/pkg/attacks"
	"github.com/mcthouacbb/Calamity/pkg/board"
	"github.com/mcthouacbb/Calamity/pkg/board/bitboard"
	"github.com/mcthouacbb/Calamity/pkg/move"
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/square"
)

// seeValue holds the piece weights SEE exchanges, which are coarser
// than Material since SEE only cares about their relative ordering.
var seeValue = [piece.NType]Eval{
	piece.Pawn:   100,
	piece.Knight: 450,
	piece.Bishop: 450,
	piece.Rook:   650,
	piece.Queen:  1350,
	piece.King:   0,
}

// SEE runs a static exchange evaluation of the capture sequence
// starting with m on the square it targets, and reports whether that
// sequence nets at least threshold for the side to move.
func SEE(s *board.BoardState, m move.Move, threshold Eval) bool {
	source, target := m.From(), m.To()

	attacker := s.Mailbox[source].Type()
	victim := piece.Pawn
	if !m.IsEnPassant() {
		victim = s.Mailbox[target].Type()
	}

	balance := seeValue[victim]
	if balance < threshold {
		return false
	}

	balance -= seeValue[attacker]
	if balance >= threshold {
		return true
	}

	occupied := s.Occupied()
	occupied.Unset(source)
	sideToMove := s.SideToMove.Other()

	diagonal := s.Pieces[piece.Bishop] | s.Pieces[piece.Queen]
	straight := s.Pieces[piece.Rook] | s.Pieces[piece.Queen]

	attackers := seeAttackersTo(s, target, occupied) & occupied

	for {
		friends := attackers & s.Colors[sideToMove]
		if friends == bitboard.Empty {
			break
		}

		for attacker = piece.Pawn; attacker < piece.King; attacker++ {
			if friends&s.Pieces[attacker] != bitboard.Empty {
				break
			}
		}

		if attacker == piece.King && (attackers&^friends) != bitboard.Empty {
			break
		}

		source = (friends & s.Pieces[attacker]).FirstOne()

		occupied.Unset(source)
		sideToMove = sideToMove.Other()

		balance = -balance - seeValue[attacker]
		if balance >= threshold {
			break
		}

		switch attacker {
		case piece.Pawn, piece.Bishop:
			attackers |= attacks.Bishop(target, occupied) & diagonal
		case piece.Rook:
			attackers |= attacks.Rook(target, occupied) & straight
		case piece.Queen:
			attackers |= attacks.Bishop(target, occupied)&diagonal | attacks.Rook(target, occupied)&straight
		}

		attackers &= occupied
	}

	return sideToMove != s.SideToMove
}

func seeAttackersTo(s *board.BoardState, sq square.Square, occ bitboard.Board) bitboard.Board {
	diagonal := s.Pieces[piece.Bishop] | s.Pieces[piece.Queen]
	straight := s.Pieces[piece.Rook] | s.Pieces[piece.Queen]

	return attacks.KingAttacks(sq)&s.Pieces[piece.King] |
		attacks.KnightAttacks(sq)&s.Pieces[piece.Knight] |
		attacks.PawnAttacks(piece.White, sq)&s.Pawns(piece.Black) |
		attacks.PawnAttacks(piece.Black, sq)&s.Pawns(piece.White) |
		attacks.Bishop(sq, occ)&diagonal |
		attacks.Rook(sq, occ)&straight
}
