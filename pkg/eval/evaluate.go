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
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/square"
)

// CheckPenalty[n] is added to a side's own score when it has already
// conceded n checks, with n capped at two: the third check ends the
// game outright and is handled by the search as a terminal score
// rather than an evaluation term.
var CheckPenalty = [3]Eval{0, -200, -750}

// Evaluate statically scores s from the side to move's perspective. It
// sums material, piece-square, mobility, and king-safety terms for
// both colors and negates the White-minus-Black difference when Black
// is to move.
func Evaluate(s *board.BoardState) Eval {
	white := evaluateSide(s, piece.White)
	black := evaluateSide(s, piece.Black)

	score := white - black
	if s.SideToMove == piece.Black {
		score = -score
	}
	return score
}

// evaluateSide computes every term that is naturally attributed to c:
// its own material and placement, its own mobility, the pressure it
// is exerting on the opponent's king, and the penalty for checks it
// has already conceded.
func evaluateSide(s *board.BoardState, c piece.Color) Eval {
	var score Eval

	for bb := s.Colors[c]; bb != bitboard.Empty; {
		sq := bb.Pop()
		score += psqtMagnitude(s.Mailbox[sq].Type(), sq, c)
	}

	occ := s.Occupied()
	data := computeAttacks(s, c, occ)

	enemyPawnAttacks := pawnAttackSpan(s, c.Other())
	mobilityArea := ^enemyPawnAttacks

	score += mobility(data, mobilityArea)

	defenderData := computeAttacks(s, c.Other(), occ)
	defenderAttacked := attackedSquares(s, c.Other(), occ, defenderData)
	score += kingDanger(data, s.Kings[c.Other()], occ, defenderAttacked)

	// the checks the opponent has delivered are the ones c has conceded
	checks := s.CheckCount[c.Other()]
	if checks > 2 {
		checks = 2
	}
	score += CheckPenalty[checks]

	return score
}

// psqtMagnitude is psqt without the color-dependent sign flip: the
// caller (evaluateSide) already sums white/black separately and takes
// the top-level difference, so both sides' terms should be positive
// magnitudes here.
func psqtMagnitude(pt piece.Type, sq square.Square, c piece.Color) Eval {
	v := psqt(pt, c, sq)
	if c == piece.Black {
		return -v
	}
	return v
}

// pawnAttackSpan is every square c's pawns attack, used to shrink the
// enemy's mobility area.
func pawnAttackSpan(s *board.BoardState, c piece.Color) bitboard.Board {
	var span bitboard.Board
	for bb := s.Pawns(c); bb != bitboard.Empty; {
		span |= attacks.PawnAttacks(c, bb.Pop())
	}
	return span
}

// attackedSquares is every square c attacks with any of its pieces:
// its pawn and king attacks plus the already-computed attackData,
// used by kingDanger to judge if a checking square
// is safe for the opponent to occupy.
func attackedSquares(s *board.BoardState, c piece.Color, occ bitboard.Board, data attackData) bitboard.Board {
	attacked := pawnAttackSpan(s, c)
	attacked |= attacks.KingAttacks(s.Kings[c])
	attacked |= data.knight | data.bishop | data.rook | data.queen
	return attacked
}
