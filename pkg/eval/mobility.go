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
)

// attackData accumulates, for one color and per piece type, the union
// of the attack sets of all its pieces of that type. mobility and
// kingDanger both need these sets, so they
// are computed once per side and shared rather than recomputed.
type attackData struct {
	knight, bishop, rook, queen bitboard.Board
}

func computeAttacks(s *board.BoardState, c piece.Color, occ bitboard.Board) attackData {
	var data attackData
	for bb := s.Knights(c); bb != bitboard.Empty; {
		data.knight |= attacks.KnightAttacks(bb.Pop())
	}
	for bb := s.Bishops(c); bb != bitboard.Empty; {
		data.bishop |= attacks.Bishop(bb.Pop(), occ)
	}
	for bb := s.Rooks(c); bb != bitboard.Empty; {
		data.rook |= attacks.Rook(bb.Pop(), occ)
	}
	for bb := s.Queens(c); bb != bitboard.Empty; {
		sq := bb.Pop()
		data.queen |= attacks.Bishop(sq, occ) | attacks.Rook(sq, occ)
	}
	return data
}

// mobility scores how many squares each piece type can reach within
// mobilityArea (every square not attacked by an enemy pawn), via four
// near-linear formulas fitted per piece type. Each count is taken over
// the union of all that type's attack sets in attackData, so a square
// two pieces of the same type reach is counted once, and each formula
// is applied once per type rather than once per piece, including when
// the side has no piece of that type. Queen mobility is clamped at 20
// reachable squares since its formula is not meaningful past that
// count.
func mobility(data attackData, mobilityArea bitboard.Board) Eval {
	var score Eval

	knightN := (data.knight & mobilityArea).Count()
	score += Eval(735*knightN-2896) / 100

	bishopN := (data.bishop & mobilityArea).Count()
	score += Eval(487*bishopN-2993) / 100

	rookN := (data.rook & mobilityArea).Count()
	score += Eval(486*rookN-3485) / 100

	queenN := (data.queen & mobilityArea).Count()
	if queenN > 20 {
		queenN = 20
	}
	score += Eval(536*queenN-5390) / 100

	return score
}
