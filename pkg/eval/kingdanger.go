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
	"github.com/mcthouacbb/Calamity/pkg/board/bitboard"
	"github.com/mcthouacbb/Calamity/pkg/square"
)

// checking-square scores: a checking square is safe when the enemy
// king's own side cannot immediately recapture on it.
const (
	knightCheckSafe Eval = 50
	bishopCheckSafe Eval = 50
	rookCheckSafe   Eval = 70
	queenCheckSafe  Eval = 90
	checkUnsafe     Eval = 40
)

// kingDanger scores the pressure attackData is putting on the enemy
// king at enemyKingSq. For each attacker type, the squares from which
// that type would check the king (attacks(t, enemyKingSq)) are
// intersected with the squares that type actually attacks in the
// current position — the "checking squares" — each one scored by
// whether defended (attacked by enemyAttacked, the defender's own
// attack set) leaves it unsafe to occupy.
func kingDanger(data attackData, enemyKingSq square.Square, occ, enemyAttacked bitboard.Board) Eval {
	var danger Eval

	score := func(checks bitboard.Board, safe Eval) {
		for checks != bitboard.Empty {
			sq := checks.Pop()
			if enemyAttacked.IsSet(sq) {
				danger += checkUnsafe
			} else {
				danger += safe
			}
		}
	}

	score(attacks.KnightAttacks(enemyKingSq)&data.knight, knightCheckSafe)
	score(attacks.Bishop(enemyKingSq, occ)&data.bishop, bishopCheckSafe)
	score(attacks.Rook(enemyKingSq, occ)&data.rook, rookCheckSafe)
	score(attacks.Bishop(enemyKingSq, occ)&data.queen|attacks.Rook(enemyKingSq, occ)&data.queen, queenCheckSafe)

	return danger
}
