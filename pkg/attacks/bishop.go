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
	"github.com/mcthouacbb/Calamity/pkg/square"
)

// Bishop returns a bishop's attack bitboard from s given the board's
// full occupancy, via hyperbola quintessence along both diagonals.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	diagonalAttack := bitboard.Hyperbola(s, occ, bitboard.Diagonals[s.Diagonal()])
	antiDiagonalAttack := bitboard.Hyperbola(s, occ, bitboard.AntiDiagonals[s.AntiDiagonal()])

	return diagonalAttack | antiDiagonalAttack
}
