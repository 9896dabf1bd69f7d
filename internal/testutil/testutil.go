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

// Package testutil provides independent-engine fixtures for the test
// suite: github.com/notnil/chess supplies both a second move generator
// to cross-validate perft against, and a PGN decoder to build fixtures
// from, so tests aren't only ever checking this engine against itself.
package testutil

import (
	"math/rand"
	"strings"

	"github.com/notnil/chess"
)

// RandomStandardPosition plays plies pseudo-random legal moves from
// the standard chess starting position using notnil/chess's own move
// generator, and returns the resulting position as a Three-Check FEN
// (with a "3+3" check-count suffix, since this is a fresh standard-
// chess game as far as check counting goes) together with
// notnil/chess's own count of legal replies there. Three-Check
// movegen is identical to standard movegen at every reachable
// position — delivering a check only ever increments a counter, it
// never changes which moves are legal — so the comparison is valid
// regardless of whether the position is a check.
func RandomStandardPosition(seed int64, plies int) (fen string, legalMoves int) {
	rng := rand.New(rand.NewSource(seed))
	game := chess.NewGame()

	for i := 0; i < plies; i++ {
		moves := game.ValidMoves()
		if len(moves) == 0 {
			break
		}
		if err := game.Move(moves[rng.Intn(len(moves))]); err != nil {
			break
		}
	}

	return game.Position().String() + " 3+3", len(game.ValidMoves())
}

// LoadPGNFixture decodes a PGN game record using notnil/chess and
// returns the FEN of its final position, letting move-text round-trip
// tests build a fixture from a literal PGN string instead of a FEN.
func LoadPGNFixture(pgn string) (string, error) {
	reader := strings.NewReader(pgn)
	decoder, err := chess.PGN(reader)
	if err != nil {
		return "", err
	}

	game := chess.NewGame(decoder)
	return game.Position().String() + " 3+3", nil
}
