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

// Package zobrist holds the pseudo-random numbers used to incrementally
// hash a position's pieces, castling rights, en-passant file, and side
// to move into a single 64-bit key.
//
// Check counts are deliberately left out of the key: two positions that
// are otherwise identical but differ only in how many checks each side
// has already delivered do transpose to the same key. This mirrors the
// reference engine this package is modeled on, which keeps per-check
// zobrist slots reserved but never folds them into the key.
package zobrist

import (
	"github.com/mcthouacbb/Calamity/pkg/castling"
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/square"
)

type Key uint64

var (
	PieceSquare [piece.N][square.N]Key
	EnPassant   [square.FileN]Key
	Castling    [castling.N]Key
	SideToMove  Key
)

// seed is the fixed starting state of the generator; any deterministic
// value works, but fixing one makes zobrist keys reproducible across
// runs and binaries.
const seed = 0x3519A84F

func init() {
	var rng PRNG
	rng.Seed(seed)

	for p := 0; p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := castling.None; r <= castling.All; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}
