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

package board_test

import (
	"testing"

	"github.com/mcthouacbb/Calamity/pkg/board"
	"github.com/mcthouacbb/Calamity/pkg/move"
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/square"
)

// Delivering a check increments the mover's CheckCount, and a third
// check wins the game outright regardless of material.
func TestCheckCountAccumulatesAndWins(t *testing.T) {
	// White queen on h5 one move from Qf7+ against a bare black king,
	// already on the brink of losing by checks.
	b, err := board.NewBoard("6k1/8/8/7Q/8/8/8/4K3 w - - 0 1 2+1")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	b.MakeMove(move.New(square.H5, square.F7))

	s := b.Current()
	if !s.InCheck() {
		t.Fatalf("black should be in check after Qf7+")
	}
	if s.CheckCount[piece.White] != 3 {
		t.Fatalf("white CheckCount = %d, want 3", s.CheckCount[piece.White])
	}
	if !s.HasWonByChecks(piece.White) {
		t.Fatalf("white should have won by accumulating 3 checks")
	}
}

// MakeMove/UnmakeMove round-trip every field of BoardState exactly,
// including the hash, across castling, en passant, and promotion.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		mv   move.Move
	}{
		{
			name: "kingside castle",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1 3+3",
			mv:   move.NewCastle(square.E1, square.H1),
		},
		{
			name: "queenside castle",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1 3+3",
			mv:   move.NewCastle(square.E8, square.A8),
		},
		{
			name: "en passant",
			fen:  "4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1 3+3",
			mv:   move.NewEnPassant(square.D4, square.E3),
		},
		{
			name: "promotion",
			fen:  "4k3/4P3/8/8/8/8/8/4K3 w - - 0 1 3+3",
			mv:   move.NewPromotion(square.E7, square.E8, piece.Queen),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := board.NewBoard(tc.fen)
			if err != nil {
				t.Fatalf("NewBoard: %v", err)
			}
			before := *b.Current()

			b.MakeMove(tc.mv)
			b.UnmakeMove()

			after := *b.Current()
			if before.FEN() != after.FEN() {
				t.Errorf("fen changed across make/unmake:\nbefore %s\nafter  %s", before.FEN(), after.FEN())
			}
			if before.Hash != after.Hash {
				t.Errorf("hash changed across make/unmake: before %016X after %016X", before.Hash, after.Hash)
			}
		})
	}
}

// A null move flips the side to move, clears en passant and advances
// the halfmove clock, and unmakes cleanly like any other move.
func TestMakeUnmakeNullMove(t *testing.T) {
	b, err := board.NewBoard("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1 3+3")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	before := *b.Current()

	b.MakeNullMove()
	s := b.Current()
	if s.SideToMove == before.SideToMove {
		t.Errorf("null move should flip the side to move")
	}
	if s.EPSquare != square.None {
		t.Errorf("null move should clear the en passant square")
	}

	b.UnmakeMove()
	after := *b.Current()
	if before.FEN() != after.FEN() || before.Hash != after.Hash {
		t.Errorf("null move did not unmake cleanly")
	}
}
