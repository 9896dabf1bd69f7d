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

	"github.com/mcthouacbb/Calamity/internal/testutil"
	"github.com/mcthouacbb/Calamity/pkg/board"
)

// Three-Check leaves ordinary move generation untouched until a side
// actually reaches ChecksToLose: perft counts at these shallow depths
// are identical to orthodox chess, since nothing here plays out a game
// to completion.
func TestPerftStartingPosition(t *testing.T) {
	b := board.NewStartingBoard()

	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			if got := b.Perft(tc.depth); got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// Kiwipete exercises castling, pins, en passant, and promotions all at once.
func TestPerftKiwipete(t *testing.T) {
	b, err := board.NewBoard("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1 3+3")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			if got := b.Perft(tc.depth); got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// Exercises en-passant edge cases, including the discovered-check pin.
func TestPerftPosition3(t *testing.T) {
	b, err := board.NewBoard("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1 3+3")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			if got := b.Perft(tc.depth); got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftAgainstIndependentEngine cross-validates this move
// generator's legal move count against notnil/chess's independent
// generator at a batch of randomly reached standard-chess positions:
// movegen here is only ever specified to agree with orthodox chess
// rules, so any discrepancy is a bug in this engine's movegen rather
// than a Three-Check rules difference.
func TestPerftAgainstIndependentEngine(t *testing.T) {
	for seed := int64(0); seed < 32; seed++ {
		fen, want := testutil.RandomStandardPosition(seed, 20)

		b, err := board.NewBoard(fen)
		if err != nil {
			t.Fatalf("seed %d: NewBoard(%q): %v", seed, fen, err)
		}

		if got := b.Current().GenerateMoves().Count; got != want {
			t.Errorf("seed %d: fen %q: GenerateMoves().Count = %d, want %d", seed, fen, got, want)
		}
	}
}

// TestPerftEnPassantPin covers the classic horizontal-pin-through-two-
// pawns case: the en-passant capture itself must be excluded even
// though neither pawn individually looks pinned.
func TestPerftEnPassantPin(t *testing.T) {
	b, err := board.NewBoard("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1 3+3")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	list := b.Current().GenerateMoves()
	for i := 0; i < list.Count; i++ {
		if list.Moves[i].IsEnPassant() {
			t.Errorf("en passant move %v should be illegal (horizontal pin)", list.Moves[i])
		}
	}

	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 6},
		{2, 94},
	}
	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			if got := b.Perft(tc.depth); got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftEnPassantDiagonalPin covers the diagonal counterpart of the
// rank-pin case: the d5 pawn is the only piece between the g8 bishop
// and the white king on b3, so white's e5xd6 en passant capture, which
// removes it, would expose the king and must be excluded even though
// neither pawn is pinned.
func TestPerftEnPassantDiagonalPin(t *testing.T) {
	b, err := board.NewBoard("4k1b1/8/8/3pP3/8/1K6/8/8 w - d6 0 1 0+0")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	list := b.Current().GenerateMoves()
	for i := 0; i < list.Count; i++ {
		if list.Moves[i].IsEnPassant() {
			t.Errorf("en passant move %v should be illegal (diagonal discovered check)", list.Moves[i])
		}
	}
}
