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
	"github.com/mcthouacbb/Calamity/pkg/piece"
)

func TestFENRoundTrip(t *testing.T) {
	tests := []string{
		board.StartFEN,
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1 3+3",
		"r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4 2+3",
		"rnbq1rk1/ppp1bppp/4pn2/3p2B1/2PP4/2N2N2/PP2PPPP/R2QKB1R w KQ - 6 6 3+1",
		"rnbqkbnr/ppp2ppp/8/2Ppp3/8/8/PP1PPPPP/RNBQKBNR w KQkq d6 0 1 3+3",
		"rn3rk1/pbp1qpp1/1p5p/3p4/3P4/3BPN2/PP3PPP/R2Q1RK1 b - - 3 12 0+1",
	}

	for n, test := range tests {
		t.Run(test, func(t *testing.T) {
			b, err := board.NewBoard(test)
			if err != nil {
				t.Fatalf("test %d: NewBoard: %v", n, err)
			}
			got := b.Current().FEN()
			if got != test {
				t.Errorf("test %d: wrong fen\nwant %s\ngot  %s", n, test, got)
			}
		})
	}
}

func TestFENCheckCounts(t *testing.T) {
	b, err := board.NewBoard("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 2+1")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	s := b.Current()
	if s.CheckCount[piece.White] != 2 { // white has delivered ChecksToLose-1 checks
		t.Errorf("white CheckCount = %d, want 2", s.CheckCount[piece.White])
	}
	if s.CheckCount[piece.Black] != 1 {
		t.Errorf("black CheckCount = %d, want 1", s.CheckCount[piece.Black])
	}
}

func TestNewBoardRejectsMalformedFEN(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",    // missing check-count field
		"rnbqkbnr/pppppppp/8/8 w KQkq - 0 1 3+3",                     // malformed placement
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1 3+3", // bad side to move
	}
	for _, test := range tests {
		if _, err := board.NewBoard(test); err == nil {
			t.Errorf("NewBoard(%q): want error, got nil", test)
		}
	}
}
