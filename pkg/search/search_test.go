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

package search_test

import (
	"testing"

	"github.com/mcthouacbb/Calamity/pkg/board"
	"github.com/mcthouacbb/Calamity/pkg/move"
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/search"
	"github.com/mcthouacbb/Calamity/pkg/square"
)

// A rook a single move from delivering back-rank mate should be
// found immediately, even at a shallow depth.
func TestSearchFindsBackRankMateInOne(t *testing.T) {
	b, err := board.NewBoard("6k1/5ppp/8/8/8/8/8/R3K2R w KQ - 0 1 3+3")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	ctx := search.NewContext(b)
	pv, score := ctx.Search(search.Limits{Depth: 6})

	if pv.Len() == 0 {
		t.Fatalf("search returned an empty principal variation")
	}

	best := pv.Move(0)
	if best != move.New(square.A1, square.A8) {
		t.Errorf("best move = %s, want Ra1-a8#", best)
	}

	if score <= 0 {
		t.Errorf("score = %v, want a clearly winning score for white", score)
	}
}

// Delivering a third check wins outright in this variant, so a queen
// move giving check while the opponent has already conceded two
// checks should be preferred over any merely-good quiet move.
func TestSearchPrefersWinningByThirdCheck(t *testing.T) {
	b, err := board.NewBoard("6k1/8/8/7Q/8/8/8/4K3 w - - 0 1 3+1")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	ctx := search.NewContext(b)
	pv, score := ctx.Search(search.Limits{Depth: 4})

	if pv.Len() == 0 {
		t.Fatalf("search returned an empty principal variation")
	}

	// several queen checks win here (Qf7+, Qd5+, Qg6+, ...), so the
	// test checks that the chosen move delivers the third check
	best := pv.Move(0)
	b.MakeMove(best)
	if !b.Current().HasWonByChecks(piece.White) {
		t.Errorf("best move = %s, want a queen check winning by third check", best)
	}

	if score <= 0 {
		t.Errorf("score = %v, want a winning score for the side about to deliver its third check", score)
	}
}

// A quiescence search that didn't filter losing captures through SEE
// would happily trade a queen for a pawn defended by a rook; the real
// search should never choose that over a quiet improving move when
// one is available.
func TestSearchDoesNotHangQueenToADefendedPawn(t *testing.T) {
	b, err := board.NewBoard("4k3/8/8/3p4/2Q5/8/3r4/4K3 w - - 0 1 3+3")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	ctx := search.NewContext(b)
	pv, _ := ctx.Search(search.Limits{Depth: 4})

	if pv.Len() == 0 {
		t.Fatalf("search returned an empty principal variation")
	}

	if pv.Move(0) == move.New(square.C4, square.D5) {
		t.Errorf("search played Qxd5, hanging the queen to the defending rook on d2")
	}
}

// Search must respect a node limit: given a tiny budget, it should
// still return some usable move rather than an empty variation.
func TestSearchRespectsNodeLimit(t *testing.T) {
	b, err := board.NewBoard("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 3+3")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	ctx := search.NewContext(b)
	pv, _ := ctx.Search(search.Limits{Depth: search.MaxDepth, Nodes: 2000})

	if pv.Len() == 0 {
		t.Fatalf("search returned an empty principal variation under a node limit")
	}
}
