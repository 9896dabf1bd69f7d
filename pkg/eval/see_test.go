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

package eval_test

import (
	"testing"

	"github.com/mcthouacbb/Calamity/pkg/board"
	"github.com/mcthouacbb/Calamity/pkg/eval"
	"github.com/mcthouacbb/Calamity/pkg/move"
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/square"
)

func TestSEERookTakesRookBehindPawns(t *testing.T) {
	b, err := board.NewBoard("1k1r4/1pp4p/p7/4p3/8/P5P1/1PP4P/2K1R3 w - - 0 1 3+3")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	m := move.New(square.E1, square.E5)
	if !eval.SEE(b.Current(), m, 0) {
		t.Errorf("SEE(Rxe5, 0) = false, want true")
	}
}

func TestSEELosingCaptureFailsPositiveThreshold(t *testing.T) {
	// A rook takes a defended pawn: the exchange nets a loss, so SEE
	// should fail any positive threshold.
	b, err := board.NewBoard("8/4k3/4p3/8/8/8/4R3/4K3 w - - 0 1 3+3")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	m := move.New(square.E2, square.E6)
	if eval.SEE(b.Current(), m, 100) {
		t.Errorf("SEE(Rxe6, 100) = true, want false (pawn alone can't beat a +100 threshold after losing the rook back)")
	}
	if !eval.SEE(b.Current(), m, -10000) {
		t.Errorf("SEE(Rxe6, -10000) = false, want true")
	}
}

func TestMaterialOrdering(t *testing.T) {
	if eval.Material[piece.Queen] <= eval.Material[piece.Rook] {
		t.Errorf("queen (%d) should be worth more than a rook (%d)", eval.Material[piece.Queen], eval.Material[piece.Rook])
	}
	if eval.Material[piece.Rook] <= eval.Material[piece.Bishop] {
		t.Errorf("rook (%d) should be worth more than a bishop (%d)", eval.Material[piece.Rook], eval.Material[piece.Bishop])
	}
	if eval.Material[piece.Bishop] <= eval.Material[piece.Pawn] {
		t.Errorf("bishop (%d) should be worth more than a pawn (%d)", eval.Material[piece.Bishop], eval.Material[piece.Pawn])
	}
}
