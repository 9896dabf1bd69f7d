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

package testutil_test

import (
	"testing"

	"github.com/mcthouacbb/Calamity/internal/testutil"
	"github.com/mcthouacbb/Calamity/pkg/board"
)

const scholarsMate = `[Event "Test"]
[Site "Test"]
[Date "2023.01.01"]
[Round "1"]
[White "A"]
[Black "B"]
[Result "1-0"]

1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6 4. Qxf7# 1-0`

func TestLoadPGNFixture(t *testing.T) {
	fen, err := testutil.LoadPGNFixture(scholarsMate)
	if err != nil {
		t.Fatalf("LoadPGNFixture: %v", err)
	}

	if _, err := board.NewBoard(fen); err != nil {
		t.Fatalf("NewBoard(%q): %v", fen, err)
	}
}

func TestRandomStandardPosition(t *testing.T) {
	fen, legalMoves := testutil.RandomStandardPosition(1, 10)

	b, err := board.NewBoard(fen)
	if err != nil {
		t.Fatalf("NewBoard(%q): %v", fen, err)
	}

	if got := b.Current().GenerateMoves().Count; got != legalMoves {
		t.Errorf("GenerateMoves().Count = %d, want %d", got, legalMoves)
	}
}
