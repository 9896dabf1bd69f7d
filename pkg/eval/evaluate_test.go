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
)

func TestEvaluateStartingPositionIsSymmetric(t *testing.T) {
	b := board.NewStartingBoard()
	if got := eval.Evaluate(b.Current()); got != 0 {
		t.Errorf("Evaluate(startpos) = %d, want 0 (symmetric position)", got)
	}
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	b, err := board.NewBoard("4k3/8/8/8/8/8/8/RNBQKBNR w - - 0 1 3+3")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if got := eval.Evaluate(b.Current()); got <= 0 {
		t.Errorf("Evaluate(white up a whole army) = %d, want > 0", got)
	}
}

func TestEvaluatePenalizesConcededChecks(t *testing.T) {
	noChecks, err := board.NewBoard("4k3/8/8/8/8/8/8/4K3 w - - 0 1 3+3")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	twoChecks, err := board.NewBoard("4k3/8/8/8/8/8/8/4K3 w - - 0 1 1+3")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	if got := eval.Evaluate(noChecks.Current()); got != 0 {
		t.Errorf("Evaluate(bare kings, no checks conceded) = %d, want 0", got)
	}
	if got := eval.Evaluate(twoChecks.Current()); got >= 0 {
		t.Errorf("Evaluate(white has conceded 2 checks) = %d, want < 0", got)
	}
}
