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

//go:build tuning

// This file exercises a real gradient step against a tiny fixture
// dataset. It is excluded from the default test path by the "tuning"
// build tag since Tune itself is meant to run for hours against
// millions of positions, not as part of `go test ./...`; run it
// explicitly with `go test -tags tuning ./pkg/eval/tuner`.
package tuner

import (
	"math"
	"testing"

	"github.com/mcthouacbb/Calamity/pkg/board"
	"github.com/mcthouacbb/Calamity/pkg/eval"
	"github.com/mcthouacbb/Calamity/pkg/piece"
)

// fixture is a small, mixed set of positions and their eventual game
// results (1 = White won, 0 = Black won, 0.5 = draw), standing in for
// a dataset scripts/datagen or scripts/datagen/pgn would normally
// produce.
var fixture = []struct {
	fen    string
	result float64
}{
	{board.StartFEN, 0.5},
	{"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2 3+3", 0.5},
	{"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 3 3+3", 0.5},
	{"rnbqkb1r/ppp2ppp/3p1n2/4p3/4P3/3P1N2/PPP2PPP/RNBQKB1R w KQkq - 0 4 3+3", 1},
	{"r1bqkbnr/ppp2ppp/2np4/4p3/2B1P3/3P1N2/PPP2PPP/RNBQK2R b KQkq - 1 5 3+3", 1},
	{"rnbqkbnr/ppp1pppp/8/3p4/3P4/8/PPP1PPPP/RNBQKBNR w KQkq - 0 2 3+3", 0},
	{"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 4 3+3", 0},
}

func buildDataset(t *testing.T) Dataset {
	t.Helper()

	params := VectorizeParams()
	dataset := make(Dataset, 0, len(fixture))

	for _, f := range fixture {
		b, err := board.NewBoard(f.fen)
		if err != nil {
			t.Fatalf("NewBoard(%q): %v", f.fen, err)
		}

		s := b.Current()
		coeffs := computeCoefficients(s)

		whiteEval := float64(eval.Evaluate(s))
		if s.SideToMove == piece.Black {
			whiteEval = -whiteEval
		}

		dataset = append(dataset, Entry{
			coeffs: coeffs,
			rest:   whiteEval - params.dot(coeffs),
			result: f.result,
		})
	}

	return dataset
}

// TestGradientStepReducesError takes a single momentum/RMSProp step,
// exactly as Tune's inner loop does, and checks the batch's mean
// squared error against the fixture results does not increase.
func TestGradientStepReducesError(t *testing.T) {
	dataset := buildDataset(t)

	tuner := &Tuner{
		Config: Config{
			KPrecision: 6,
			BatchSize:  len(dataset),
		},
		Dataset: dataset,
	}

	tuner.K = tuner.Dataset.ComputeK(tuner.Config.KPrecision)
	before := tuner.Dataset.ComputeE(tuner.K, &tuner.Delta)

	var momentum, velocity Vector
	scale := (tuner.K * 2) / float64(tuner.Config.BatchSize)
	// A real run ramps a much larger rate over many epochs; a single
	// step here uses a small one so the normalized Adam-style update
	// can't overshoot past the error-reducing direction it points in.
	rate := 0.05

	tuner.batch = 0
	tuner.gradient = Vector{}
	tuner.computeGradient()

	for i := 0; i < NParams; i++ {
		g := tuner.gradient[i] * scale

		momentum[i] = momentum[i]*0.9 + g*0.1
		velocity[i] = velocity[i]*0.999 + g*g*0.001

		tuner.Delta[i] += momentum[i] * rate / math.Sqrt(1e-8+velocity[i])
	}

	after := tuner.Dataset.ComputeE(tuner.K, &tuner.Delta)

	if after > before+1e-9 {
		t.Errorf("gradient step increased error: before=%v after=%v", before, after)
	}
}
