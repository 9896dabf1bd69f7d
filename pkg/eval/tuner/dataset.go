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

package tuner

import (
	"bufio"
	"errors"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mcthouacbb/Calamity/pkg/board"
	"github.com/mcthouacbb/Calamity/pkg/eval"
	"github.com/mcthouacbb/Calamity/pkg/piece"
)

// NewDataset loads every "fen | score | result" line emitted by
// scripts/datagen into a Dataset ready for tuning. score is discarded;
// it is the search eval already present in the training data, while
// the tuner re-derives the static eval itself from each position's
// coefficients so it can be recomputed cheaply every batch.
func NewDataset(filename string) (Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	params := VectorizeParams()

	dataset := make(Dataset, 0, 1<<20)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) != 3 {
			return nil, errors.New("tuner: invalid dataset entry: " + line)
		}

		fen := strings.TrimSpace(fields[0])
		result, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, err
		}

		b, err := board.NewBoard(fen)
		if err != nil {
			return nil, err
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
			result: result,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return dataset, nil
}

// Dataset is the training data the tuner fits Material/PSTRank/PSTFile
// against.
type Dataset []Entry

// Entry is a single tuning position: its coefficients against the
// tunable terms, the frozen contribution of every other evaluation
// term (mobility, king safety, check penalties), and the game result
// from White's perspective.
type Entry struct {
	coeffs []Coefficient
	rest   float64
	result float64
}

// static returns the position's evaluation from White's perspective
// under delta, a candidate adjustment to the tuned parameters.
func (e *Entry) static(delta *Vector) float64 {
	return e.rest + delta.dot(e.coeffs)
}

// ComputeK finds the sigmoid scaling factor giving the least mean
// squared error between static evaluations and game results.
func (dataset Dataset) ComputeK(precision int) float64 {
	var zero Vector

	start, end, step := 0.0, 10.0, 1.0
	var current, err float64

	best := dataset.ComputeE(start, &zero)

	for i := 0; i <= precision; i++ {
		current = start - step
		for current < end {
			current += step
			err = dataset.ComputeE(current, &zero)
			if err <= best {
				best, start = err, current
			}
		}

		end = start + step
		start = start - step
		step = step / 10.0
	}

	return start
}

// ComputeE computes the mean squared error of wdl prediction by the
// static evaluation (under delta) versus the actual game result.
func (dataset Dataset) ComputeE(k float64, delta *Vector) float64 {
	var total float64
	for i := range dataset {
		total += math.Pow(dataset[i].result-Sigmoid(k, dataset[i].static(delta)), 2)
	}
	return total / float64(len(dataset))
}

// Sigmoid implements a sigmoid function scaled by the factor k.
func Sigmoid(k, score float64) float64 {
	return 1.0 / (1.0 + math.Exp(-k*score/400.0))
}
