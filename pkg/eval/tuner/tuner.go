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

// Package tuner fits pkg/eval's Material, PSTRank, and PSTFile tables
// to a dataset of (fen, result) pairs using gradient descent over the
// texel tuning loss: the squared error between a sigmoid of the static
// evaluation and the game's outcome.
//
// Every term the tuner touches is linear in the position's piece
// placement, so the gradient of the loss with respect to a term is
// just its Coefficient's occurrence count scaled by the sigmoid
// derivative; every other evaluation term (mobility, king safety,
// check penalties) is held fixed for the duration of a run.
package tuner

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"
)

// Config holds the hyperparameters of a tuning run.
type Config struct {
	KPrecision int

	ReportRate int

	LearningRate     float64
	LearningDropRate float64
	LearningStepRate int

	MaxEpochs int
	BatchSize int
}

// Tuner holds the state of a single tuning run: the dataset it is
// fitting, the accumulated adjustment to the starting parameters, and
// the sigmoid scale it was computed against.
type Tuner struct {
	Config Config

	Dataset Dataset
	Delta   Vector

	K float64

	gradient Vector
	batch    int
}

// Tune runs gradient descent to completion, printing the mean squared
// error after every epoch and re-rendering error-plot.html with the
// full loss curve so a run can be watched live.
func (tuner *Tuner) Tune() {
	var momentum, velocity Vector

	rate := tuner.Config.LearningRate
	batchSize := float64(tuner.Config.BatchSize)

	var errorName []string
	var errorData []opts.LineData

	fmt.Println("tuner: computing optimal value of K")
	tuner.K = tuner.Dataset.ComputeK(tuner.Config.KPrecision)
	scale := (tuner.K * 2) / batchSize
	fmt.Printf("tuner: K = %v\n", tuner.K)

	E := tuner.Dataset.ComputeE(tuner.K, &tuner.Delta)
	fmt.Printf("tuner: E = %v\n", E)

	errorName = append(errorName, strconv.Itoa(0))
	errorData = append(errorData, opts.LineData{Value: E})
	tuner.plotError(errorName, errorData)

	batches := len(tuner.Dataset) / tuner.Config.BatchSize

	for epoch := 0; epoch < tuner.Config.MaxEpochs; epoch++ {
		fmt.Printf("tuner: started new epoch (%d/%d)\n", epoch+1, tuner.Config.MaxEpochs)

		bar := progressbar.NewOptions(
			batches,
			progressbar.OptionSetElapsedTime(true),
			progressbar.OptionSetItsString("batch"),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
		)

		for tuner.batch = 0; tuner.batch < batches; tuner.batch++ {
			tuner.gradient = Vector{}
			tuner.computeGradient()

			for i := 0; i < NParams; i++ {
				g := tuner.gradient[i] * scale

				momentum[i] = momentum[i]*0.9 + g*0.1
				velocity[i] = velocity[i]*0.999 + g*g*0.001

				tuner.Delta[i] += momentum[i] * rate / math.Sqrt(1e-8+velocity[i])
			}

			_ = bar.Add(1)
		}
		_ = bar.Close()

		E := tuner.Dataset.ComputeE(tuner.K, &tuner.Delta)
		fmt.Printf("tuner: E = %v\n", E)

		errorName = append(errorName, strconv.Itoa(epoch+1))
		errorData = append(errorData, opts.LineData{Value: E})
		tuner.plotError(errorName, errorData)

		if epoch != 0 {
			if epoch%tuner.Config.LearningStepRate == 0 {
				rate /= tuner.Config.LearningDropRate
			}
			if epoch%tuner.Config.ReportRate == 0 {
				fmt.Printf("%#v\n", tuner.Delta)
			}
		}
	}
}

func (tuner *Tuner) plotError(names []string, data []opts.LineData) {
	errorPlot := charts.NewLine()
	errorPlot.SetXAxis(names).AddSeries("Error", data)

	plotFile, err := os.Create("error-plot.html")
	if err != nil {
		return
	}
	defer plotFile.Close()
	_ = errorPlot.Render(plotFile)
}

// computeGradient accumulates the gradient of the batch's mean squared
// error with respect to every tuned term into tuner.gradient.
func (tuner *Tuner) computeGradient() {
	batchEnd := min((tuner.batch+1)*tuner.Config.BatchSize, len(tuner.Dataset))
	for i := tuner.batch * tuner.Config.BatchSize; i < batchEnd; i++ {
		tuner.accumulate(&tuner.Dataset[i])
	}
}

func (tuner *Tuner) accumulate(entry *Entry) {
	E := entry.static(&tuner.Delta)
	S := Sigmoid(tuner.K, E)
	X := (entry.result - S) * S * (1 - S)

	for _, c := range entry.coeffs {
		tuner.gradient[index(c.Term, c.Type, c.Index)] += X * float64(c.Count)
	}
}
