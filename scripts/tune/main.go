package main

import (
	"fmt"
	"os"

	"github.com/mcthouacbb/Calamity/pkg/eval/tuner"
)

func main() {
	dataPath := os.Args[1]

	// load dataset
	fmt.Printf("loading dataset: %s\n", dataPath)
	dataset, err := tuner.NewDataset(dataPath)
	if err != nil {
		fmt.Printf("error loading dataset: %v\n", err)
		return
	}

	// report number of dataset entries
	fmt.Printf("dataset loaded: %d entries\n", len(dataset))

	termTuner := tuner.Tuner{
		Config: tuner.Config{
			KPrecision: 10,

			ReportRate: 50,

			LearningRate:     1,
			LearningDropRate: 1,
			LearningStepRate: 250,

			MaxEpochs: 100_000,
			BatchSize: 2 * 16384,
		},

		Dataset: dataset,
	}

	termTuner.Tune()

	// fold the tuned delta into the starting parameters and apply it
	// to pkg/eval's package variables; this changes only this process's
	// copy, nothing is written back to the source tables.
	final := tuner.VectorizeParams()
	for i := range final {
		final[i] += termTuner.Delta[i]
	}
	tuner.ApplyParams(final)

	fmt.Println("tuner: applied tuned parameters to pkg/eval")
	fmt.Printf("tuner: final delta %#v\n", termTuner.Delta)
}
