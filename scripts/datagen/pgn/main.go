// Command pgn turns a directory of human PGN games into the same
// "fen | score | result" dataset format scripts/datagen produces from
// self-play, so the tuner can be fit against real games as well.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/notnil/chess"

	"github.com/mcthouacbb/Calamity/pkg/board"
	"github.com/mcthouacbb/Calamity/pkg/eval"
	"github.com/mcthouacbb/Calamity/pkg/move"
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/search"
)

func main() {
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(dir string) error {
	fenCount := 0
	start := time.Now()

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".pgn") {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		scanner := chess.NewScanner(f)
		for scanner.Scan() {
			game := scanner.Next()

			var result float32
			switch game.GetTagPair("Result").Value {
			case "1-0":
				result = 1.0
			case "0-1":
				result = 0.0
			case "1/2-1/2":
				result = 0.5
			default:
				continue
			}

			n, err := replay(game, result)
			if err != nil {
				fmt.Fprintf(os.Stderr, "pgn: skipping game in %s: %v\n", path, err)
				continue
			}
			fenCount += n

			elapsed := int(time.Since(start).Seconds()) + 1
			fmt.Fprintf(os.Stderr, "pgn: %d fens generated (%d fens/s)\n", fenCount, fenCount/elapsed)
		}

		return nil
	})
}

// replay plays a PGN game out on a fresh board, runs its own search at
// each resulting position to skip those whose best move is noisy, and
// prints each kept position with its static evaluation as a dataset
// line, returning how many it printed.
func replay(game *chess.Game, result float32) (int, error) {
	b := board.NewStartingBoard()
	worker := search.NewContext(b)
	limits := search.Limits{Depth: 7, Nodes: 100_000}

	notation := chess.UCINotation{}
	moves := game.Moves()
	positions := game.Positions()

	count := 0
	for i, m := range moves[:max(0, len(moves)-1)] {
		uci := notation.Encode(positions[i], m)

		mv, err := b.Current().ParseMove(uci)
		if err != nil {
			return count, fmt.Errorf("move %d (%s): %w", i+1, uci, err)
		}
		b.MakeMove(mv)

		s := b.Current()
		pv, _ := worker.Search(limits)
		bestMove := pv.Move(0)

		if bestMove == move.Null || s.IsNoisy(bestMove) && !s.InCheck() {
			continue
		}

		score := eval.Evaluate(s)
		if s.SideToMove == piece.Black {
			score = -score
		}

		fmt.Printf("%s | %d | %.1f\n", s.FEN(), score, result)
		count++
	}

	return count, nil
}
