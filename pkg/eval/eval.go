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

// Package eval implements positional evaluation and static exchange
// evaluation (SEE) for a Three-Check position. Evaluate returns a
// centipawn score from the side-to-move's perspective; SEE answers
// whether a capture sequence on a square beats a threshold without a
// full search.
package eval

import (
	"fmt"
	"math"
)

// Eval is a relative centipawn evaluation: positive favors the side to
// move, negative favors the opponent.
type Eval int

const (
	Inf  Eval = math.MaxInt32 / 2
	Mate Eval = Inf - 1
	Draw Eval = 0

	// WinInMaxPly/LoseInMaxPly bound the decisive-score range used to
	// distinguish a mate-in-n evaluation from a regular one; this is
	// the SCORE_WIN band search and the transposition table adjust
	// around the current ply.
	WinInMaxPly  Eval = Mate - 2*10000
	LoseInMaxPly Eval = -WinInMaxPly
)

// MatedIn returns the evaluation for being mated in ply plies, biased
// so that a longer mating line scores worse than a shorter one.
func MatedIn(ply int) Eval {
	return -Mate + Eval(ply)
}

// WonByChecksIn returns the evaluation for winning by delivering a
// third check in ply plies — the Three-Check equivalent of MatedIn.
func WonByChecksIn(ply int) Eval {
	return Mate - Eval(ply)
}

func (e Eval) String() string {
	switch {
	case e > WinInMaxPly:
		plies := Mate - e
		return fmt.Sprintf("mate %d", (plies+1)/2)
	case e < LoseInMaxPly:
		plies := -Mate - e
		return fmt.Sprintf("mate %d", -((plies + 1) / 2))
	default:
		return fmt.Sprintf("cp %d", int(e))
	}
}
