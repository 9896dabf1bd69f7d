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
	"math"

	"github.com/mcthouacbb/Calamity/pkg/eval"
	"github.com/mcthouacbb/Calamity/pkg/piece"
)

// NParams is the size of a Vector: one slot per piece type for
// Material, and one slot per piece-type/rank-or-file pair for each of
// PSTRank and PSTFile.
const NParams = int(piece.NType) + int(piece.NType)*8*2

// Vector is a flat, addressable view over every term Material, PSTRank,
// and PSTFile contribute, indexed by the same (Term, Type, Index) a
// Coefficient names.
type Vector [NParams]float64

func index(term Term, pt piece.Type, i int8) int {
	switch term {
	case TermMaterial:
		return int(pt)
	case TermPSTRank:
		return int(piece.NType) + int(pt)*8 + int(i)
	default: // TermPSTFile
		return int(piece.NType) + int(piece.NType)*8 + int(pt)*8 + int(i)
	}
}

// dot returns the linear combination of coeffs against the vector:
// the change in static evaluation that delta would cause, from
// White's perspective.
func (delta *Vector) dot(coeffs []Coefficient) float64 {
	var sum float64
	for _, c := range coeffs {
		sum += delta[index(c.Term, c.Type, c.Index)] * float64(c.Count)
	}
	return sum
}

// VectorizeParams reads pkg/eval's current Material/PSTRank/PSTFile
// arrays into a Vector, giving the tuner its starting point.
func VectorizeParams() Vector {
	var v Vector
	for pt := piece.Pawn; pt <= piece.King; pt++ {
		v[index(TermMaterial, pt, 0)] = float64(eval.Material[pt])
		for r := int8(0); r < 8; r++ {
			v[index(TermPSTRank, pt, r)] = float64(eval.PSTRank[pt][r])
		}
		for f := int8(0); f < 8; f++ {
			v[index(TermPSTFile, pt, f)] = float64(eval.PSTFile[pt][f])
		}
	}
	return v
}

// ApplyParams writes a Vector's values back into pkg/eval's
// Material/PSTRank/PSTFile arrays, rounding each to the nearest
// centipawn.
func ApplyParams(v Vector) {
	for pt := piece.Pawn; pt <= piece.King; pt++ {
		eval.Material[pt] = eval.Eval(math.Round(v[index(TermMaterial, pt, 0)]))
		for r := int8(0); r < 8; r++ {
			eval.PSTRank[pt][r] = eval.Eval(math.Round(v[index(TermPSTRank, pt, r)]))
		}
		for f := int8(0); f < 8; f++ {
			eval.PSTFile[pt][f] = eval.Eval(math.Round(v[index(TermPSTFile, pt, f)]))
		}
	}
}
