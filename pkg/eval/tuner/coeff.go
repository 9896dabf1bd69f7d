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
	"github.com/mcthouacbb/Calamity/pkg/board"
	"github.com/mcthouacbb/Calamity/pkg/board/bitboard"
	"github.com/mcthouacbb/Calamity/pkg/piece"
)

// Term names one of the tunable parameter groups in pkg/eval: a flat
// per-piece-type value, or a per-rank/per-file entry in one of the
// separable piece-square tables.
type Term int8

const (
	TermMaterial Term = iota
	TermPSTRank
	TermPSTFile
)

// Coefficient is the net White-minus-Black occurrence count of a single
// tunable term in a position, which is enough to recompute the term's
// contribution to the static evaluation under any candidate parameter
// vector without re-walking the board.
type Coefficient struct {
	Term  Term
	Type  piece.Type
	Index int8 // rank or file; unused (0) for TermMaterial
	Count int8 // White count minus Black count
}

// computeCoefficients walks every piece on the board once and returns
// the non-zero coefficients of the terms it touches. Black occurrences
// are counted negatively and with the rank mirrored, matching how
// pkg/eval's psqt folds Black's perspective into White's.
func computeCoefficients(s *board.BoardState) []Coefficient {
	var material [piece.NType]int
	var pstRank [piece.NType][8]int
	var pstFile [piece.NType][8]int

	for pt := piece.Pawn; pt <= piece.King; pt++ {
		for bb := s.Pieces[pt] & s.Colors[piece.White]; bb != bitboard.Empty; {
			sq := bb.Pop()
			material[pt]++
			pstRank[pt][sq.Rank()]++
			pstFile[pt][sq.File()]++
		}

		for bb := s.Pieces[pt] & s.Colors[piece.Black]; bb != bitboard.Empty; {
			sq := bb.Pop()
			rank := sq.Rank() ^ 0b111
			material[pt]--
			pstRank[pt][rank]--
			pstFile[pt][sq.File()]--
		}
	}

	coeffs := make([]Coefficient, 0, 24)

	for pt := piece.Pawn; pt <= piece.King; pt++ {
		if n := material[pt]; n != 0 {
			coeffs = append(coeffs, Coefficient{Term: TermMaterial, Type: pt, Count: int8(n)})
		}

		for r := 0; r < 8; r++ {
			if n := pstRank[pt][r]; n != 0 {
				coeffs = append(coeffs, Coefficient{Term: TermPSTRank, Type: pt, Index: int8(r), Count: int8(n)})
			}
		}

		for f := 0; f < 8; f++ {
			if n := pstFile[pt][f]; n != 0 {
				coeffs = append(coeffs, Coefficient{Term: TermPSTFile, Type: pt, Index: int8(f), Count: int8(n)})
			}
		}
	}

	return coeffs
}
