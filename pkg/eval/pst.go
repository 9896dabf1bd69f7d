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

package eval

import (
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/square"
)

// PSTRank and PSTFile are separable piece-square tables: a piece's
// positional bonus is PSTRank[pt][rank] + PSTFile[pt][file], rather
// than one value per one of the 64 squares. This is deliberately
// coarser than a classic PeSTO table, and it sidesteps having to flip
// a packed square index for Black — the rank is mirrored on its own
// with a single XOR.
var PSTRank = [piece.NType][8]Eval{
	piece.Pawn:   {0, -4, -6, 2, 10, 24, 34, 0},
	piece.Knight: {-20, -10, -2, 6, 10, 8, 0, -16},
	piece.Bishop: {-8, 0, 4, 8, 8, 6, 0, -6},
	piece.Rook:   {-4, -8, -6, -2, 2, 6, 12, 6},
	piece.Queen:  {-8, -4, 0, 2, 4, 4, 0, -6},
	piece.King:   {18, 24, -4, -24, -34, -40, -42, -44},
}

var PSTFile = [piece.NType][8]Eval{
	piece.Pawn:   {-4, 0, -4, 4, 6, 4, 2, -6},
	piece.Knight: {-16, -4, 2, 6, 6, 2, -4, -16},
	piece.Bishop: {-8, 0, 2, 4, 4, 2, 0, -8},
	piece.Rook:   {-4, -2, 0, 4, 4, 0, -2, -4},
	piece.Queen:  {-6, -2, 0, 2, 2, 0, -2, -6},
	piece.King:   {26, 30, 4, -22, -22, 4, 30, 26},
}

// psqt returns the combined material plus positional value of placing
// pt for c on sq, from White's perspective.
func psqt(pt piece.Type, c piece.Color, sq square.Square) Eval {
	rank := sq.Rank()
	if c == piece.Black {
		rank ^= 0b111
	}
	val := Material[pt] + PSTRank[pt][rank] + PSTFile[pt][sq.File()]
	if c == piece.Black {
		return -val
	}
	return val
}
