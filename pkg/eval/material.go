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

import "github.com/mcthouacbb/Calamity/pkg/piece"

// Material holds the centipawn value of each piece type. These, along
// with PSTRank/PSTFile, are the constants scripts/tune adjusts.
var Material = [piece.NType]Eval{
	piece.Pawn:   78,
	piece.Knight: 308,
	piece.Bishop: 319,
	piece.Rook:   483,
	piece.Queen:  966,
	piece.King:   0,
}
