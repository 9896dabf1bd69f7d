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

package search

import "math"

// reductions[depth][move] is the late-move-reduction table, filled in
// once at startup rather than recomputed with math.Log on every node.
var reductions [MaxDepth + 1][128]int

func init() {
	for depth := 1; depth <= MaxDepth; depth++ {
		for moves := 1; moves < 128; moves++ {
			reductions[depth][moves] = int(0.77 + math.Log(float64(moves))*math.Log(float64(depth))/2.36)
		}
	}
}
