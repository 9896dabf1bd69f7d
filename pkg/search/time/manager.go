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

// Package time implements the time managers a search uses to decide
// how long it may keep searching.
package time

import (
	"time"

	"github.com/mcthouacbb/Calamity/pkg/piece"
)

// Manager decides when a search must stop, given however the GUI (or
// the caller) expressed the time control.
type Manager interface {
	// GetDeadline computes the optimal amount of time to search for
	// and commits to an internal deadline.
	GetDeadline()

	// ExtendDeadline is called when the search wants more time than
	// originally budgeted; extension may be a no-op depending on the
	// manager.
	ExtendDeadline()

	// Expired reports whether the deadline has passed.
	Expired() bool
}

// NormalManager derives a deadline from the GUI-provided per-side
// clocks, increments, and moves-to-go, the ordinary "wtime/btime"
// UCI time control.
type NormalManager struct {
	Us piece.Color

	Time, Increment [piece.NColor]int
	MovesToGo       int

	deadline time.Time
}

var _ Manager = (*NormalManager)(nil)

func (m *NormalManager) GetDeadline() {
	budget := time.Duration(m.Time[m.Us]) * time.Millisecond
	if m.MovesToGo > 0 {
		budget = budget / time.Duration(m.MovesToGo)
	} else {
		budget = budget / 30
	}
	budget += time.Duration(m.Increment[m.Us]) * time.Millisecond / 2
	m.deadline = time.Now().Add(budget)
}

func (m *NormalManager) ExtendDeadline() {
	m.deadline = m.deadline.Add((time.Duration(m.Time[m.Us]) * time.Millisecond) / 30)
}

func (m *NormalManager) Expired() bool {
	return time.Now().After(m.deadline)
}

// MoveManager allocates exactly the fixed "movetime" the GUI asked
// for; its deadline cannot be extended.
type MoveManager struct {
	Duration int
	deadline time.Time
}

var _ Manager = (*MoveManager)(nil)

func (m *MoveManager) GetDeadline() {
	m.deadline = time.Now().Add(time.Duration(m.Duration) * time.Millisecond)
}

func (m *MoveManager) ExtendDeadline() {}

func (m *MoveManager) Expired() bool {
	return time.Now().After(m.deadline)
}

// InfiniteManager never expires; used for "go infinite" and "go
// depth N" searches where only the node/depth limits should stop us.
type InfiniteManager struct{}

var _ Manager = InfiniteManager{}

func (InfiniteManager) GetDeadline()   {}
func (InfiniteManager) ExtendDeadline() {}
func (InfiniteManager) Expired() bool  { return false }
