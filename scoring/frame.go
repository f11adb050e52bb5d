// Copyright (c) 2026 TTBT Enterprises LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scoring

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Frame holds the rolls of one frame. Its state is always derived from the
// rolls through its Rule and is never stored.
type Frame struct {
	number int
	rule   Rule
	rolls  []int
}

func newFrame(number int, rule Rule) *Frame {
	return &Frame{
		number: number,
		rule:   rule,
		rolls:  make([]int, 0, 3),
	}
}

// Number returns the 1-based frame number.
func (f *Frame) Number() int {
	return f.number
}

// IsBonus reports whether this is the final frame of the game.
func (f *Frame) IsBonus() bool {
	return f.rule == BonusRule
}

// Rolls returns a copy of the recorded pin counts.
func (f *Frame) Rolls() []int {
	return slices.Clone(f.rolls)
}

// State returns the state derived from the recorded rolls.
func (f *Frame) State() FrameState {
	return f.rule.Resolve(f.rolls)
}

// IsPending reports whether the frame accepts more rolls.
func (f *Frame) IsPending() bool {
	return f.State() == Pending
}

// Record appends pins to the frame. Nothing is appended when an error is
// returned.
func (f *Frame) Record(pins int) error {
	if !f.IsPending() {
		return &RollError{Frame: f.number, Pins: pins, Kind: ErrFrameClosed}
	}
	if !f.rule.Legal(f.rolls, pins) {
		return &RollError{Frame: f.number, Pins: pins, Kind: ErrIllegalRoll}
	}
	f.rolls = append(f.rolls, pins)
	return nil
}

// View returns a read-only snapshot of the frame.
func (f *Frame) View() FrameView {
	state := f.State()
	return FrameView{
		Number:  f.number,
		Rolls:   f.Rolls(),
		State:   state,
		Pending: state == Pending,
		Bonus:   f.IsBonus(),
	}
}

func (f *Frame) String() string {
	rolls := make([]string, len(f.rolls))
	for i, r := range f.rolls {
		rolls[i] = strconv.Itoa(r)
	}
	return fmt.Sprintf("[frame: %d][state: %s][rolls: %s]", f.number, f.State(), strings.Join(rolls, ","))
}
