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

// Package scoring implements the ten-pin bowling frame and score engine.
//
// A Round is fed one roll at a time. Each roll lands in the current Frame,
// whose state is derived from its roll history by the frame's Rule. Scores are
// derived on demand from the frames recorded so far; a frame whose bonus rolls
// have not been bowled yet stays unresolved rather than scoring as zero.
package scoring

// Pin count constants.
const (
	// Pins is the number of pins standing at the start of a rack.
	Pins = 10

	// DefaultMaxFrames is the number of frames in a standard game.
	DefaultMaxFrames = 10
)

// FrameState is the resolved state of a frame.
type FrameState int

const (
	// Pending means more rolls may still be recorded in the frame.
	Pending FrameState = iota
	// Open is two rolls that left pins standing.
	Open
	// Strike is a single roll that knocked down every pin.
	Strike
	// Spare is two rolls that together knocked down every pin.
	Spare
	// Complete is the terminal state of the final frame.
	Complete
)

func (s FrameState) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Open:
		return "Open"
	case Strike:
		return "Strike"
	case Spare:
		return "Spare"
	case Complete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the state by name.
func (s FrameState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// bonusRolls returns how many rolls after the frame count toward its score.
func (s FrameState) bonusRolls() int {
	switch s {
	case Strike:
		return 2
	case Spare:
		return 1
	default:
		return 0
	}
}

// validPinFall reports whether pins is a possible single-roll count.
func validPinFall(pins int) bool {
	return pins >= 0 && pins <= Pins
}

func sum(rolls []int) int {
	total := 0
	for _, r := range rolls {
		total += r
	}
	return total
}
