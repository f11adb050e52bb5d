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

// Rule decides roll legality and frame state from a frame's roll history.
// There are exactly two rules; the zero value is NormalRule.
type Rule uint8

const (
	// NormalRule governs every frame but the last: at most two rolls.
	NormalRule Rule = iota
	// BonusRule governs the final frame: a strike or spare earns a third roll.
	BonusRule
)

func (r Rule) String() string {
	if r == BonusRule {
		return "bonus"
	}
	return "normal"
}

// Legal reports whether pins may be recorded after rolls.
func (r Rule) Legal(rolls []int, pins int) bool {
	if !validPinFall(pins) {
		return false
	}
	if r == BonusRule {
		return bonusLegal(rolls, pins)
	}
	return normalLegal(rolls, pins)
}

// Resolve derives the frame state from rolls.
func (r Rule) Resolve(rolls []int) FrameState {
	if r == BonusRule {
		return bonusResolve(rolls)
	}
	return normalResolve(rolls)
}

func normalLegal(rolls []int, pins int) bool {
	switch len(rolls) {
	case 0:
		return true
	case 1:
		if rolls[0] == Pins {
			return false
		}
		return rolls[0]+pins <= Pins
	default:
		return false
	}
}

func normalResolve(rolls []int) FrameState {
	switch {
	case len(rolls) == 1 && rolls[0] == Pins:
		return Strike
	case len(rolls) == 2 && sum(rolls) == Pins:
		return Spare
	case len(rolls) == 2 && sum(rolls) < Pins:
		return Open
	default:
		return Pending
	}
}

func bonusLegal(rolls []int, pins int) bool {
	switch len(rolls) {
	case 0:
		return true
	case 1:
		if rolls[0] == Pins {
			return true
		}
		return rolls[0]+pins <= Pins
	case 2:
		return sum(rolls) >= Pins
	default:
		return false
	}
}

func bonusResolve(rolls []int) FrameState {
	switch {
	case len(rolls) == 2 && sum(rolls) < Pins:
		return Complete
	case len(rolls) == 3:
		return Complete
	default:
		return Pending
	}
}
