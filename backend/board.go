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

package backend

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ttbt-io/bowlkeeper/scoring"
)

// Board is a snapshot of a game for display.
type Board struct {
	MaxFrames int                 `json:"maxFrames"`
	Frames    []scoring.FrameSlot `json:"frames"`
	Scores    []scoring.ScoreSlot `json:"scores"`
	Finished  bool                `json:"finished"`
}

// RenderBoard renders the board as two lines of text: the marks of each
// frame, then the running total under every resolved frame.
//
//	  1[4,/]  2[5,/]  3[ X ]  4[6, ]  5[   ] ... 10[     ]
//	   [ 15]   [ 35]   [   ]   [   ]   [   ] ...   [     ]
func RenderBoard(b Board) string {
	var sb strings.Builder
	for _, slot := range b.Frames {
		fmt.Fprintf(&sb, "%3d", slot.Number)
		if slot.Number == b.MaxFrames {
			sb.WriteString(finalFrameCell(slot))
		} else {
			sb.WriteString(frameCell(slot))
		}
	}
	sb.WriteString("\n")
	for _, slot := range b.Scores {
		sb.WriteString("   ")
		if slot.Number == b.MaxFrames {
			sb.WriteString(scoreCell(slot, 5))
		} else {
			sb.WriteString(scoreCell(slot, 3))
		}
	}
	sb.WriteString("\n\n")
	return sb.String()
}

func frameCell(slot scoring.FrameSlot) string {
	if !slot.Played {
		return "[   ]"
	}
	f := slot.Frame
	switch f.State {
	case scoring.Strike:
		return "[ X ]"
	case scoring.Spare:
		return fmt.Sprintf("[%d,/]", f.Rolls[0])
	}
	marks := make([]string, len(f.Rolls))
	for i, r := range f.Rolls {
		marks[i] = strconv.Itoa(r)
	}
	return fmt.Sprintf("[%-3s]", joinMarks(marks, f.Pending))
}

func finalFrameCell(slot scoring.FrameSlot) string {
	if !slot.Played {
		return "[     ]"
	}
	return fmt.Sprintf("[%-5s]", joinMarks(finalMarks(slot.Frame.Rolls), slot.Frame.Pending))
}

// finalMarks marks the rolls of the final frame. A 10 is always a strike; a
// roll is a spare only when it clears the pins left by a nonzero roll.
func finalMarks(rolls []int) []string {
	marks := make([]string, len(rolls))
	prev := 0
	for i, r := range rolls {
		switch {
		case r == scoring.Pins:
			marks[i] = "X"
			prev = 0
		case prev > 0 && prev+r == scoring.Pins:
			marks[i] = "/"
			prev = 0
		default:
			marks[i] = strconv.Itoa(r)
			prev = r
		}
	}
	return marks
}

func joinMarks(marks []string, pending bool) string {
	s := strings.Join(marks, ",")
	if pending {
		s += ","
	}
	return s
}

func scoreCell(slot scoring.ScoreSlot, width int) string {
	if !slot.Resolved {
		return "[" + strings.Repeat(" ", width) + "]"
	}
	return fmt.Sprintf("[%*d]", width, slot.Score.Accumulated)
}
