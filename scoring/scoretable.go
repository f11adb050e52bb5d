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
)

// FrameScore is the resolved score of one frame.
type FrameScore struct {
	Frame       int `json:"frame"`
	Score       int `json:"score"`
	Accumulated int `json:"accumulated"`
}

func (s FrameScore) String() string {
	return fmt.Sprintf("[frame: %d][score: %d][accumulated: %d]", s.Frame, s.Score, s.Accumulated)
}

// ScoreTable holds the resolved scores of frames 1..Len(). Frames past the
// first unresolved one are never included.
type ScoreTable struct {
	scores []FrameScore
}

// BuildScoreTable derives the scores that can be resolved from seq.
func BuildScoreTable(seq *FrameSequence) ScoreTable {
	var scores []FrameScore
	accumulated := 0
	for number := 1; ; number++ {
		f, ok := seq.ByNumber(number)
		if !ok || f.IsPending() {
			break
		}
		bonus, ok := seq.RollsFrom(number+1, f.State().bonusRolls())
		if !ok {
			break
		}
		score := sum(f.rolls) + sum(bonus)
		accumulated += score
		scores = append(scores, FrameScore{
			Frame:       number,
			Score:       score,
			Accumulated: accumulated,
		})
	}
	return ScoreTable{scores: scores}
}

// Len returns the number of resolved frames.
func (t ScoreTable) Len() int {
	return len(t.scores)
}

// ByNumber returns the score of the given frame if it is resolved.
func (t ScoreTable) ByNumber(number int) (FrameScore, bool) {
	if number < 1 || number > len(t.scores) {
		return FrameScore{}, false
	}
	return t.scores[number-1], true
}

// Scores returns the resolved scores in frame order.
func (t ScoreTable) Scores() []FrameScore {
	return slices.Clone(t.scores)
}

// Total returns the accumulated score of the last resolved frame.
func (t ScoreTable) Total() int {
	if len(t.scores) == 0 {
		return 0
	}
	return t.scores[len(t.scores)-1].Accumulated
}
