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

// Round is one player's game. It is not safe for concurrent use.
type Round struct {
	factory *FrameFactory
	frames  *FrameSequence
}

// NewRound creates a Round of maxFrames frames (DefaultMaxFrames if < 1).
func NewRound(maxFrames int) *Round {
	return &Round{
		factory: NewFrameFactory(maxFrames),
		frames:  NewFrameSequence(),
	}
}

// MaxFrames returns the number of frames in the game.
func (r *Round) MaxFrames() int {
	return r.factory.MaxFrames()
}

// IsFinished reports whether the final frame has been completed.
func (r *Round) IsFinished() bool {
	latest, ok := r.frames.Latest()
	return ok && latest.IsBonus() && !latest.IsPending()
}

// Current returns the frame the next roll would be recorded in, if it exists
// already.
func (r *Round) Current() (*Frame, bool) {
	latest, ok := r.frames.Latest()
	if !ok || !latest.IsPending() {
		return nil, false
	}
	return latest, true
}

// Record records one roll. A new frame is started when there is none yet or
// the latest one is no longer pending. On error the round is left unchanged.
func (r *Round) Record(pins int) error {
	frame, ok := r.Current()
	if !ok {
		// Out of range counts are rejected before a frame is taken from the
		// factory so that a failed roll never leaves an empty frame behind.
		if !validPinFall(pins) {
			next := r.frames.Len() + 1
			if next > r.MaxFrames() {
				return ErrFramesExhausted
			}
			return &RollError{Frame: next, Pins: pins, Kind: ErrIllegalRoll}
		}
		var err error
		if frame, err = r.factory.Next(); err != nil {
			return err
		}
		r.frames.Add(frame)
	}
	return frame.Record(pins)
}

// ScoreTable derives the current scores. Each call recomputes from the
// recorded frames.
func (r *Round) ScoreTable() ScoreTable {
	return BuildScoreTable(r.frames)
}

// Frames returns one slot per frame of the game, in order.
func (r *Round) Frames() []FrameSlot {
	slots := make([]FrameSlot, r.MaxFrames())
	for i := range slots {
		slots[i].Number = i + 1
	}
	for f := range r.frames.All() {
		slots[f.number-1].Frame = f.View()
		slots[f.number-1].Played = true
	}
	return slots
}

// Scores returns one slot per frame of the game, in order.
func (r *Round) Scores() []ScoreSlot {
	table := r.ScoreTable()
	slots := make([]ScoreSlot, r.MaxFrames())
	for i := range slots {
		slots[i].Number = i + 1
		slots[i].Score, slots[i].Resolved = table.ByNumber(i + 1)
	}
	return slots
}
