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

// FrameFactory hands out frames 1..maxFrames in order. The last frame gets
// the BonusRule.
type FrameFactory struct {
	maxFrames int
	count     int
}

// NewFrameFactory creates a FrameFactory. A maxFrames below 1 selects
// DefaultMaxFrames.
func NewFrameFactory(maxFrames int) *FrameFactory {
	if maxFrames < 1 {
		maxFrames = DefaultMaxFrames
	}
	return &FrameFactory{maxFrames: maxFrames}
}

// MaxFrames returns the number of frames in the game.
func (ff *FrameFactory) MaxFrames() int {
	return ff.maxFrames
}

// Next returns the next frame, or ErrFramesExhausted after the last one.
func (ff *FrameFactory) Next() (*Frame, error) {
	if ff.count >= ff.maxFrames {
		return nil, ErrFramesExhausted
	}
	ff.count++
	rule := NormalRule
	if ff.count == ff.maxFrames {
		rule = BonusRule
	}
	return newFrame(ff.count, rule), nil
}
