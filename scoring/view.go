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

// FrameView is a snapshot of a frame. Changing it does not affect the game.
type FrameView struct {
	Number  int        `json:"number"`
	Rolls   []int      `json:"rolls"`
	State   FrameState `json:"state"`
	Pending bool       `json:"pending"`
	Bonus   bool       `json:"bonus"`
}

// FrameSlot is a frame position of the game. Played is false until the
// frame's first roll has been recorded.
type FrameSlot struct {
	Number int       `json:"number"`
	Frame  FrameView `json:"frame"`
	Played bool      `json:"played"`
}

// ScoreSlot is a score position of the game. Resolved is false while the
// frame, or any frame before it, still waits for rolls.
type ScoreSlot struct {
	Number   int        `json:"number"`
	Score    FrameScore `json:"score"`
	Resolved bool       `json:"resolved"`
}
