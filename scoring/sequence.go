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
	"cmp"
	"iter"
	"slices"
)

// FrameSequence keeps frames ordered by frame number.
type FrameSequence struct {
	frames []*Frame
}

// NewFrameSequence creates an empty FrameSequence.
func NewFrameSequence() *FrameSequence {
	return &FrameSequence{}
}

func (s *FrameSequence) search(number int) (int, bool) {
	return slices.BinarySearchFunc(s.frames, number, func(f *Frame, n int) int {
		return cmp.Compare(f.number, n)
	})
}

// Add inserts f, replacing any frame with the same number.
func (s *FrameSequence) Add(f *Frame) {
	i, found := s.search(f.number)
	if found {
		s.frames[i] = f
		return
	}
	s.frames = slices.Insert(s.frames, i, f)
}

// ByNumber returns the frame with the given number.
func (s *FrameSequence) ByNumber(number int) (*Frame, bool) {
	i, found := s.search(number)
	if !found {
		return nil, false
	}
	return s.frames[i], true
}

// Latest returns the highest-numbered frame.
func (s *FrameSequence) Latest() (*Frame, bool) {
	if len(s.frames) == 0 {
		return nil, false
	}
	return s.frames[len(s.frames)-1], true
}

// Len returns the number of frames.
func (s *FrameSequence) Len() int {
	return len(s.frames)
}

// All iterates over the frames in frame number order.
func (s *FrameSequence) All() iter.Seq[*Frame] {
	return func(yield func(*Frame) bool) {
		for _, f := range s.frames {
			if !yield(f) {
				return
			}
		}
	}
}

// RollsFrom returns the first count rolls recorded in frames numbered start
// and above, in the order they were bowled. It returns false when fewer than
// count rolls exist yet.
func (s *FrameSequence) RollsFrom(start, count int) ([]int, bool) {
	if count <= 0 {
		return []int{}, true
	}
	i, _ := s.search(start)
	rolls := make([]int, 0, count)
	for _, f := range s.frames[i:] {
		for _, r := range f.rolls {
			rolls = append(rolls, r)
			if len(rolls) == count {
				return rolls, true
			}
		}
	}
	return nil, false
}
