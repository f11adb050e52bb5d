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
	"errors"
	"fmt"
)

var (
	// ErrIllegalRoll is returned when a pin count breaks a bowling rule.
	ErrIllegalRoll = errors.New("illegal roll")
	// ErrFrameClosed is returned when a roll is recorded in a finished frame.
	ErrFrameClosed = errors.New("frame closed")
	// ErrFramesExhausted is returned when a frame is requested past the last one.
	ErrFramesExhausted = errors.New("frames exhausted")
)

// RollError describes a rejected roll. It unwraps to ErrIllegalRoll or
// ErrFrameClosed.
type RollError struct {
	Frame int
	Pins  int
	Kind  error
}

func (e *RollError) Error() string {
	return fmt.Sprintf("frame %d: %v: %d pins", e.Frame, e.Kind, e.Pins)
}

func (e *RollError) Unwrap() error {
	return e.Kind
}
