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

	"github.com/caarlos0/env/v11"

	"github.com/ttbt-io/bowlkeeper/scoring"
)

// DemoRolls is the roll script played when no other input is given.
const DemoRolls = "4,6,5,5,10,6"

// Options configures a game session.
type Options struct {
	// MaxFrames is the number of frames in the game.
	MaxFrames int `env:"BOWLING_MAX_FRAMES" envDefault:"10"`
	// Rolls is the roll script, in the notation accepted by ParseRolls.
	Rolls string `env:"BOWLING_ROLLS" envDefault:"4,6,5,5,10,6"`
	// Debug enables logging of accepted rolls.
	Debug bool `env:"BOWLING_DEBUG" envDefault:"false"`
	// Quiet prints the board only once, after the last roll.
	Quiet bool `env:"BOWLING_QUIET" envDefault:"false"`
}

// DefaultOptions returns the options of a standard game playing the demo
// script.
func DefaultOptions() Options {
	return Options{
		MaxFrames: scoring.DefaultMaxFrames,
		Rolls:     DemoRolls,
	}
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks that the options describe a playable game.
func (o Options) Validate() error {
	if o.MaxFrames < 1 {
		return fmt.Errorf("max frames must be at least 1, got %d", o.MaxFrames)
	}
	return nil
}
