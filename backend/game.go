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
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/ttbt-io/bowlkeeper/scoring"
)

// ErrGameFinished is returned for a roll made after the last frame.
var ErrGameFinished = errors.New("game is finished")

// Game is one bowling game session. A rejected roll is logged and returned
// but leaves the session usable for the next roll.
type Game struct {
	ID    string
	Debug bool

	mu       sync.Mutex
	round    *scoring.Round
	rolls    []int
	rejected int
}

// NewGame creates a Game with a fresh ID.
func NewGame(opts Options) *Game {
	return &Game{
		ID:    uuid.NewString(),
		Debug: opts.Debug,
		round: scoring.NewRound(opts.MaxFrames),
	}
}

// Roll records one roll.
func (g *Game) Roll(pins int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.round.IsFinished() {
		return g.reject(pins, ErrGameFinished)
	}
	if err := g.round.Record(pins); err != nil {
		return g.reject(pins, err)
	}
	g.rolls = append(g.rolls, pins)

	if g.Debug {
		if frame, ok := g.round.Current(); ok {
			log.Printf("game %s: roll %d: %d pins, frame %d pending", g.ID, len(g.rolls), pins, frame.Number())
		} else {
			log.Printf("game %s: roll %d: %d pins, frame closed", g.ID, len(g.rolls), pins)
		}
		if g.round.IsFinished() {
			log.Printf("game %s: finished with %d", g.ID, g.round.ScoreTable().Total())
		}
	}
	return nil
}

func (g *Game) reject(pins int, err error) error {
	g.rejected++
	log.Printf("game %s: roll %d rejected: %v", g.ID, len(g.rolls)+1, err)
	return fmt.Errorf("roll of %d pins: %w", pins, err)
}

// Finished reports whether the last frame is complete.
func (g *Game) Finished() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.round.IsFinished()
}

// Rolls returns the accepted rolls in order.
func (g *Game) Rolls() []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.rolls)
}

// Rejected returns how many rolls were refused.
func (g *Game) Rejected() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rejected
}

// Total returns the accumulated score of the last resolved frame.
func (g *Game) Total() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.round.ScoreTable().Total()
}

// Board returns a snapshot of the frames and scores.
func (g *Game) Board() Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Board{
		MaxFrames: g.round.MaxFrames(),
		Frames:    g.round.Frames(),
		Scores:    g.round.Scores(),
		Finished:  g.round.IsFinished(),
	}
}
