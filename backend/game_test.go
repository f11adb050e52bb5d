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
	"bytes"
	"errors"
	"log"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/ttbt-io/bowlkeeper/scoring"
)

// captureLog redirects the standard logger for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestNewGame(t *testing.T) {
	g := NewGame(DefaultOptions())
	if _, err := uuid.Parse(g.ID); err != nil {
		t.Fatalf("game ID %q is not a UUID: %v", g.ID, err)
	}
	if other := NewGame(DefaultOptions()); other.ID == g.ID {
		t.Fatalf("two games share ID %s", g.ID)
	}
	if g.Finished() || g.Total() != 0 || len(g.Rolls()) != 0 {
		t.Fatal("new game is not empty")
	}
	if got := g.Board().MaxFrames; got != scoring.DefaultMaxFrames {
		t.Errorf("Board().MaxFrames = %d, want %d", got, scoring.DefaultMaxFrames)
	}
}

func TestGameRejectedRollKeepsSession(t *testing.T) {
	logs := captureLog(t)
	g := NewGame(DefaultOptions())

	if err := g.Roll(9); err != nil {
		t.Fatalf("Roll(9): %v", err)
	}
	err := g.Roll(2)
	if !errors.Is(err, scoring.ErrIllegalRoll) {
		t.Fatalf("Roll(2) after 9: got %v, want ErrIllegalRoll", err)
	}
	if !strings.Contains(logs.String(), "roll 2 rejected") {
		t.Errorf("rejection not logged: %q", logs.String())
	}
	if err := g.Roll(1); err != nil {
		t.Fatalf("Roll(1) after rejected roll: %v", err)
	}
	if !reflect.DeepEqual(g.Rolls(), []int{9, 1}) {
		t.Errorf("Rolls() = %v, want [9 1]", g.Rolls())
	}
	if g.Rejected() != 1 {
		t.Errorf("Rejected() = %d, want 1", g.Rejected())
	}
	if state := g.Board().Frames[0].Frame.State; state != scoring.Spare {
		t.Errorf("frame 1 state = %v, want Spare", state)
	}
}

func TestGameFinished(t *testing.T) {
	captureLog(t)
	g := playGame(t, 10, "X X X X X X X X X X X X")
	if !g.Finished() {
		t.Fatal("Finished() = false after perfect game")
	}
	if g.Total() != 300 {
		t.Errorf("Total() = %d, want 300", g.Total())
	}
	if err := g.Roll(0); !errors.Is(err, ErrGameFinished) {
		t.Fatalf("Roll after end: got %v, want ErrGameFinished", err)
	}
	if len(g.Rolls()) != 12 {
		t.Errorf("Rolls() has %d entries, want 12", len(g.Rolls()))
	}
	if !g.Board().Finished {
		t.Error("Board().Finished = false")
	}
}

func TestGameDebugLogging(t *testing.T) {
	logs := captureLog(t)
	g := NewGame(Options{MaxFrames: 1, Debug: true})
	for _, pins := range []int{3, 4} {
		if err := g.Roll(pins); err != nil {
			t.Fatalf("Roll(%d): %v", pins, err)
		}
	}
	out := logs.String()
	for _, want := range []string{
		"roll 1: 3 pins, frame 1 pending",
		"roll 2: 4 pins, frame closed",
		"finished with 7",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("debug log missing %q:\n%s", want, out)
		}
	}
}

func TestGameConcurrentRolls(t *testing.T) {
	captureLog(t)
	g := NewGame(DefaultOptions())
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Roll(1)
			_ = g.Board()
		}()
	}
	wg.Wait()
	if got := len(g.Rolls()); got != 20 {
		t.Fatalf("accepted %d rolls, want 20", got)
	}
	if g.Rejected() != 10 {
		t.Errorf("Rejected() = %d, want 10", g.Rejected())
	}
	if g.Total() != 20 {
		t.Errorf("Total() = %d, want 20", g.Total())
	}
}
