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
	"strconv"
	"strings"
	"unicode"

	"github.com/ttbt-io/bowlkeeper/scoring"
)

// ErrInvalidNotation is returned for a roll token that is not a pin count.
var ErrInvalidNotation = errors.New("invalid roll notation")

// ParseRoll converts one roll token to a pin count. Accepted tokens are the
// numbers 0 to 10, "X" (or "x") for a strike and "-" for a gutter ball.
// Whether the roll is legal in its frame is decided by the game.
func ParseRoll(token string) (int, error) {
	token = strings.TrimSpace(token)
	switch token {
	case "X", "x":
		return scoring.Pins, nil
	case "-":
		return 0, nil
	}
	pins, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, token)
	}
	if pins < 0 || pins > scoring.Pins {
		return 0, fmt.Errorf("%w: %q is not between 0 and %d", ErrInvalidNotation, token, scoring.Pins)
	}
	return pins, nil
}

// ParseRolls converts a list of roll tokens separated by commas or white
// space.
func ParseRolls(s string) ([]int, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	rolls := make([]int, 0, len(tokens))
	for i, token := range tokens {
		pins, err := ParseRoll(token)
		if err != nil {
			return nil, fmt.Errorf("roll %d: %w", i+1, err)
		}
		rolls = append(rolls, pins)
	}
	return rolls, nil
}
