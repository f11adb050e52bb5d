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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ttbt-io/bowlkeeper/backend"
)

// main plays one game from the roll script or standard input and prints the
// board.
func main() {
	opts, useStdin, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var in io.Reader
	if useStdin {
		in = os.Stdin
	}
	if err := run(opts, in, os.Stdout); err != nil {
		log.Fatalf("Failed to play game: %v", err)
	}
}

// parseFlags loads environment defaults and then applies command line flags.
func parseFlags(args []string) (backend.Options, bool, error) {
	var opts backend.Options
	if err := backend.ParseEnv(&opts); err != nil {
		return opts, false, err
	}

	fs := flag.NewFlagSet("bowlkeeper", flag.ContinueOnError)
	fs.IntVar(&opts.MaxFrames, "frames", opts.MaxFrames, "Number of frames in the game")
	fs.StringVar(&opts.Rolls, "rolls", opts.Rolls, "Comma or space separated rolls (0-10, X, -)")
	fs.BoolVar(&opts.Debug, "debug", opts.Debug, "Enable debug mode")
	fs.BoolVar(&opts.Quiet, "quiet", opts.Quiet, "Print the board only after the last roll")
	useStdin := fs.Bool("stdin", false, "Read rolls from standard input instead of --rolls")
	if err := fs.Parse(args); err != nil {
		return opts, false, err
	}
	if err := opts.Validate(); err != nil {
		return opts, false, err
	}
	return opts, *useStdin, nil
}

// run plays the rolls from in, or from opts.Rolls when in is nil. Rejected
// rolls are reported and skipped; the game goes on with the next roll.
func run(opts backend.Options, in io.Reader, out io.Writer) error {
	game := backend.NewGame(opts)
	if opts.Debug {
		log.Printf("game %s: %d frames", game.ID, opts.MaxFrames)
	}

	play := func(pins int) {
		if err := game.Roll(pins); err != nil {
			fmt.Fprintf(out, "[error] %v\n", err)
			return
		}
		if !opts.Quiet {
			fmt.Fprint(out, backend.RenderBoard(game.Board()))
		}
	}

	if in == nil {
		rolls, err := backend.ParseRolls(opts.Rolls)
		if err != nil {
			return err
		}
		for _, pins := range rolls {
			play(pins)
		}
	} else {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			rolls, err := backend.ParseRolls(scanner.Text())
			if err != nil {
				fmt.Fprintf(out, "[error] %v\n", err)
				continue
			}
			for _, pins := range rolls {
				play(pins)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read rolls: %w", err)
		}
	}

	if opts.Quiet {
		fmt.Fprint(out, backend.RenderBoard(game.Board()))
	}
	return nil
}
