// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tangle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Op is the kind of a command line.
type Op int

const (
	OpAdd Op = iota
	OpSwap
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "ADD"
	case OpSwap:
		return "SWAP"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Spec is the rank and symbol a node gets on one side of the pair.
type Spec struct {
	Rank   uint64
	Symbol rune
}

// Command is one parsed input line. Left and Right are only set for OpAdd.
type Command struct {
	Op    Op
	ID    uint64
	Left  Spec
	Right Spec
}

func (c Command) String() string {
	if c.Op == OpSwap {
		return fmt.Sprintf("SWAP %d", c.ID)
	}
	return fmt.Sprintf("ADD ID=%d left=[%d,%c] right=[%d,%c]",
		c.ID, c.Left.Rank, c.Left.Symbol, c.Right.Rank, c.Right.Symbol)
}

// ParseCommand parses one line of the form
//
//	ADD ID=<id> <left> <right>
//	SWAP <id>
//
// where <left> and <right> carry a "[rank,symbol]" pair, possibly wrapped in
// other characters such as "left=[10,A]".
func ParseCommand(line string) (Command, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrMalformedCommand)
	}

	switch words[0] {
	case "ADD":
		if len(words) != 4 {
			return Command{}, fmt.Errorf("%w: ADD takes 3 fields, got %d", ErrMalformedCommand, len(words)-1)
		}
		key, value, ok := strings.Cut(words[1], "=")
		if !ok || key != "ID" {
			return Command{}, fmt.Errorf("%w: expected ID=<id>, got %q", ErrMalformedCommand, words[1])
		}
		id, err := parseUint(value)
		if err != nil {
			return Command{}, err
		}
		left, err := parseSpec(words[2])
		if err != nil {
			return Command{}, err
		}
		right, err := parseSpec(words[3])
		if err != nil {
			return Command{}, err
		}
		return Command{Op: OpAdd, ID: id, Left: left, Right: right}, nil

	case "SWAP":
		if len(words) != 2 {
			return Command{}, fmt.Errorf("%w: SWAP takes 1 field, got %d", ErrMalformedCommand, len(words)-1)
		}
		id, err := parseUint(words[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Op: OpSwap, ID: id}, nil

	default:
		return Command{}, fmt.Errorf("%w: unknown command %q", ErrMalformedCommand, words[0])
	}
}

// parseSpec extracts "rank,symbol" from between the first '[' and the next ']'.
func parseSpec(word string) (Spec, error) {
	_, rest, ok := strings.Cut(word, "[")
	if !ok {
		return Spec{}, fmt.Errorf("%w: missing '[' in %q", ErrMalformedCommand, word)
	}
	inner, _, ok := strings.Cut(rest, "]")
	if !ok {
		return Spec{}, fmt.Errorf("%w: missing ']' in %q", ErrMalformedCommand, word)
	}
	rankStr, symbolStr, ok := strings.Cut(inner, ",")
	if !ok {
		return Spec{}, fmt.Errorf("%w: missing ',' in %q", ErrMalformedCommand, word)
	}

	rank, err := parseUint(rankStr)
	if err != nil {
		return Spec{}, err
	}
	symbol, size := utf8.DecodeRuneInString(symbolStr)
	if size == 0 || symbol == utf8.RuneError {
		return Spec{}, fmt.Errorf("%w: missing symbol in %q", ErrMalformedCommand, word)
	}
	return Spec{Rank: rank, Symbol: symbol}, nil
}

func parseUint(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedCommand, err)
	}
	return v, nil
}

// ParseCommands parses a whole command stream. Blank lines are skipped and
// the first malformed line aborts with its 1-based line number.
func ParseCommands(r io.Reader) ([]Command, error) {
	var commands []Command
	err := scanCommands(r, func(_ int, cmd Command) error {
		commands = append(commands, cmd)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return commands, nil
}

// scanCommands calls fn for every command in r, in order, stopping at the
// first error.
func scanCommands(r io.Reader, fn func(lineNo int, cmd Command) error) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		cmd, err := ParseCommand(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := fn(lineNo, cmd); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}
