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

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/cybrota/tangler/tangle"
	"github.com/schollz/progressbar/v3"
)

// PuzzleInput is a command file read into memory together with its parsed
// commands.
type PuzzleInput struct {
	Path     string
	Data     []byte
	Commands []tangle.Command
}

// readPuzzleInput reads and parses a whole command file. A malformed line
// aborts with the file name and line number.
func readPuzzleInput(path string) (*PuzzleInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("puzzle input %s not found. Save the quest input under that name, then try again", path)
		}
		return nil, err
	}

	commands, err := tangle.ParseCommands(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &PuzzleInput{Path: path, Data: data, Commands: commands}, nil
}

// newCommandBar creates a progress bar sized to a command stream
func newCommandBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
