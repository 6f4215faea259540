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
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/tangler/tangle"
	"go.uber.org/zap"
)

// commandWindow is how many commands are listed around the cursor
const commandWindow = 5

type stepperKeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Copy  key.Binding
	Quit  key.Binding
}

func (k stepperKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.First, k.Last, k.Copy, k.Quit}
}

func (k stepperKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var stepperKeys = stepperKeyMap{
	Next:  key.NewBinding(key.WithKeys("right", "l", "n", " "), key.WithHelp("→/n", "next")),
	Prev:  key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/p", "back")),
	First: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	Last:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	Copy:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy answer")),
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// StepperModel replays a command stream one command at a time. Going back
// rebuilds the pair from the start, since swaps are not reversible in general.
type StepperModel struct {
	input  *PuzzleInput
	policy tangle.Policy
	logger *zap.Logger

	pair *tangle.Pair
	step int // commands applied so far
	err  error

	viewport viewport.Model
	help     help.Model
	keys     stepperKeyMap
	styles   *Styles
	status   string

	ready  bool
	width  int
	height int
}

func NewStepperModel(input *PuzzleInput, policy tangle.Policy, logger *zap.Logger) StepperModel {
	m := StepperModel{
		input:    input,
		policy:   policy,
		logger:   logger,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     stepperKeys,
		styles:   NewStyles(),
	}
	m.replay(0)
	return m
}

// replay rebuilds the pair with the first n commands applied, stopping early
// at the first failing command.
func (m *StepperModel) replay(n int) {
	m.pair = tangle.NewPair(m.policy, tangle.WithLogger(m.logger))
	m.step, m.err = 0, nil
	for m.step < n && m.advance() {
	}
}

// advance applies the next command. It reports false at the end of the
// stream or once a command has failed.
func (m *StepperModel) advance() bool {
	if m.err != nil || m.step >= len(m.input.Commands) {
		return false
	}
	cmd := m.input.Commands[m.step]
	if err := m.pair.Apply(cmd); err != nil {
		m.err = fmt.Errorf("command %d (%v): %w", m.step+1, cmd, err)
		return false
	}
	m.step++
	return true
}

func (m StepperModel) Init() tea.Cmd {
	return nil
}

func (m StepperModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.advance()
		case key.Matches(msg, m.keys.Prev):
			if m.step > 0 {
				m.replay(m.step - 1)
			}
		case key.Matches(msg, m.keys.First):
			m.replay(0)
		case key.Matches(msg, m.keys.Last):
			for m.advance() {
			}
		case key.Matches(msg, m.keys.Copy):
			if err := clipboard.WriteAll(m.pair.Answer()); err != nil {
				m.status = "copy failed: " + err.Error()
			} else {
				m.status = "copied " + m.pair.Answer()
			}
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		m.viewport.SetContent(m.renderBody())
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-4, 1)
		m.help.Width = msg.Width
		m.viewport.SetContent(m.renderBody())
		m.ready = true
	}

	return m, nil
}

func (m StepperModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.styles.Title.Render(fmt.Sprintf("%s  step %d/%d  policy %s",
		m.input.Path, m.step, len(m.input.Commands), m.policy))

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), footer)
}

// renderBody shows the commands around the cursor and the levels of both trees
func (m StepperModel) renderBody() string {
	var b strings.Builder

	lo := max(m.step-commandWindow, 0)
	hi := min(m.step+commandWindow, len(m.input.Commands))
	for i := lo; i < hi; i++ {
		marker := "  "
		if i == m.step {
			marker = "▶ "
		}
		line := fmt.Sprintf("%s%4d  %v", marker, i+1, m.input.Commands[i])
		if i < m.step {
			line = m.styles.HelpDesc.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if m.step == len(m.input.Commands) {
		b.WriteString("  (end of input)\n")
	}
	b.WriteString("\n")

	left := m.styles.BorderBlurred.Padding(0, 1).Render(renderLevels(m.styles, "left", m.pair.Left().Levels()))
	right := m.styles.BorderBlurred.Padding(0, 1).Render(renderLevels(m.styles, "right", m.pair.Right().Levels()))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n\nanswer: " + m.styles.Answer.Render(m.pair.Answer()) + "\n")

	if m.err != nil {
		b.WriteString("\n" + m.styles.ErrorMessage.Render(m.err.Error()) + "\n")
	}
	return b.String()
}

// runStepper starts the Bubble Tea step-through viewer
func runStepper(input *PuzzleInput, policy tangle.Policy, logger *zap.Logger) error {
	model := NewStepperModel(input, policy, logger)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithOutput(os.Stdout),
	)

	_, err := program.Run()
	return err
}
