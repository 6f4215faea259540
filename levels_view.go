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
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/tangler/tangle"
)

// renderLevels draws one tree's depth buckets, highlighting the widest one
func renderLevels(styles *Styles, title string, levels []string) string {
	widest, _ := tangle.WidestOf(levels)

	rows := []string{styles.Title.Render(title)}
	if len(levels) == 0 {
		rows = append(rows, styles.Depth.Render("-")+styles.Level.Render("(empty)"))
	}
	for depth, level := range levels {
		style := styles.Level
		marker := "  "
		if depth == widest {
			style = styles.Widest
			marker = " ◀"
		}
		rows = append(rows, styles.Depth.Render(fmt.Sprintf("%d", depth))+style.Render(level)+marker)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderSolution places both trees side by side above the answer
func renderSolution(styles *Styles, sol Solution) string {
	left := styles.BorderBlurred.Padding(0, 1).Render(renderLevels(styles, "left", sol.Left))
	right := styles.BorderBlurred.Padding(0, 1).Render(renderLevels(styles, "right", sol.Right))

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (policy: %s)\n", sol.Input, sol.Policy))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")
	b.WriteString("answer: " + styles.Answer.Render(sol.Answer))
	return b.String()
}
