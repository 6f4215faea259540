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
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/cybrota/tangler/tangle"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %s%s%s to clipboard.\n", Green, text, Reset)
	return nil
}

func main() {
	asciiLogo := `
╔╦╗╔═╗╔╗╔╔═╗╦  ╔═╗╦═╗
 ║ ╠═╣║║║║ ╦║  ║╣ ╠╦╝
 ╩ ╩ ╩╝╚╝╚═╝╩═╝╚═╝╩╚═
Untangles two binary trees grown from one command stream [Version: %s%s%s]

`
	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var (
		verbose bool
		logger  = zap.NewNop()
	)

	var rootCmd = &cobra.Command{
		Use:           "tangler",
		Version:       version,
		Long:          asciiLogo,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(verbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log every applied swap to stderr")

	loadConfig := func() *Config {
		config, err := LoadConfig()
		if err != nil {
			logger.Warn("Failed to load configuration, using defaults", zap.Error(err))
			config = &defaultConfig
		}
		return config
	}

	solvePolicy := tangle.PolicyNode
	var copyAnswer, showProgress bool
	var cmdSolve = &cobra.Command{
		Use:   "solve FILE",
		Short: "Print the answer for one command file",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Solve builds both trees from FILE and prints the symbols of their widest levels`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			solver := NewSolver(NewSolutionCache(), logger, showProgress || config.Output.ShowProgress)
			sol, err := solver.Solve(args[0], solvePolicy)
			if err != nil {
				return err
			}
			fmt.Println(sol.Answer)
			if copyAnswer || config.Output.CopyToClipboard {
				if err := copyToClipboard(sol.Answer); err != nil {
					logger.Warn("Failed to copy answer", zap.Error(err))
				}
			}
			return nil
		},
	}
	cmdSolve.Flags().Var(&solvePolicy, "policy", "swap policy: none, node or subtree")
	cmdSolve.Flags().BoolVar(&copyAnswer, "copy", false, "copy the answer to the clipboard")
	cmdSolve.Flags().BoolVar(&showProgress, "progress", false, "show a progress bar while applying commands")

	var questDir string
	var cmdQuest = &cobra.Command{
		Use:   "quest",
		Short: "Solve every part listed in ~/.tangler.yaml",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Quest solves the configured parts in order, reading inputs relative to --dir`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			solver := NewSolver(NewSolutionCache(), logger, config.Output.ShowProgress)

			fmt.Println(config.Quest.Title)
			for i, part := range config.Quest.Parts {
				path := part.Input
				if !filepath.IsAbs(path) {
					path = filepath.Join(questDir, path)
				}
				sol, err := solver.Solve(path, part.Policy)
				if err != nil {
					return fmt.Errorf("%s: %w", part.Name, err)
				}
				fmt.Printf("  part %d = %s\n", i+1, sol.Answer)
			}
			return nil
		},
	}
	cmdQuest.Flags().StringVar(&questDir, "dir", ".", "directory holding the part inputs")

	levelsPolicy := tangle.PolicyNode
	var cmdLevels = &cobra.Command{
		Use:   "levels FILE",
		Short: "Show every level of both trees",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Levels prints the symbols at each depth of both trees, marking the widest`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			solver := NewSolver(NewSolutionCache(), logger, false)
			sol, err := solver.Solve(args[0], levelsPolicy)
			if err != nil {
				return err
			}
			fmt.Println(renderSolution(NewStyles(), sol))
			return nil
		},
	}
	cmdLevels.Flags().Var(&levelsPolicy, "policy", "swap policy: none, node or subtree")

	stepPolicy := tangle.PolicyNode
	var cmdStep = &cobra.Command{
		Use:   "step FILE",
		Short: "Walk through the commands one at a time",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Step opens an interactive viewer that applies FILE one command at a time`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readPuzzleInput(args[0])
			if err != nil {
				return err
			}
			return runStepper(input, stepPolicy, logger)
		},
	}
	cmdStep.Flags().Var(&stepPolicy, "policy", "swap policy: none, node or subtree")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings prints ~/.tangler.yaml, creating it with defaults if missing`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Tangler usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the tangler CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Tangler version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(cmdSolve, cmdQuest, cmdLevels, cmdStep, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError:%s %v\n", Error, Reset, err)
		os.Exit(1)
	}
}
