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

	"github.com/cybrota/tangler/tangle"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Solution is the outcome of running one command file under one policy
type Solution struct {
	Input  string
	Policy tangle.Policy
	Answer string
	Left   []string
	Right  []string
	Cached bool
}

// Solver runs command files through a tree pair and memoises the answers
type Solver struct {
	cache        *cache.Cache
	logger       *zap.Logger
	showProgress bool
}

func NewSolver(c *cache.Cache, logger *zap.Logger, showProgress bool) *Solver {
	return &Solver{cache: c, logger: logger, showProgress: showProgress}
}

// Solve builds both trees from the file at path and returns their answer.
func (s *Solver) Solve(path string, policy tangle.Policy) (Solution, error) {
	input, err := readPuzzleInput(path)
	if err != nil {
		return Solution{}, err
	}
	return s.SolveInput(input, policy)
}

func (s *Solver) SolveInput(input *PuzzleInput, policy tangle.Policy) (Solution, error) {
	key := solutionKey(input.Data, policy)
	if sol, ok := GetSolution(s.cache, key); ok {
		s.logger.Debug("Reusing cached answer", zap.String("input", input.Path), zap.String("key", key))
		sol.Input = input.Path
		sol.Cached = true
		return sol, nil
	}

	pair, err := s.Build(input, policy)
	if err != nil {
		return Solution{}, err
	}

	sol := Solution{
		Input:  input.Path,
		Policy: policy,
		Answer: pair.Answer(),
		Left:   pair.Left().Levels(),
		Right:  pair.Right().Levels(),
	}
	CacheSolution(s.cache, key, sol)

	s.logger.Debug("Solved input",
		zap.String("input", input.Path),
		zap.Stringer("policy", policy),
		zap.Int("commands", len(input.Commands)),
		zap.String("answer", sol.Answer))
	return sol, nil
}

// Build returns the tree pair for input without consulting the cache
func (s *Solver) Build(input *PuzzleInput, policy tangle.Policy) (*tangle.Pair, error) {
	opts := []tangle.Option{tangle.WithLogger(s.logger)}
	if s.showProgress {
		bar := newCommandBar(len(input.Commands), "🌳 Applying commands...")
		defer bar.Finish()
		opts = append(opts, tangle.WithObserver(func(tangle.Command) {
			_ = bar.Add(1)
		}))
	}

	pair := tangle.NewPair(policy, opts...)
	if err := pair.ApplyAll(input.Commands); err != nil {
		return nil, fmt.Errorf("%s: %w", input.Path, err)
	}
	return pair, nil
}
