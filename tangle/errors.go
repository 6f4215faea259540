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

import "errors"

// Parse errors
var (
	// ErrMalformedCommand indicates an input line that is not a valid ADD or SWAP command.
	ErrMalformedCommand = errors.New("tangle: malformed command")

	// ErrUnknownPolicy indicates a swap policy name that is not recognised.
	ErrUnknownPolicy = errors.New("tangle: unknown swap policy")
)

// Tree errors
var (
	// ErrRankCollision indicates an insert whose rank equals a rank already on the search path.
	ErrRankCollision = errors.New("tangle: rank collision")

	// ErrVacantPosition indicates a subtree operation rooted at an unoccupied position.
	ErrVacantPosition = errors.New("tangle: position is vacant")
)

// Pair errors
var (
	// ErrIDConsistency indicates an id whose instances no longer follow the
	// one-per-tree or two-in-one-tree patterns.
	ErrIDConsistency = errors.New("tangle: id consistency violation")

	// ErrNestedSubtrees indicates a swap between a subtree and one of its own descendants.
	ErrNestedSubtrees = errors.New("tangle: subtrees are nested")

	// ErrDuplicateID indicates an ADD reusing an id that was already introduced.
	ErrDuplicateID = errors.New("tangle: duplicate id")

	ErrSwapDisabled = errors.New("tangle: swap not permitted by policy")
)
