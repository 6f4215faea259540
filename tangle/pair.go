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
	"fmt"
	"io"
	"strconv"

	"github.com/willf/bloom"
	"go.uber.org/zap"
)

const (
	// Sizing of the introduced-id filter. Puzzle inputs hold a few hundred ids.
	expectedIDs       = 4096
	falsePositiveRate = 0.001
)

// Pair is the left and right tree built from one command stream.
//
// Every id ever added exists in exactly two nodes summed over both trees.
// Subtree swaps may leave both of them in the same tree.
type Pair struct {
	left   *Tree
	right  *Tree
	policy Policy

	// seen holds every id added so far. A negative test proves the id was
	// never introduced.
	seen *bloom.BloomFilter

	logger  *zap.Logger
	observe func(Command)
}

// Option configures a Pair.
type Option func(*Pair)

func WithLogger(logger *zap.Logger) Option {
	return func(p *Pair) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithObserver registers fn to be called after each successfully applied command.
func WithObserver(fn func(Command)) Option {
	return func(p *Pair) {
		p.observe = fn
	}
}

func NewPair(policy Policy, opts ...Option) *Pair {
	p := &Pair{
		left:   NewTree(),
		right:  NewTree(),
		policy: policy,
		seen:   bloom.NewWithEstimates(expectedIDs, falsePositiveRate),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Build applies every command of r to a new Pair, strictly in order. The
// first failure aborts the build.
func Build(r io.Reader, policy Policy, opts ...Option) (*Pair, error) {
	p := NewPair(policy, opts...)
	err := scanCommands(r, func(_ int, cmd Command) error {
		return p.Apply(cmd)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ApplyAll applies already parsed commands in order.
func (p *Pair) ApplyAll(commands []Command) error {
	for i, cmd := range commands {
		if err := p.Apply(cmd); err != nil {
			return fmt.Errorf("command %d (%v): %w", i+1, cmd, err)
		}
	}
	return nil
}

func (p *Pair) Apply(cmd Command) error {
	var err error
	switch cmd.Op {
	case OpAdd:
		err = p.add(cmd)
	case OpSwap:
		err = p.swap(cmd.ID)
	default:
		err = fmt.Errorf("%w: %v", ErrMalformedCommand, cmd.Op)
	}
	if err != nil {
		return err
	}
	if p.observe != nil {
		p.observe(cmd)
	}
	return nil
}

func (p *Pair) Left() *Tree {
	return p.left
}

func (p *Pair) Right() *Tree {
	return p.right
}

func (p *Pair) Policy() Policy {
	return p.policy
}

// Answer concatenates the widest levels of the left and right trees.
func (p *Pair) Answer() string {
	return p.left.WidestLevel() + p.right.WidestLevel()
}

// CountID counts the nodes carrying id across both trees.
func (p *Pair) CountID(id uint64) int {
	return len(p.left.FindByID(id)) + len(p.right.FindByID(id))
}

func idKey(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func (p *Pair) add(cmd Command) error {
	key := idKey(cmd.ID)
	if p.seen.TestString(key) && p.CountID(cmd.ID) > 0 {
		return fmt.Errorf("%w: %d", ErrDuplicateID, cmd.ID)
	}

	if err := p.left.Insert(NewNode(cmd.ID, cmd.Left.Rank, cmd.Left.Symbol)); err != nil {
		return fmt.Errorf("left tree: %w", err)
	}
	if err := p.right.Insert(NewNode(cmd.ID, cmd.Right.Rank, cmd.Right.Symbol)); err != nil {
		return fmt.Errorf("right tree: %w", err)
	}
	p.seen.AddString(key)
	return nil
}

func (p *Pair) swap(id uint64) error {
	if p.policy == PolicyAddOnly {
		return fmt.Errorf("%w: SWAP %d under policy %v", ErrSwapDisabled, id, p.policy)
	}
	if !p.seen.TestString(idKey(id)) {
		return fmt.Errorf("%w: id %d was never added", ErrIDConsistency, id)
	}

	inLeft := p.left.FindByID(id)
	inRight := p.right.FindByID(id)

	switch p.policy {
	case PolicyNode:
		return p.swapNodes(id, inLeft, inRight)
	case PolicySubtree:
		return p.swapSubtrees(id, inLeft, inRight)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownPolicy, p.policy)
	}
}

// swapNodes exchanges node content between the first match on each side.
// Tree shapes are untouched.
func (p *Pair) swapNodes(id uint64, inLeft, inRight []Entry) error {
	if len(inLeft) == 0 || len(inRight) == 0 {
		return fmt.Errorf("%w: id %d has %d left and %d right nodes", ErrIDConsistency, id, len(inLeft), len(inRight))
	}
	l, r := inLeft[0], inRight[0]
	p.left.set(l.Pos, r.Node)
	p.right.set(r.Pos, l.Node)

	p.logger.Debug("node swap",
		zap.Uint64("id", id),
		zap.Int("left_pos", l.Pos),
		zap.Int("right_pos", r.Pos))
	return nil
}

// swapSubtrees exchanges the subtrees rooted at the two nodes carrying id.
// Both nodes may live in the same tree after earlier swaps, in which case the
// exchange happens inside that tree and the other one is left alone.
func (p *Pair) swapSubtrees(id uint64, inLeft, inRight []Entry) error {
	switch {
	case len(inLeft) == 1 && len(inRight) == 1:
		lp, rp := inLeft[0].Pos, inRight[0].Pos
		leftSub, err := p.left.Extract(lp)
		if err != nil {
			return err
		}
		rightSub, err := p.right.Extract(rp)
		if err != nil {
			return err
		}
		p.left.Plant(lp, rightSub)
		p.right.Plant(rp, leftSub)

		p.logger.Debug("subtree swap",
			zap.Uint64("id", id),
			zap.String("case", "cross"),
			zap.Int("left_pos", lp),
			zap.Int("right_pos", rp))
		return nil

	case len(inLeft) == 0 && len(inRight) == 2:
		return p.swapWithin(p.right, "right", id, inRight[0].Pos, inRight[1].Pos)

	case len(inLeft) == 2 && len(inRight) == 0:
		return p.swapWithin(p.left, "left", id, inLeft[0].Pos, inLeft[1].Pos)

	default:
		return fmt.Errorf("%w: id %d has %d left and %d right nodes", ErrIDConsistency, id, len(inLeft), len(inRight))
	}
}

// swapWithin exchanges the subtrees at a and b of the same tree, a < b.
func (p *Pair) swapWithin(t *Tree, side string, id uint64, a, b int) error {
	if isAncestor(a, b) {
		return fmt.Errorf("%w: id %d at %d and %d in %s tree", ErrNestedSubtrees, id, a, b, side)
	}
	subA, err := t.Extract(a)
	if err != nil {
		return err
	}
	subB, err := t.Extract(b)
	if err != nil {
		return err
	}
	t.Plant(a, subB)
	t.Plant(b, subA)

	p.logger.Debug("subtree swap",
		zap.Uint64("id", id),
		zap.String("case", side),
		zap.Int("first_pos", a),
		zap.Int("second_pos", b))
	return nil
}

// isAncestor reports whether position a lies on the path from the root to b.
func isAncestor(a, b int) bool {
	for b > a {
		b = (b - 1) / 2
	}
	return a == b
}
