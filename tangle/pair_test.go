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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioInput = `ADD ID=1 A[2,X] B[2,Y]
ADD ID=2 A[1,Z] B[3,W]
ADD ID=3 A[3,Q] B[1,R]
`

// migrationInput ends with id 3 present twice in the right tree:
//
//	left            right               after SWAP 2
//	  A(10)           a(10)             left      right
//	  /                 / \             A(10)      a(10)
//	B(5)            b(5)  c(15)          /          /  \
//	 /                                 b(5)      B(5)  c(15)
//	C(3)                                          /
//	                                            C(3)
const migrationInput = `ADD ID=1 [10,A] [10,a]
ADD ID=2 [5,B] [5,b]
ADD ID=3 [3,C] [15,c]
SWAP 2
`

func build(t *testing.T, input string, policy Policy, opts ...Option) *Pair {
	t.Helper()
	p, err := Build(strings.NewReader(input), policy, opts...)
	require.NoError(t, err)
	return p
}

func apply(t *testing.T, p *Pair, line string) {
	t.Helper()
	cmd, err := ParseCommand(line)
	require.NoError(t, err)
	require.NoError(t, p.Apply(cmd))
}

func TestBuildScenario(t *testing.T) {
	p := build(t, scenarioInput, PolicyNode)

	assert.Equal(t, []string{"X", "ZQ"}, p.Left().Levels())
	assert.Equal(t, []string{"Y", "RW"}, p.Right().Levels())
	assert.Equal(t, "ZQRW", p.Answer())
}

func TestNodeSwapKeepsShape(t *testing.T) {
	p := build(t, scenarioInput, PolicyNode)
	leftShape, rightShape := positions(p.Left()), positions(p.Right())

	apply(t, p, "SWAP 2")

	assert.Equal(t, leftShape, positions(p.Left()))
	assert.Equal(t, rightShape, positions(p.Right()))
	assert.Equal(t, []string{"X", "WQ"}, p.Left().Levels())
	assert.Equal(t, []string{"Y", "RZ"}, p.Right().Levels())
	assert.Equal(t, "WQRZ", p.Answer())

	n, _ := p.Left().At(1)
	assert.Equal(t, NewNode(2, 3, 'W'), n)
}

func TestSubtreeSwapCrossTree(t *testing.T) {
	p := build(t, migrationInput, PolicySubtree)

	assert.Equal(t, []int{0, 1}, positions(p.Left()))
	assert.Equal(t, []int{0, 1, 2, 3}, positions(p.Right()))
	assert.Equal(t, []string{"A", "b"}, p.Left().Levels())
	assert.Equal(t, []string{"a", "Bc", "C"}, p.Right().Levels())
	assert.Len(t, p.Right().FindByID(3), 2)
	assert.Empty(t, p.Left().FindByID(3))
}

func TestSubtreeSwapWithinRightTree(t *testing.T) {
	p := build(t, migrationInput, PolicySubtree)
	leftBefore := p.Left().Clone()

	apply(t, p, "SWAP 3")

	if diff := cmp.Diff(leftBefore.Entries(), p.Left().Entries()); diff != "" {
		t.Errorf("left tree changed (-want +got):\n%s", diff)
	}
	assert.Equal(t, leftBefore.Len(), p.Left().Len())

	c, _ := p.Right().At(2)
	assert.Equal(t, 'C', c.Symbol)
	c, _ = p.Right().At(3)
	assert.Equal(t, 'c', c.Symbol)
	assert.Equal(t, []string{"a", "BC", "c"}, p.Right().Levels())
	assert.Equal(t, "ABC", p.Answer())
}

func TestSubtreeSwapWithinLeftTree(t *testing.T) {
	// mirror of the migration input with sides exchanged
	input := `ADD ID=1 [10,a] [10,A]
ADD ID=2 [5,b] [5,B]
ADD ID=3 [15,c] [3,C]
SWAP 2
SWAP 3
`
	p := build(t, input, PolicySubtree)
	assert.Equal(t, []string{"a", "BC", "c"}, p.Left().Levels())
	assert.Equal(t, []string{"A", "b"}, p.Right().Levels())
}

func TestSubtreeSwapIsSelfInverse(t *testing.T) {
	input := `ADD ID=1 [10,A] [10,a]
ADD ID=2 [5,B] [20,b]
ADD ID=3 [3,C] [25,c]
ADD ID=4 [7,D] [15,d]
ADD ID=5 [12,E] [4,e]
`
	for _, id := range []string{"2", "3", "4", "5"} {
		p := build(t, input, PolicySubtree)
		left, right := p.Left().Clone(), p.Right().Clone()

		apply(t, p, "SWAP "+id)
		apply(t, p, "SWAP "+id)

		if diff := cmp.Diff(left.Entries(), p.Left().Entries()); diff != "" {
			t.Errorf("SWAP %s twice changed left tree (-want +got):\n%s", id, diff)
		}
		if diff := cmp.Diff(right.Entries(), p.Right().Entries()); diff != "" {
			t.Errorf("SWAP %s twice changed right tree (-want +got):\n%s", id, diff)
		}
	}
}

func TestEveryIDHasTwoNodes(t *testing.T) {
	input := `ADD ID=1 [10,A] [10,a]
ADD ID=2 [5,B] [5,b]
ADD ID=3 [3,C] [15,c]
SWAP 2
ADD ID=4 [12,D] [2,d]
SWAP 3
SWAP 1
ADD ID=5 [8,E] [9,e]
SWAP 4
SWAP 5
`
	var added []uint64
	var p *Pair
	check := func(cmd Command) {
		if cmd.Op == OpAdd {
			added = append(added, cmd.ID)
		}
		for _, id := range added {
			assert.Equal(t, 2, p.CountID(id), "id %d after %v", id, cmd)
		}
	}

	commands, err := ParseCommands(strings.NewReader(input))
	require.NoError(t, err)
	p = NewPair(PolicySubtree, WithObserver(check))
	require.NoError(t, p.ApplyAll(commands))
	assert.Len(t, added, 5)
}

func TestPairErrors(t *testing.T) {
	t.Run("rank collision", func(t *testing.T) {
		_, err := Build(strings.NewReader("ADD ID=1 [1,A] [1,a]\nADD ID=2 [1,B] [2,b]\n"), PolicyNode)
		require.ErrorIs(t, err, ErrRankCollision)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := Build(strings.NewReader("ADD ID=1 [1,A] [1,a]\nADD ID=1 [2,B] [2,b]\n"), PolicyNode)
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := Build(strings.NewReader("ADD ID=1 [1,A] [1,a]\nSWAP 9\n"), PolicySubtree)
		assert.ErrorIs(t, err, ErrIDConsistency)
	})

	t.Run("swap disabled", func(t *testing.T) {
		_, err := Build(strings.NewReader("ADD ID=1 [1,A] [1,a]\nSWAP 1\n"), PolicyAddOnly)
		assert.ErrorIs(t, err, ErrSwapDisabled)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Build(strings.NewReader("ADD ID=1 [1,A] [1,a]\nSWAP\n"), PolicyNode)
		assert.ErrorIs(t, err, ErrMalformedCommand)
	})

	t.Run("three instances", func(t *testing.T) {
		p := NewPair(PolicySubtree)
		require.NoError(t, p.left.Insert(NewNode(7, 10, 'A')))
		require.NoError(t, p.right.Insert(NewNode(7, 10, 'a')))
		require.NoError(t, p.right.Insert(NewNode(7, 5, 'b')))
		p.seen.AddString(idKey(7))

		err := p.Apply(Command{Op: OpSwap, ID: 7})
		assert.ErrorIs(t, err, ErrIDConsistency)
	})

	t.Run("nested subtrees", func(t *testing.T) {
		p := NewPair(PolicySubtree)
		require.NoError(t, p.left.Insert(NewNode(1, 10, 'A')))
		require.NoError(t, p.right.Insert(NewNode(7, 10, 'a')))
		require.NoError(t, p.right.Insert(NewNode(1, 5, 'b')))
		require.NoError(t, p.right.Insert(NewNode(7, 3, 'c')))
		p.seen.AddString(idKey(7))

		err := p.Apply(Command{Op: OpSwap, ID: 7})
		assert.ErrorIs(t, err, ErrNestedSubtrees)
	})
}

func TestIsAncestor(t *testing.T) {
	//          0
	//       /     \
	//      1       2
	//     / \     / \
	//    3   4   5   6
	assert.True(t, isAncestor(0, 6))
	assert.True(t, isAncestor(1, 4))
	assert.True(t, isAncestor(1, 9))
	assert.True(t, isAncestor(3, 3))
	assert.False(t, isAncestor(2, 3))
	assert.False(t, isAncestor(1, 5))
	assert.False(t, isAncestor(4, 3))
}
