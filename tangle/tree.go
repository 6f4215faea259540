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

import "fmt"

// Tree is a binary search tree embedded in a slice. Position 0 is the root
// and the children of position p live at 2p+1 and 2p+2, so subtrees can be
// cut out and grafted elsewhere by rewriting positions alone.
//
// The zero value is an empty tree.
type Tree struct {
	slots []*Node
}

func NewTree() *Tree {
	return &Tree{}
}

func leftChild(pos int) int {
	return 2*pos + 1
}

func rightChild(pos int) int {
	return 2*pos + 2
}

// Insert places node at the first vacant position on its rank search path.
func (t *Tree) Insert(node Node) error {
	pos := 0
	for t.Has(pos) {
		resident := t.slots[pos]
		switch {
		case node.Rank < resident.Rank:
			pos = leftChild(pos)
		case node.Rank > resident.Rank:
			pos = rightChild(pos)
		default:
			return fmt.Errorf("%w: %v meets %v at position %d", ErrRankCollision, node, *resident, pos)
		}
	}
	t.set(pos, node)
	return nil
}

// FindByID scans every occupied position for id. Ids are not placement keys
// and may appear twice in one tree after subtree swaps, so there is no
// shortcut through the ordering.
func (t *Tree) FindByID(id uint64) []Entry {
	var found []Entry
	for pos, n := range t.slots {
		if n != nil && n.ID == id {
			found = append(found, Entry{Node: *n, Pos: pos})
		}
	}
	return found
}

// Extract removes the subtree rooted at pos and returns it renumbered so its
// root sits at position 0.
func (t *Tree) Extract(pos int) (*Tree, error) {
	if !t.Has(pos) {
		return nil, fmt.Errorf("%w: extract at %d", ErrVacantPosition, pos)
	}
	sub := NewTree()
	t.moveSubtree(pos, sub, 0)
	return sub, nil
}

// Plant grafts sub so that its root lands on pos. Destination slots are
// overwritten; callers only plant into positions vacated by Extract. sub is
// left empty.
func (t *Tree) Plant(pos int, sub *Tree) {
	if !sub.Has(0) {
		return
	}
	sub.moveSubtree(0, t, pos)
}

// moveSubtree moves the subtree rooted at src in t onto dst in out, keeping
// its shape.
func (t *Tree) moveSubtree(src int, out *Tree, dst int) {
	if t.Has(leftChild(src)) {
		t.moveSubtree(leftChild(src), out, leftChild(dst))
	}

	out.grow(dst)
	out.slots[dst] = t.slots[src]
	t.slots[src] = nil

	if t.Has(rightChild(src)) {
		t.moveSubtree(rightChild(src), out, rightChild(dst))
	}
}

func (t *Tree) grow(pos int) {
	if pos >= len(t.slots) {
		t.slots = append(t.slots, make([]*Node, pos+1-len(t.slots))...)
	}
}

func (t *Tree) set(pos int, node Node) {
	t.grow(pos)
	t.slots[pos] = &node
}

// Has reports whether pos holds a node.
func (t *Tree) Has(pos int) bool {
	return pos >= 0 && pos < len(t.slots) && t.slots[pos] != nil
}

// At returns a copy of the node at pos.
func (t *Tree) At(pos int) (Node, bool) {
	if !t.Has(pos) {
		return Node{}, false
	}
	return *t.slots[pos], true
}

// Len is the extent of the backing storage. It never shrinks.
func (t *Tree) Len() int {
	return len(t.slots)
}

// Size counts occupied positions.
func (t *Tree) Size() int {
	size := 0
	for _, n := range t.slots {
		if n != nil {
			size++
		}
	}
	return size
}

// Entries lists every occupied position in ascending order.
func (t *Tree) Entries() []Entry {
	entries := make([]Entry, 0, len(t.slots))
	for pos, n := range t.slots {
		if n != nil {
			entries = append(entries, Entry{Node: *n, Pos: pos})
		}
	}
	return entries
}

// InOrder returns the nodes reachable from the root, left to right.
func (t *Tree) InOrder() []Node {
	var nodes []Node
	t.walk(func(_ int, _ int, n Node) {
		nodes = append(nodes, n)
	})
	return nodes
}

// Clone returns a deep copy of t.
func (t *Tree) Clone() *Tree {
	c := &Tree{slots: make([]*Node, len(t.slots))}
	for pos, n := range t.slots {
		if n != nil {
			node := *n
			c.slots[pos] = &node
		}
	}
	return c
}

// walk visits the nodes reachable from the root in order, passing each one's
// position and depth.
func (t *Tree) walk(visit func(pos, depth int, n Node)) {
	if t.Has(0) {
		t.walkFrom(0, 0, visit)
	}
}

func (t *Tree) walkFrom(pos, depth int, visit func(pos, depth int, n Node)) {
	if t.Has(leftChild(pos)) {
		t.walkFrom(leftChild(pos), depth+1, visit)
	}
	visit(pos, depth, *t.slots[pos])
	if t.Has(rightChild(pos)) {
		t.walkFrom(rightChild(pos), depth+1, visit)
	}
}
