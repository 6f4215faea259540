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

// Node is one entry of an indexed tree. Rank decides placement, ID pairs the
// node with its twin in the other tree.
type Node struct {
	ID     uint64
	Rank   uint64
	Symbol rune
}

func NewNode(id, rank uint64, symbol rune) Node {
	return Node{ID: id, Rank: rank, Symbol: symbol}
}

func (n Node) String() string {
	return fmt.Sprintf("{id:%d rank:%d symbol:%q}", n.ID, n.Rank, n.Symbol)
}

// Entry is a node copy together with the position it occupies.
type Entry struct {
	Node Node
	Pos  int
}
