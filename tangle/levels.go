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

// Levels groups the symbols of the tree by depth, root first. Within a depth
// symbols appear left to right.
func (t *Tree) Levels() []string {
	var buckets [][]rune
	t.walk(func(_ int, depth int, n Node) {
		if depth >= len(buckets) {
			buckets = append(buckets, make([][]rune, depth+1-len(buckets))...)
		}
		buckets[depth] = append(buckets[depth], n.Symbol)
	})

	levels := make([]string, len(buckets))
	for depth, bucket := range buckets {
		levels[depth] = string(bucket)
	}
	return levels
}

// WidestLevel returns the level holding the most symbols. Only a strictly
// longer level replaces the current best, so ties go to the shallower depth.
func (t *Tree) WidestLevel() string {
	_, widest := t.widest()
	return widest
}

// WidestDepth returns the depth reported by WidestLevel, or -1 for an empty tree.
func (t *Tree) WidestDepth() int {
	depth, _ := t.widest()
	return depth
}

func (t *Tree) widest() (int, string) {
	return WidestOf(t.Levels())
}

// WidestOf picks the first strictly longest of levels and returns its depth,
// or -1 when levels is empty.
func WidestOf(levels []string) (int, string) {
	best, bestLen := -1, -1
	for depth, level := range levels {
		if n := len([]rune(level)); n > bestLen {
			best, bestLen = depth, n
		}
	}
	if best < 0 {
		return -1, ""
	}
	return best, levels[best]
}
