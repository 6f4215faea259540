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
	"testing"
	"time"

	"github.com/cybrota/tangler/tangle"
	"github.com/patrickmn/go-cache"
)

func TestCacheSolutionAndGetSolution(t *testing.T) {
	c := NewSolutionCache()
	key := solutionKey([]byte("ADD ID=1 [1,A] [1,B]\n"), tangle.PolicyNode)
	sol := Solution{Answer: "AB", Policy: tangle.PolicyNode}

	// Initially, GetSolution should report a miss.
	if _, ok := GetSolution(c, key); ok {
		t.Errorf("GetSolution(%q) hit on an empty cache", key)
	}

	CacheSolution(c, key, sol)

	got, ok := GetSolution(c, key)
	if !ok || got.Answer != "AB" {
		t.Errorf("GetSolution(%q) = %+v, %v; want answer AB", key, got, ok)
	}
}

func TestSolutionKeyDependsOnPolicyAndContent(t *testing.T) {
	data := []byte("ADD ID=1 [1,A] [1,B]\n")
	node := solutionKey(data, tangle.PolicyNode)
	subtree := solutionKey(data, tangle.PolicySubtree)
	other := solutionKey([]byte("ADD ID=2 [1,A] [1,B]\n"), tangle.PolicyNode)

	if node == subtree {
		t.Errorf("keys for node and subtree policy collide: %q", node)
	}
	if node == other {
		t.Errorf("keys for different inputs collide: %q", node)
	}
	if node != solutionKey(append([]byte(nil), data...), tangle.PolicyNode) {
		t.Errorf("key is not stable for identical content")
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	key := "expiring"

	c.Set(key, Solution{Answer: "XY"}, 100*time.Millisecond)

	if got, ok := GetSolution(c, key); !ok || got.Answer != "XY" {
		t.Errorf("GetSolution(%q) = %+v, %v; want XY", key, got, ok)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if _, ok := GetSolution(c, key); ok {
		t.Errorf("After expiration, GetSolution(%q) still hits", key)
	}
}
