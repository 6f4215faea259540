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
	"hash/fnv"
	"time"

	"github.com/cybrota/tangler/tangle"
	"github.com/patrickmn/go-cache"
)

const (
	// Answers only need to outlive one CLI invocation
	solutionCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	solutionCacheCleanup = 5 * time.Minute
)

// NewSolutionCache creates a cache for solved inputs
func NewSolutionCache() *cache.Cache {
	return cache.New(solutionCacheExpiration, solutionCacheCleanup)
}

// solutionKey identifies an input by content and policy, so the same file
// reached through different paths is solved once.
func solutionKey(data []byte, policy tangle.Policy) string {
	h := fnv.New64a()
	h.Write(data)
	return fmt.Sprintf("%016x/%s", h.Sum64(), policy)
}

func CacheSolution(c *cache.Cache, key string, sol Solution) {
	c.Set(key, sol, solutionCacheExpiration)
}

func GetSolution(c *cache.Cache, key string) (Solution, bool) {
	val, ok := c.Get(key)
	if !ok {
		return Solution{}, false
	}
	sol, ok := val.(Solution)
	return sol, ok
}
