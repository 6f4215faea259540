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
	"strings"
)

// Policy selects how SWAP commands are applied. A run uses one policy
// throughout.
type Policy int

const (
	// PolicyAddOnly rejects every SWAP.
	PolicyAddOnly Policy = iota
	// PolicyNode exchanges the content of the two nodes carrying an id.
	PolicyNode
	// PolicySubtree exchanges the whole subtrees rooted at those nodes.
	PolicySubtree
)

var policyNames = map[Policy]string{
	PolicyAddOnly: "none",
	PolicyNode:    "node",
	PolicySubtree: "subtree",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps "none", "node" or "subtree" (any case) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}
	return PolicyAddOnly, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

func (p Policy) MarshalText() ([]byte, error) {
	if _, ok := policyNames[p]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(p))
	}
	return []byte(p.String()), nil
}

func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Set and Type let a Policy be used directly as a command-line flag value.
func (p *Policy) Set(s string) error {
	return p.UnmarshalText([]byte(s))
}

func (p *Policy) Type() string {
	return "policy"
}
