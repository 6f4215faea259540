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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Tangler %s**

Solves the "tangled trees" puzzle: two binary trees grow from one command
stream, get tangled by swaps, and the answer is read from their widest levels.

Built with Go %s

# 1. Input
Plain text, one command per line.

* ADD ID=<id> left=[<rank>,<symbol>] right=[<rank>,<symbol>]
* SWAP <id>

Any other command, a missing field or a bad number aborts the run.

# 2. Swap policies
* none: SWAP is rejected
* node: the two nodes carrying the id trade places, trees keep their shape
* subtree: the whole subtrees under those nodes trade places, even when both ended up in the same tree

# 3. Commands
* solve FILE: print the answer for one file
* quest: solve every part listed in ~/.tangler.yaml
* levels FILE: show every level of both trees
* step FILE: walk through the commands one at a time
* settings: show or create ~/.tangler.yaml

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
