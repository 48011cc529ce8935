// Copyright 2023 Google LLC
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

package depgraph

import (
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedInput reports a single ".deps" line that matched neither the
// isolated-node nor the chained-edge grammar in §4.1.
type ErrMalformedInput struct {
	Line string
}

func (e *ErrMalformedInput) Error() string {
	return fmt.Sprintf("malformed input: %q", e.Line)
}

// lineRE matches the full ".deps" line grammar:
//
//	line := name ( " -> " name )*
//	name := one or more non-whitespace characters
var lineRE = regexp.MustCompile(`^(\S+)((?: -> \S+)*)$`)

// ParseDeps parses a finite ordered sequence of ".deps" text lines into a
// Graph. Blank lines are ignored. A single-name line introduces an isolated
// node. A chain "a -> b -> c" introduces the edges (a,b) and (b,c), not a
// fan-out from a. Lines matching neither grammar form return
// *ErrMalformedInput carrying the offending line.
func ParseDeps(lines []string) (*Graph, error) {
	g := New()
	for _, raw := range lines {
		line := strings.TrimRight(raw, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := lineRE.FindStringSubmatch(line)
		if m == nil {
			return nil, &ErrMalformedInput{Line: line}
		}
		head, chain := m[1], m[2]
		if chain == "" {
			g.AddNode(head)
			continue
		}
		names := append([]string{head}, strings.Split(strings.TrimPrefix(chain, " -> "), " -> ")...)
		for i := 0; i+1 < len(names); i++ {
			g.AddEdge(names[i], names[i+1])
		}
	}
	return g, nil
}
