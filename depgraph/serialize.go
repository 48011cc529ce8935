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

import "sort"

// Serialize renders the graph back into ".deps" lines: one line per edge
// ("from -> to"), sorted by (From, To), followed by one line per node that
// has neither incoming nor outgoing edges, sorted by name. Together with
// ParseDeps this satisfies the round-trip requirement in §6: parsing the
// result yields an equivalent graph.
func (g *Graph) Serialize() []string {
	edges := g.Edges()
	lines := make([]string, 0, len(edges))
	for _, e := range edges {
		lines = append(lines, e.From+" -> "+e.To)
	}

	var isolated []string
	for _, name := range g.names {
		if g.InDegree(name) == 0 && g.OutDegree(name) == 0 {
			isolated = append(isolated, name)
		}
	}
	sort.Strings(isolated)
	lines = append(lines, isolated...)
	return lines
}
