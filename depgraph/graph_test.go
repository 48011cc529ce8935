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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGraphAddNodeIdempotent(t *testing.T) {
	g := New()
	a := g.AddNode("a")
	a2 := g.AddNode("a")
	if a != a2 {
		t.Errorf("AddNode(a) twice gave different NodeIDs: %v, %v", a, a2)
	}
	if got := g.NodeCount(); got != 1 {
		t.Errorf("NodeCount() = %d, want 1", got)
	}
}

func TestGraphDegrees(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("a", "c")
	g.AddEdge("b", "c")

	if got := g.OutDegree("a"); got != 2 {
		t.Errorf("OutDegree(a) = %d, want 2", got)
	}
	if got := g.InDegree("c"); got != 2 {
		t.Errorf("InDegree(c) = %d, want 2", got)
	}
	if diff := cmp.Diff([]string{"b", "c"}, g.OutNeighbors("a")); diff != "" {
		t.Errorf("OutNeighbors(a) mismatch (-want +got):\n%s", diff)
	}
}

func TestGraphSetsForDiff(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddNode("z")

	nodes := g.NodeSet()
	if !nodes["a"] || !nodes["b"] || !nodes["z"] {
		t.Errorf("NodeSet() = %v, missing expected entries", nodes)
	}
	edges := g.EdgeSet()
	if !edges[Edge{From: "a", To: "b"}] {
		t.Errorf("EdgeSet() = %v, missing a->b", edges)
	}
}

func TestEdgeLess(t *testing.T) {
	if !(Edge{From: "a", To: "z"}).Less(Edge{From: "b", To: "a"}) {
		t.Errorf("expected a->z to sort before b->a")
	}
	if !(Edge{From: "a", To: "a"}).Less(Edge{From: "a", To: "b"}) {
		t.Errorf("expected a->a to sort before a->b")
	}
}
