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

package diff

import (
	"testing"

	"github.com/depscope/graphdiff/depgraph"
	"github.com/depscope/graphdiff/gradle"
	"github.com/google/go-cmp/cmp"
)

func mustGraph(t *testing.T, edges ...[2]string) *depgraph.Graph {
	t.Helper()
	g := depgraph.New()
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}

func TestCompareDirectChanges(t *testing.T) {
	before := mustGraph(t, [2]string{"a", "b"})
	after := mustGraph(t, [2]string{"a", "c"})

	got := Compare(before, after, DefaultOptions())

	wantNodes := []string{"a", "b", "c"}
	if diff := cmp.Diff(wantNodes, got.Graph.Nodes()); diff != "" {
		t.Errorf("Nodes mismatch (-want +got):\n%s", diff)
	}
	wantEdges := []depgraph.Edge{{From: "a", To: "b"}, {From: "a", To: "c"}}
	if diff := cmp.Diff(wantEdges, got.Graph.Edges()); diff != "" {
		t.Errorf("Edges mismatch (-want +got):\n%s", diff)
	}
	if got.EdgeAttr("a", "c").Kind != EdgeNew {
		t.Errorf("a->c Kind = %v, want EdgeNew", got.EdgeAttr("a", "c").Kind)
	}
	if got.EdgeAttr("a", "b").Kind != EdgeOld {
		t.Errorf("a->b Kind = %v, want EdgeOld", got.EdgeAttr("a", "b").Kind)
	}
	if !got.NodeAttr("c").New {
		t.Error("c.New = false, want true")
	}
	if !got.NodeAttr("b").Old {
		t.Error("b.Old = false, want true")
	}
	if a := got.NodeAttr("a"); a.New || a.Old || a.Transitive {
		t.Errorf("a attrs = %+v, want all flags false", a)
	}
}

// TestCompareTransitiveContext exercises a node pair (a, b) that each
// become visible for unrelated reasons (a new edge out of a, an old edge
// into b) while the only path between them in "after" runs through two
// nodes, x and y, that are otherwise untouched by the delta. With
// ShortestTransitivePath enabled, x, y and the three edges connecting a to
// b through them are pulled in as context.
func TestCompareTransitiveContext(t *testing.T) {
	before := mustGraph(t,
		[2]string{"a", "x"}, [2]string{"x", "y"}, [2]string{"y", "b"}, [2]string{"m", "b"})
	after := mustGraph(t,
		[2]string{"a", "x"}, [2]string{"x", "y"}, [2]string{"y", "b"}, [2]string{"a", "n"})

	opts := DefaultOptions()
	opts.ShortestTransitivePath = true
	got := Compare(before, after, opts)

	wantNodes := []string{"a", "b", "m", "n", "x", "y"}
	if diff := cmp.Diff(wantNodes, got.Graph.Nodes()); diff != "" {
		t.Errorf("Nodes mismatch (-want +got):\n%s", diff)
	}
	wantEdges := []depgraph.Edge{
		{From: "a", To: "n"}, {From: "a", To: "x"},
		{From: "m", To: "b"}, {From: "x", To: "y"}, {From: "y", To: "b"},
	}
	if diff := cmp.Diff(wantEdges, got.Graph.Edges()); diff != "" {
		t.Errorf("Edges mismatch (-want +got):\n%s", diff)
	}

	for _, tc := range []struct {
		from, to string
		want     EdgeKind
	}{
		{"a", "n", EdgeNew},
		{"m", "b", EdgeOld},
		{"a", "x", EdgeTransitive},
		{"x", "y", EdgeTransitive},
		{"y", "b", EdgeTransitive},
	} {
		if got := got.EdgeAttr(tc.from, tc.to).Kind; got != tc.want {
			t.Errorf("EdgeAttr(%s,%s).Kind = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
	if !got.NodeAttr("n").New {
		t.Error("n.New = false, want true")
	}
	if !got.NodeAttr("m").Old {
		t.Error("m.Old = false, want true")
	}
	if !got.NodeAttr("x").Transitive || !got.NodeAttr("y").Transitive {
		t.Error("x and y should both be tagged Transitive")
	}
	if b := got.NodeAttr("b"); b.New || b.Old || b.Transitive {
		t.Errorf("b attrs = %+v, want all flags false (b stayed visible for its own reason)", b)
	}
}

// TestCompareTransitiveSkipsAlreadyVisibleSegment pins down the "at least
// one of a,b is not in VisibleNodes" guard in §4.2 Step 3: when every node
// along the shortest a->b path was already visible before Step 3 ran (for
// reasons unrelated to that path), none of the path's edges get promoted to
// EdgeTransitive, even though they aren't yet present in the annotated
// graph. a and b become visible via an unrelated new/old edge each
// (a->c new, d->b new), and p, q become visible via an unrelated old edge
// each (p->m, q->n); the a->p->q->b path itself is unchanged between the
// two snapshots and is left for Step 4 to draw in untagged.
func TestCompareTransitiveSkipsAlreadyVisibleSegment(t *testing.T) {
	before := mustGraph(t,
		[2]string{"p", "m"}, [2]string{"q", "n"},
		[2]string{"a", "p"}, [2]string{"p", "q"}, [2]string{"q", "b"})
	after := mustGraph(t,
		[2]string{"a", "p"}, [2]string{"p", "q"}, [2]string{"q", "b"},
		[2]string{"a", "c"}, [2]string{"d", "b"})

	opts := DefaultOptions()
	opts.ShortestTransitivePath = true
	got := Compare(before, after, opts)

	for _, tc := range []struct{ from, to string }{
		{"a", "p"}, {"p", "q"}, {"q", "b"},
	} {
		attr := got.EdgeAttr(tc.from, tc.to)
		if attr.Kind == EdgeTransitive {
			t.Errorf("EdgeAttr(%s,%s).Kind = EdgeTransitive, want anything else (both endpoints were already visible)", tc.from, tc.to)
		}
	}
	if p := got.NodeAttr("p"); p.Transitive {
		t.Error("p.Transitive = true, want false (p was already visible via p->m)")
	}
	if q := got.NodeAttr("q"); q.Transitive {
		t.Error("q.Transitive = true, want false (q was already visible via q->n)")
	}
}

// TestCompareIndirectSummarization is the same shape as
// TestCompareTransitiveContext but with ShortestTransitivePath left off,
// so the path from a to b through x and y is never drawn in; instead Step
// 5 synthesizes a single a -> b edge carrying the path's length.
func TestCompareIndirectSummarization(t *testing.T) {
	before := mustGraph(t,
		[2]string{"a", "x"}, [2]string{"x", "y"}, [2]string{"y", "b"}, [2]string{"m", "b"})
	after := mustGraph(t,
		[2]string{"a", "x"}, [2]string{"x", "y"}, [2]string{"y", "b"}, [2]string{"a", "n"})

	got := Compare(before, after, DefaultOptions())

	wantNodes := []string{"a", "b", "m", "n"}
	if diff := cmp.Diff(wantNodes, got.Graph.Nodes()); diff != "" {
		t.Errorf("Nodes mismatch (-want +got):\n%s", diff)
	}
	wantEdges := []depgraph.Edge{
		{From: "a", To: "b"}, {From: "a", To: "n"}, {From: "m", To: "b"},
	}
	if diff := cmp.Diff(wantEdges, got.Graph.Edges()); diff != "" {
		t.Errorf("Edges mismatch (-want +got):\n%s", diff)
	}
	attr := got.EdgeAttr("a", "b")
	if attr.Kind != EdgeIndirect {
		t.Fatalf("a->b Kind = %v, want EdgeIndirect", attr.Kind)
	}
	if attr.IndirectDistance != 3 {
		t.Errorf("a->b IndirectDistance = %d, want 3", attr.IndirectDistance)
	}
}

// TestCompareIdenticalGraphsYieldEmptyDelta pins down §8 property 2:
// comparing a graph against itself must produce no visible nodes or edges,
// since nothing changed and nothing needs summarizing.
func TestCompareIdenticalGraphsYieldEmptyDelta(t *testing.T) {
	g := mustGraph(t, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"a", "d"})

	got := Compare(g, g, DefaultOptions())

	if n := got.Graph.NodeCount(); n != 0 {
		t.Errorf("NodeCount() = %d, want 0", n)
	}
	if n := got.Graph.EdgeCount(); n != 0 {
		t.Errorf("EdgeCount() = %d, want 0", n)
	}
}

// TestCompareNewOldEdgeSetsMatchExactly pins down §8 property 3: the tagged
// new/old edge sets equal the exact set-difference between before and
// after, regardless of what else Step 4/5 draw in for context.
func TestCompareNewOldEdgeSetsMatchExactly(t *testing.T) {
	before := mustGraph(t, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "d"})
	after := mustGraph(t, [2]string{"a", "b"}, [2]string{"b", "e"}, [2]string{"c", "d"})

	got := Compare(before, after, DefaultOptions())

	for _, e := range []depgraph.Edge{{From: "b", To: "e"}} {
		if got.EdgeAttr(e.From, e.To).Kind != EdgeNew {
			t.Errorf("EdgeAttr(%s,%s).Kind = %v, want EdgeNew", e.From, e.To, got.EdgeAttr(e.From, e.To).Kind)
		}
	}
	for _, e := range []depgraph.Edge{{From: "b", To: "c"}} {
		if got.EdgeAttr(e.From, e.To).Kind != EdgeOld {
			t.Errorf("EdgeAttr(%s,%s).Kind = %v, want EdgeOld", e.From, e.To, got.EdgeAttr(e.From, e.To).Kind)
		}
	}
	// No edge beyond those set differences carries a new or old tag.
	var gotNew, gotOld []depgraph.Edge
	for _, e := range got.Graph.Edges() {
		switch got.EdgeAttr(e.From, e.To).Kind {
		case EdgeNew:
			gotNew = append(gotNew, e)
		case EdgeOld:
			gotOld = append(gotOld, e)
		}
	}
	if diff := cmp.Diff([]depgraph.Edge{{From: "b", To: "e"}}, gotNew); diff != "" {
		t.Errorf("EdgeNew set mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]depgraph.Edge{{From: "b", To: "c"}}, gotOld); diff != "" {
		t.Errorf("EdgeOld set mismatch (-want +got):\n%s", diff)
	}
	// c->d is unchanged between the two snapshots and must never be
	// tagged new or old.
	if k := got.EdgeAttr("c", "d").Kind; k == EdgeNew || k == EdgeOld {
		t.Errorf("EdgeAttr(c,d).Kind = %v, want neither EdgeNew nor EdgeOld", k)
	}
}

// TestCompareNodeAndEdgeTagsAreMutuallyExclusive pins down §8 property 5
// on the fixture of TestCompareIndirectSummarization: no node carries both
// New and Old, and no edge's Kind ever needs to represent more than one of
// {new, old, indirect} at once (EdgeKind is a single enum, so this is a
// static guarantee, but the visible set itself must never contain a node
// with both flags set).
func TestCompareNodeAndEdgeTagsAreMutuallyExclusive(t *testing.T) {
	before := mustGraph(t, [2]string{"a", "x"}, [2]string{"x", "y"}, [2]string{"y", "b"}, [2]string{"m", "b"})
	after := mustGraph(t, [2]string{"a", "x"}, [2]string{"x", "y"}, [2]string{"y", "b"}, [2]string{"a", "n"})

	got := Compare(before, after, DefaultOptions())
	for _, n := range got.Graph.Nodes() {
		a := got.NodeAttr(n)
		if a.New && a.Old {
			t.Errorf("node %s carries both New and Old", n)
		}
	}
}

func TestCompareGrouping(t *testing.T) {
	before := mustGraph(t, [2]string{":app:feature:login", ":lib:net"})
	after := mustGraph(t, [2]string{":app:feature:login", ":app:feature:signup"})

	opts := DefaultOptions()
	opts.ParentFunc = gradle.Split
	got := Compare(before, after, opts)

	login := got.NodeAttr(":app:feature:login")
	if !login.Grouped || login.Label != ":login" || login.FullName != ":app:feature:login" {
		t.Errorf("login attrs = %+v", login)
	}
	wantParent := []ParentComponent{{":app", GroupUnchanged}, {":feature", GroupUnchanged}}
	if diff := cmp.Diff(wantParent, login.Parent); diff != "" {
		t.Errorf("login.Parent mismatch (-want +got):\n%s", diff)
	}

	net := got.NodeAttr(":lib:net")
	if !net.Grouped || net.Label != ":net" {
		t.Errorf("net attrs = %+v", net)
	}
	wantNetParent := []ParentComponent{{":lib", GroupOlder}}
	if diff := cmp.Diff(wantNetParent, net.Parent); diff != "" {
		t.Errorf("net.Parent mismatch (-want +got):\n%s", diff)
	}
}
