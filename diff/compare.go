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
	"math"
	"sort"

	"github.com/depscope/graphdiff/depgraph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// Compare computes the annotated delta graph between before and after
// according to opts. It never fails: every step is total over finite
// graphs (§4.2 Failure semantics), so there is no error return.
func Compare(before, after *depgraph.Graph, opts Options) *AnnotatedGraph {
	ag := &AnnotatedGraph{
		Graph:     depgraph.New(),
		NodeAttrs: map[string]NodeAttr{},
		EdgeAttrs: map[depgraph.Edge]EdgeAttr{},
	}

	// reach mirrors the subset of ag's edges that exist in "after": new
	// edges from Step 1, transitive edges from Step 3, retained direct
	// edges from Step 4 and indirect edges from Step 5. "old" edges never
	// join it, since they have no existence in "after" to reason about.
	// Step 5 uses it to test whether a visible pair is already connected
	// before spending an indirect edge on it.
	reach := depgraph.New()

	setEdge := func(from, to string, attr EdgeAttr) {
		if ag.Graph.HasEdge(from, to) {
			return
		}
		ag.Graph.AddEdge(from, to)
		ag.EdgeAttrs[depgraph.Edge{From: from, To: to}] = attr
	}
	touchNode := func(name string, f func(*NodeAttr)) {
		ag.Graph.AddNode(name)
		a := ag.NodeAttrs[name]
		if f != nil {
			f(&a)
		}
		ag.NodeAttrs[name] = a
	}

	// Step 1: direct changes.
	beforeEdges := before.EdgeSet()
	afterEdges := after.EdgeSet()
	if opts.IncludeNew {
		for _, e := range after.Edges() {
			if beforeEdges[e] {
				continue
			}
			setEdge(e.From, e.To, EdgeAttr{Kind: EdgeNew})
			reach.AddEdge(e.From, e.To)
			touchNode(e.From, nil)
			touchNode(e.To, nil)
		}
		beforeNodes := before.NodeSet()
		for _, n := range after.Nodes() {
			if beforeNodes[n] {
				continue
			}
			touchNode(n, func(a *NodeAttr) { a.New = true })
		}
	}
	if opts.IncludeOld {
		for _, e := range before.Edges() {
			if afterEdges[e] {
				continue
			}
			setEdge(e.From, e.To, EdgeAttr{Kind: EdgeOld})
			touchNode(e.From, nil)
			touchNode(e.To, nil)
		}
		afterNodes := after.NodeSet()
		for _, n := range before.Nodes() {
			if afterNodes[n] {
				continue
			}
			touchNode(n, func(a *NodeAttr) { a.Old = true })
		}
	}

	// Step 2: build an all-pairs shortest-path table over "after", used by
	// both the transitive pass (Step 3) and the indirect pass (Step 5).
	shortest := shortestPaths(after)

	// Step 3: transitive context. Iterate only over the snapshot of
	// visible nodes taken before this step began; nodes it promotes only
	// become eligible starting with Step 4.
	if opts.ShortestTransitivePath {
		snapshot := ag.Graph.Nodes()
		visible := make(map[string]bool, len(snapshot))
		for _, n := range snapshot {
			visible[n] = true
		}
		for _, u := range snapshot {
			for _, v := range snapshot {
				if u == v {
					continue
				}
				nodes, weight, ok := shortest.between(after, u, v)
				if !ok || weight < 2 {
					continue
				}
				for i := 0; i+1 < len(nodes); i++ {
					a, b := nodes[i], nodes[i+1]
					// Both endpoints already visible before Step 3 began:
					// this segment isn't introduced to complete transitive
					// context, so it's left for Step 4 to draw in (or not)
					// on its own terms, per §4.2 Step 3.
					if visible[a] && visible[b] {
						continue
					}
					if !visible[a] {
						touchNode(a, func(attr *NodeAttr) { attr.Transitive = true })
					}
					if !visible[b] {
						touchNode(b, func(attr *NodeAttr) { attr.Transitive = true })
					}
					if ag.Graph.HasEdge(a, b) {
						continue
					}
					setEdge(a, b, EdgeAttr{Kind: EdgeTransitive})
					reach.AddEdge(a, b)
				}
			}
		}
	}

	// Step 4: direct retention. Any edge that exists in "after" directly
	// between two already-visible nodes is drawn in for context, even if
	// neither endpoint's own visibility came from this particular edge.
	visible := ag.Graph.Nodes()
	for _, u := range visible {
		for _, v := range visible {
			if u == v || !after.HasEdge(u, v) || ag.Graph.HasEdge(u, v) {
				continue
			}
			setEdge(u, v, EdgeAttr{Kind: EdgeUnchanged})
			reach.AddEdge(u, v)
		}
	}

	// Step 5: indirect summarization, processed in ascending distance so
	// that a short indirect edge is never skipped in favor of a longer one
	// that happens to be considered first.
	type pair struct {
		u, v string
		d    int
	}
	var candidates []pair
	for _, u := range visible {
		for _, v := range visible {
			if u == v {
				continue
			}
			d, ok := shortest.distance(after, u, v)
			if !ok || d < 2 {
				continue
			}
			candidates = append(candidates, pair{u, v, d})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].d != candidates[j].d {
			return candidates[i].d < candidates[j].d
		}
		if candidates[i].u != candidates[j].u {
			return candidates[i].u < candidates[j].u
		}
		return candidates[i].v < candidates[j].v
	})
	for _, c := range candidates {
		if hasPath(reach, c.u, c.v) {
			continue
		}
		setEdge(c.u, c.v, EdgeAttr{Kind: EdgeIndirect, IndirectDistance: c.d})
		reach.AddEdge(c.u, c.v)
	}

	// Step 6: group annotation.
	if opts.ParentFunc != nil {
		newerOnly, olderOnly := groupDeltas(before, after, opts.ParentFunc)
		for _, n := range ag.Graph.Nodes() {
			a := ag.NodeAttrs[n]
			annotateGroup(&a, n, opts.ParentFunc, newerOnly, olderOnly)
			ag.NodeAttrs[n] = a
		}
	}

	return ag
}

// groupDeltas returns the sets of ancestor-group keys that exist only in
// after's node names and only in before's, under parentFn.
func groupDeltas(before, after *depgraph.Graph, parentFn ParentFunc) (newerOnly, olderOnly map[string]bool) {
	beforeGroups := expandedGroups(before.Nodes(), parentFn)
	afterGroups := expandedGroups(after.Nodes(), parentFn)
	newerOnly = map[string]bool{}
	olderOnly = map[string]bool{}
	for g := range afterGroups {
		if !beforeGroups[g] {
			newerOnly[g] = true
		}
	}
	for g := range beforeGroups {
		if !afterGroups[g] {
			olderOnly[g] = true
		}
	}
	return newerOnly, olderOnly
}

// hasPath reports whether v is reachable from u in g via a breadth-first
// search, without relying on any precomputed distance table: reach grows
// edge-by-edge during Step 5, so its shortest-path structure is not worth
// caching between iterations.
func hasPath(g *depgraph.Graph, u, v string) bool {
	if !g.HasNode(u) {
		return false
	}
	seen := map[string]bool{u: true}
	queue := []string{u}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, next := range g.OutNeighbors(n) {
			if next == v {
				return true
			}
			if seen[next] {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	return false
}

// pathTable wraps gonum's all-pairs shortest-path result, translated
// through the NodeID <-> name mapping of the graph it was built from.
type pathTable struct {
	ids      map[string]int64
	shortest path.AllShortest
}

func shortestPaths(g *depgraph.Graph) pathTable {
	dg := simple.NewDirectedGraph()
	ids := make(map[string]int64)
	for _, id := range g.NodeIDs() {
		dg.AddNode(simple.Node(id))
		ids[g.Name(id)] = int64(id)
	}
	for _, e := range g.Edges() {
		u := ids[e.From]
		v := ids[e.To]
		dg.SetEdge(dg.NewEdge(simple.Node(u), simple.Node(v)))
	}
	return pathTable{ids: ids, shortest: path.FloydWarshall(dg)}
}

// distance returns the number of edges on a shortest path from u to v in
// the graph this table was built from, and false if none exists.
func (t pathTable) distance(g *depgraph.Graph, u, v string) (int, bool) {
	uid, ok := t.ids[u]
	if !ok {
		return 0, false
	}
	vid, ok := t.ids[v]
	if !ok {
		return 0, false
	}
	w := t.shortest.Weight(uid, vid)
	if math.IsInf(w, 1) {
		return 0, false
	}
	return int(w), true
}

// between returns the node names along a shortest path from u to v
// (inclusive of both endpoints) and its length in edges.
func (t pathTable) between(g *depgraph.Graph, u, v string) ([]string, int, bool) {
	uid, ok := t.ids[u]
	if !ok {
		return nil, 0, false
	}
	vid, ok := t.ids[v]
	if !ok {
		return nil, 0, false
	}
	nodes, weight, _ := t.shortest.Between(uid, vid)
	if nodes == nil || math.IsInf(weight, 1) {
		return nil, 0, false
	}
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = g.Name(depgraph.NodeID(n.ID()))
	}
	return names, int(weight), true
}
