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

/*
Package diff computes the annotated delta graph between two directed
dependency graphs: the set of edges and nodes added, removed, retained for
context, or synthesized to summarize a multi-hop path (§4.2).

The attribute maps in the source implementation this module generalizes are
an open string-keyed map attached to each node and edge. Here they are fixed
records — NodeAttr and EdgeAttr — one per visible node and edge, which a
renderer walks to decide color, shape and grouping.
*/
package diff

import "github.com/depscope/graphdiff/depgraph"

// GroupState reports how a node's ancestor group changed between the two
// snapshots being compared.
type GroupState int

const (
	// GroupUnchanged means the group existed in both snapshots.
	GroupUnchanged GroupState = iota
	// GroupNewer means the group exists only in the "after" snapshot.
	GroupNewer
	// GroupOlder means the group existed only in the "before" snapshot.
	GroupOlder
)

// ParentComponent is one step of a node's ancestor path, outermost first,
// along with whether that ancestor group is new, removed, or unchanged.
type ParentComponent struct {
	Component string
	State     GroupState
}

// NodeAttr holds the optional per-node attributes of an AnnotatedGraph
// (§3). A node carries at most one of New or Old, never both.
type NodeAttr struct {
	New        bool
	Old        bool
	Transitive bool

	// Grouped is true when a ParentFunc was supplied to Compare; Label,
	// FullName and Parent are only meaningful when Grouped is true.
	Grouped  bool
	Label    string
	FullName string
	Parent   []ParentComponent
}

// EdgeKind classifies an edge in an AnnotatedGraph. The zero value,
// EdgeUnchanged, marks an edge retained purely for context (it exists
// unchanged between both snapshots, or was added to make a visible node
// reachable — see §4.2 Step 4).
type EdgeKind int

const (
	EdgeUnchanged EdgeKind = iota
	EdgeNew
	EdgeOld
	EdgeIndirect
	EdgeTransitive
)

// EdgeAttr holds the optional per-edge attributes of an AnnotatedGraph
// (§3). IndirectDistance is only meaningful when Kind is EdgeIndirect, and
// is always >= 2.
type EdgeAttr struct {
	Kind             EdgeKind
	IndirectDistance int
}

// AnnotatedGraph is the output of Compare: the visible subgraph (§3 "the
// visible-node set is exactly the union of endpoints of visible edges, plus
// solo new/old nodes, plus nodes promoted by the transitive pass") together
// with the attributes that tell a renderer how to draw it.
type AnnotatedGraph struct {
	Graph     *depgraph.Graph
	NodeAttrs map[string]NodeAttr
	EdgeAttrs map[depgraph.Edge]EdgeAttr
}

// NodeAttr returns the attributes recorded for name, or the zero value if
// name carries no attributes (a node present purely as an edge endpoint
// with nothing notable about it).
func (ag *AnnotatedGraph) NodeAttr(name string) NodeAttr {
	return ag.NodeAttrs[name]
}

// EdgeAttr returns the attributes recorded for the edge from -> to, or the
// zero value (EdgeUnchanged) if the edge carries no special tag.
func (ag *AnnotatedGraph) EdgeAttr(from, to string) EdgeAttr {
	return ag.EdgeAttrs[depgraph.Edge{From: from, To: to}]
}
