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
Package depgraph holds the in-memory directed graph of opaque, string-named
nodes that the rest of this module operates on, along with the parser that
builds one from a line-oriented ".deps" file.

A Graph has no edge or node attributes; it is the common input and output
shape of both snapshots being compared. Node identity is exact string
equality, and a Graph never mutates once built except through AddNode and
AddEdge.
*/
package depgraph

import "sort"

// NodeID identifies a node in a Graph. It is scoped to a single Graph and is
// assigned in the order nodes are first seen, starting at 0. Node names are
// never renumbered, so a NodeID remains valid for the lifetime of the Graph
// it came from.
type NodeID int64

// Edge is a directed edge between two nodes, named by their exact string
// identity.
type Edge struct {
	From, To string
}

// Less reports whether e sorts before o under the canonical (From, To)
// ordering used throughout this module for deterministic output.
func (e Edge) Less(o Edge) bool {
	if e.From != o.From {
		return e.From < o.From
	}
	return e.To < o.To
}

// Graph is a directed graph of opaquely-named nodes with no parallel edges
// and no self-loops; a self-dependency in the input is normalized into a
// plain (edge-less) node. The zero value is not usable — construct with New.
type Graph struct {
	names  []string          // NodeID -> name
	byName map[string]NodeID // name -> NodeID
	out    map[NodeID]map[NodeID]bool
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		byName: make(map[string]NodeID),
		out:    make(map[NodeID]map[NodeID]bool),
	}
}

// AddNode inserts name if it is not already present and returns its NodeID.
func (g *Graph) AddNode(name string) NodeID {
	if id, ok := g.byName[name]; ok {
		return id
	}
	id := NodeID(len(g.names))
	g.names = append(g.names, name)
	g.byName[name] = id
	g.out[id] = make(map[NodeID]bool)
	return id
}

// AddEdge inserts both endpoints (if not already present) and the edge
// between them. A self-dependency (from == to) only inserts the node: no
// self-loop is ever recorded, per the normalization rule in §4.1.
func (g *Graph) AddEdge(from, to string) {
	u := g.AddNode(from)
	v := g.AddNode(to)
	if u == v {
		return
	}
	g.out[u][v] = true
}

// HasNode reports whether name exists in the graph.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.byName[name]
	return ok
}

// HasEdge reports whether the exact edge from -> to exists.
func (g *Graph) HasEdge(from, to string) bool {
	u, ok := g.byName[from]
	if !ok {
		return false
	}
	v, ok := g.byName[to]
	if !ok {
		return false
	}
	return g.out[u][v]
}

// NodeID returns the NodeID assigned to name, if it exists.
func (g *Graph) NodeID(name string) (NodeID, bool) {
	id, ok := g.byName[name]
	return id, ok
}

// Name returns the name of the node with the given NodeID. It panics if id
// is out of range, mirroring slice-index semantics, since NodeIDs are only
// ever produced by this Graph itself.
func (g *Graph) Name(id NodeID) string {
	return g.names[id]
}

// NodeCount returns the number of distinct nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.names)
}

// EdgeCount returns the number of distinct edges in the graph.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, tos := range g.out {
		n += len(tos)
	}
	return n
}

// Nodes returns every node name, sorted lexicographically.
func (g *Graph) Nodes() []string {
	names := make([]string, len(g.names))
	copy(names, g.names)
	sort.Strings(names)
	return names
}

// NodeIDs returns every NodeID in the graph, in assignment order.
func (g *Graph) NodeIDs() []NodeID {
	ids := make([]NodeID, len(g.names))
	for i := range g.names {
		ids[i] = NodeID(i)
	}
	return ids
}

// Edges returns every edge, sorted by (From, To).
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for u, tos := range g.out {
		for v := range tos {
			edges = append(edges, Edge{From: g.names[u], To: g.names[v]})
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].Less(edges[j]) })
	return edges
}

// OutNeighbors returns the names of nodes that name has a direct edge to,
// sorted lexicographically. It returns nil if name is not in the graph.
func (g *Graph) OutNeighbors(name string) []string {
	u, ok := g.byName[name]
	if !ok {
		return nil
	}
	var out []string
	for v := range g.out[u] {
		out = append(out, g.names[v])
	}
	sort.Strings(out)
	return out
}

// OutDegree returns the number of direct edges leading out of name.
func (g *Graph) OutDegree(name string) int {
	u, ok := g.byName[name]
	if !ok {
		return 0
	}
	return len(g.out[u])
}

// InDegree returns the number of direct edges leading into name.
func (g *Graph) InDegree(name string) int {
	v, ok := g.byName[name]
	if !ok {
		return 0
	}
	n := 0
	for _, tos := range g.out {
		if tos[v] {
			n++
		}
	}
	return n
}

// NodeSet returns the graph's node names as a set, suitable for set
// difference against another Graph's NodeSet.
func (g *Graph) NodeSet() map[string]bool {
	set := make(map[string]bool, len(g.names))
	for _, n := range g.names {
		set[n] = true
	}
	return set
}

// EdgeSet returns the graph's edges as a set, suitable for set difference
// against another Graph's EdgeSet.
func (g *Graph) EdgeSet() map[Edge]bool {
	set := make(map[Edge]bool, g.EdgeCount())
	for u, tos := range g.out {
		for v := range tos {
			set[Edge{From: g.names[u], To: g.names[v]}] = true
		}
	}
	return set
}
