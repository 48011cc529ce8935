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

package dotwriter

// resolveCompoundEdges rewrites every link in links whose endpoints sit in
// different immediate clusters (including a clustered node paired with an
// unclustered one) so GraphViz draws it against the cluster boundary rather
// than dangling inside or outside it, and reports whether it rewrote
// anything at all — the caller uses that to decide whether to set the
// graph-level `compound=true` attribute GraphViz requires for ltail/lhead
// (and for point-anchor edges, a non-structural but harmless companion
// flag) to take effect.
//
// Each side is resolved independently against the edge's *original*
// endpoints: a cluster named in `ltail`/`lhead` must not already contain the
// edge's other endpoint at any nesting depth, or GraphViz rejects it. When
// that containment holds, the side is rewired through a synthetic
// shape=point anchor node placed inside the offending cluster instead.
func resolveCompoundEdges(doc *Doc, links []*link) bool {
	var touched bool
	for _, l := range links {
		origFrom, origTo := l.from, l.to
		fromCluster, toCluster := origFrom.parent, origTo.parent
		if fromCluster == toCluster {
			continue
		}
		if fromCluster != nil {
			if isAncestorOrSelf(fromCluster, origTo) {
				l.from = doc.pointAnchor(fromCluster)
			} else {
				l.Set("ltail", "cluster_"+fromCluster.name)
			}
			touched = true
		}
		if toCluster != nil {
			if isAncestorOrSelf(toCluster, origFrom) {
				l.to = doc.pointAnchor(toCluster)
			} else {
				l.Set("lhead", "cluster_"+toCluster.name)
			}
			touched = true
		}
	}
	return touched
}

// isAncestorOrSelf reports whether cluster is n itself or one of n's
// cluster ancestors.
func isAncestorOrSelf(cluster, n *node) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == cluster {
			return true
		}
	}
	return false
}
