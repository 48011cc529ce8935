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

import (
	"fmt"

	"github.com/depscope/graphdiff/diff"
)

// RenderOptions controls the look of a rendered Doc. The zero value
// renders with LightStyle and no caption.
type RenderOptions struct {
	Caption string
	// Style, if non-nil, overrides the palette entirely. Mutually
	// exclusive with DarkMode.
	Style *Style
	// DarkMode selects DarkStyle. Mutually exclusive with Style.
	DarkMode bool
	// NodeURL, if set, is called with each node's full name (its own name
	// if ungrouped) to produce a GraphViz URL attribute, letting the
	// caller make nodes clickable.
	NodeURL func(fullName string) string
	// NodeNameMap, if set, overrides a node's or cluster's synthetic
	// "nodeN" DOT identifier with a caller-supplied stable id, keyed by
	// full name. A full name absent from the map still gets the default
	// synthetic name.
	NodeNameMap map[string]string
}

func (o RenderOptions) resolveStyle() (Style, error) {
	if o.DarkMode {
		if o.Style != nil {
			return Style{}, ErrIncompatibleOptions
		}
		return DarkStyle, nil
	}
	if o.Style != nil {
		return *o.Style, nil
	}
	return LightStyle, nil
}

// Render translates an annotated delta graph into a DOT Doc (§4.3),
// grounded on the node/edge coloring rules and group-cluster nesting of
// the renderer this module generalizes. It returns ErrEmptyGraph if ag has
// no visible nodes at all, since an empty digraph is almost always a sign
// the caller's options filtered out everything rather than an
// intentionally blank result.
func Render(ag *diff.AnnotatedGraph, opts RenderOptions) (*Doc, error) {
	if ag.Graph.NodeCount() == 0 {
		return nil, ErrEmptyGraph{}
	}
	style, err := opts.resolveStyle()
	if err != nil {
		return nil, err
	}

	doc := NewDoc(opts.Caption)
	doc.SetGraphProp("bgcolor", style.BGColor)
	doc.SetGraphProp("fontcolor", style.FGColor)
	doc.SetGraphProp("fontname", style.FontName)
	doc.SetNodeDefault("shape", "rectangle")
	doc.SetNodeDefault("fontname", style.FontName)
	doc.SetEdgeDefault("arrowhead", "vee")
	doc.SetSubgraphDefault("style", "rounded")
	doc.SetSubgraphDefault("fontname", style.FontName)

	dotNodes := make(map[string]*node, ag.Graph.NodeCount())
	for _, name := range ag.Graph.Nodes() {
		attr := ag.NodeAttr(name)

		label := name
		fullName := name
		var parent *node
		if attr.Grouped {
			label = attr.Label
			fullName = attr.FullName
			parent = resolveGroup(doc, style, attr.Parent, opts.NodeURL, opts.NodeNameMap)
		}

		n := doc.newItem(escapeNewline(label), fullName, parent, opts.NodeNameMap[fullName])
		dotNodes[name] = n

		color := style.FGColor
		switch {
		case attr.New:
			color = style.NewColor
		case attr.Old:
			color = style.OldColor
		}
		if attr.Transitive && style.TransitiveColor != "" {
			color = style.TransitiveColor
		}
		n.Set("color", color)
		n.Set("fontcolor", color)
		n.Set("tooltip", escapeNewline(fullName))
		if opts.NodeURL != nil {
			n.Set("URL", opts.NodeURL(fullName))
		}
	}

	for _, e := range ag.Graph.Edges() {
		attr := ag.EdgeAttr(e.From, e.To)
		from, to := dotNodes[e.From], dotNodes[e.To]
		l := doc.newLink(from, to)

		color := style.FGColor
		switch attr.Kind {
		case diff.EdgeNew:
			color = style.NewColor
		case diff.EdgeOld:
			color = style.OldColor
		}
		if attr.Kind == diff.EdgeTransitive && style.TransitiveColor != "" {
			color = style.TransitiveColor
		}
		l.Set("color", color)
		l.Set("tooltip", escapeNewline(fmt.Sprintf("%s\n   ->\n%s", from.fullName, to.fullName)))

		if attr.Kind == diff.EdgeIndirect {
			l.Set("style", "dashed")
			if attr.IndirectDistance > 2 {
				l.Set("label", fmt.Sprintf("(%d)", attr.IndirectDistance))
				l.Set("fontcolor", color)
				l.Set("fontname", style.FontName)
			}
		}
	}

	if resolveCompoundEdges(doc, doc.links) {
		doc.SetGraphProp("compound", "true")
	}

	return doc, nil
}

// resolveGroup walks path (outermost component first), creating or
// reusing one cluster node per prefix, and returns the innermost one —
// the direct parent of the leaf node.
func resolveGroup(doc *Doc, style Style, path []diff.ParentComponent, nodeURL func(string) string, nodeNameMap map[string]string) *node {
	var parent *node
	var fullName string
	for _, comp := range path {
		if parent != nil {
			fullName = parent.fullName + comp.Component
		} else {
			fullName = comp.Component
		}
		n, created := doc.groupNode(escapeNewline(comp.Component), fullName, parent, nodeNameMap[fullName])
		if created {
			border, font := groupColors(style, comp.State)
			n.Set("color", border)
			n.Set("fontcolor", font)
			n.Set("tooltip", escapeNewline(fullName))
			if nodeURL != nil {
				n.Set("URL", nodeURL(fullName))
			}
		}
		parent = n
	}
	return parent
}

// groupColors returns the cluster border and title-text colors for a
// group in the given change state: a new or removed group is drawn
// entirely in its change color, while an unchanged group uses the style's
// dedicated (and possibly distinct) border/title shades, falling back to
// FGColor for either that is left unset.
func groupColors(style Style, state diff.GroupState) (border, font string) {
	switch state {
	case diff.GroupNewer:
		return style.NewColor, style.NewColor
	case diff.GroupOlder:
		return style.OldColor, style.OldColor
	default:
		border, font = style.GroupBorderColor, style.GroupTitleColor
		if border == "" {
			border = style.FGColor
		}
		if font == "" {
			font = style.FGColor
		}
		return border, font
	}
}
