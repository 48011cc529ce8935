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

import "errors"

// Style is the palette a Render pass draws from. The empty string in
// GroupBorderColor, GroupTitleColor or TransitiveColor means "fall back to
// FGColor" (group border/title) or "fall back to the edge's own computed
// color" (transitive), matching LightStyle's defaults.
type Style struct {
	NewColor         string
	OldColor         string
	BGColor          string
	FGColor          string
	FontName         string
	GroupBorderColor string
	GroupTitleColor  string
	TransitiveColor  string
}

// LightStyle is the default palette: a white background with green/red for
// new/old and no special group or transitive coloring.
var LightStyle = Style{
	NewColor: "#158510",
	OldColor: "#ff0000",
	BGColor:  "#ffffff",
	FGColor:  "#000000",
	FontName: "Courier New",
}

// DarkStyle inverts the background and brightens the new/old accents so
// they read against it.
var DarkStyle = Style{
	NewColor:         "#15ef10",
	OldColor:         "#ef3f3f",
	BGColor:          "#222222",
	FGColor:          "#ffffff",
	FontName:         "Courier New",
	GroupBorderColor: "#7f7f7f",
	GroupTitleColor:  "#bfbfbf",
	TransitiveColor:  "#7f7f7f",
}

// NoColor returns a copy of s with NewColor and OldColor both collapsed to
// FGColor, for callers who want the delta's structure without its color
// coding (e.g. printing).
func (s Style) NoColor() Style {
	s.NewColor = s.FGColor
	s.OldColor = s.FGColor
	return s
}

// ErrIncompatibleOptions reports that a RenderOptions specified both an
// explicit Style and DarkMode; the renderer refuses to silently pick one.
var ErrIncompatibleOptions = errors.New("dotwriter: cannot specify both Style and DarkMode")
