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

// ParentFunc reports a node's ancestor path, outermost component first, and
// its own leaf label. gradle.Split implements this for Gradle project
// coordinates; a nil ParentFunc disables Step 6 group annotation entirely.
type ParentFunc func(name string) (path []string, leaf string)

// Options controls which snapshot(s) Compare draws changes from and
// whether it performs the optional transitive-context and grouping passes
// (§4.2, §9 Open Questions).
type Options struct {
	// IncludeNew reports edges and nodes present in "after" but not
	// "before". Both IncludeNew and IncludeOld default to true; an
	// Options{} zero value with both false makes no node visible, so
	// Compare then always returns an empty graph; DefaultOptions is the
	// normal entry point.
	IncludeNew bool
	// IncludeOld reports edges and nodes present in "before" but not
	// "after".
	IncludeOld bool
	// ShortestTransitivePath enables Step 3: for every pair of visible
	// nodes connected only by a multi-hop path in "after", synthesize the
	// intermediate edges of that path so the delta graph shows how they
	// are still connected.
	ShortestTransitivePath bool
	// ParentFunc, if set, enables Step 6: every visible node is annotated
	// with its ancestor path and whether each ancestor group is new,
	// removed, or unchanged between the two snapshots.
	ParentFunc ParentFunc
}

// DefaultOptions returns the engine's default configuration: both new and
// old changes are included, transitive-context synthesis and grouping are
// both off.
func DefaultOptions() Options {
	return Options{IncludeNew: true, IncludeOld: true}
}
