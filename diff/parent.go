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

import "strings"

// groupSep joins path components into a map key for a group's full
// ancestor tuple. It must not appear in any real path component; Gradle
// coordinates and similar conventions never emit "\x1f".
const groupSep = "\x1f"

// expandedGroups returns, for every node name, every prefix of its parent
// path (the group itself, then its parent, and so on up to the outermost
// ancestor) as a set of map keys built with groupKey. A leaf-only name (nil
// path) contributes nothing: it belongs to no group.
func expandedGroups(names []string, parentFn ParentFunc) map[string]bool {
	groups := map[string]bool{}
	for _, name := range names {
		path, _ := parentFn(name)
		for i := 1; i <= len(path); i++ {
			groups[groupKey(path[:i])] = true
		}
	}
	return groups
}

func groupKey(path []string) string {
	return strings.Join(path, groupSep)
}

// annotateGroup fills in the Grouped, Label, FullName and Parent fields of
// attr for name, using parentFn and the sets of groups that exist only
// before or only after the compared snapshots (§4.2 Step 6).
func annotateGroup(attr *NodeAttr, name string, parentFn ParentFunc, newerOnly, olderOnly map[string]bool) {
	path, leaf := parentFn(name)
	attr.Grouped = true
	attr.Label = leaf
	if len(path) == 0 {
		attr.FullName = leaf
		return
	}
	attr.FullName = name
	attr.Parent = make([]ParentComponent, len(path))
	for i, component := range path {
		key := groupKey(path[:i+1])
		state := GroupUnchanged
		switch {
		case newerOnly[key]:
			state = GroupNewer
		case olderOnly[key]:
			state = GroupOlder
		}
		attr.Parent[i] = ParentComponent{Component: component, State: state}
	}
}
