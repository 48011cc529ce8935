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

package gradle

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
)

// entryRE matches one line of `gradle -q <project>:dependencies` output: an
// indentation prefix of repeated "|    " / "     " / "+--- " groups,
// followed by either a local "project :foo" reference or an external
// "group:artifact:requested -> resolved" coordinate.
var entryRE = regexp.MustCompile(
	`^((?:[\\| ] {4}|[\\+]--- )*)(?:project (\S+)|(\S+:\S+):(\S*)(?: -> (\S+))?( \(\*\))?)`)

var rootProjectRE = regexp.MustCompile(`Project '([^']*)'`)

// ParseDependenciesTree reads the text tree printed by a Gradle
// `dependencies` task and returns ".deps" lines describing the direct
// dependencies between local projects, by tracking an indentation-depth
// stack and emitting "parent -> child" once per descendant. External
// (non-project) coordinates are skipped unless includeExternal is true, in
// which case they appear as nodes named by their "group:artifact" string.
func ParseDependenciesTree(r io.Reader, includeExternal bool) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var stack []string
	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if len(stack) == 0 {
			if m := rootProjectRE.FindStringSubmatch(line); m != nil {
				stack = append(stack, m[1])
			}
			continue
		}
		depth, module, ok := parseEntry(line, includeExternal)
		if !ok {
			continue
		}
		for len(stack) > depth {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]
		stack = append(stack, module)
		lines = append(lines, fmt.Sprintf("%s -> %s", parent, module))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading gradle dependency tree: %w", err)
	}
	return lines, nil
}

// parseEntry parses a single indented dependency-tree line, returning the
// indentation depth (1 at the project root's direct children, one more per
// nesting level) and the
// module name it introduces. ok is false for lines that carry no
// dependency entry at all (blank lines, headers, "(*)" repeat markers are
// still reported with ok=true so callers can still compute depth, since a
// repeated entry still occupies a position in the tree).
func parseEntry(line string, includeExternal bool) (depth int, module string, ok bool) {
	m := entryRE.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	indent := m[1]
	depth = len(indent) / 5
	if project := m[2]; project != "" {
		return depth, project, true
	}
	if !includeExternal {
		return 0, "", false
	}
	coordinate := m[3]
	if coordinate == "" {
		return 0, "", false
	}
	return depth, coordinate, true
}
