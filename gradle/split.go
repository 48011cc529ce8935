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
Package gradle provides the Gradle convention for the diff engine's
parent-path function (§3), plus an adapter that turns the text tree printed
by `gradle -q <project>:dependencies` into ".deps" lines (§6). Both are
external collaborators around the core: they exist to let a caller plug
Gradle-shaped names and output into the core without the core itself
knowing anything about Gradle.
*/
package gradle

import "regexp"

var componentRE = regexp.MustCompile(`:?[^:.]+`)

// Split implements the Gradle parent-path convention: a name like
// ":app:feature:login" splits on ':' into path components
// [":app", ":feature"] and leaf ":login". A '.' also ends a component and
// is dropped, so "com.example" yields path ["com"] and leaf "example". A
// name that forms a single component, such as "lib" or ":root", returns a
// nil path and that component as leaf.
func Split(name string) (path []string, leaf string) {
	parts := componentRE.FindAllString(name, -1)
	if len(parts) == 0 {
		return nil, name
	}
	if len(parts) == 1 {
		return nil, parts[0]
	}
	return parts[:len(parts)-1], parts[len(parts)-1]
}
