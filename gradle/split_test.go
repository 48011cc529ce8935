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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		wantPath []string
		wantLeaf string
	}{
		{":app:feature:login", []string{":app", ":feature"}, ":login"},
		{"no-separators", nil, "no-separators"},
		{":root", nil, ":root"},
	}
	for _, tc := range tests {
		path, leaf := Split(tc.name)
		if diff := cmp.Diff(tc.wantPath, path); diff != "" {
			t.Errorf("Split(%q) path mismatch (-want +got):\n%s", tc.name, diff)
		}
		if leaf != tc.wantLeaf {
			t.Errorf("Split(%q) leaf = %q, want %q", tc.name, leaf, tc.wantLeaf)
		}
	}
}
