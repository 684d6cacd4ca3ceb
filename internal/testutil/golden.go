// Copyright 2026 The oppenfmt Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testutil provides shared test tooling: golden-file comparison
// with a readable unified diff on mismatch.
package testutil

import (
	"os"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// AssertGolden compares got against the contents of path, failing the
// test with a unified diff if they differ. Set UPDATE_GOLDEN=1 in the
// environment to (re)write path from got instead of comparing.
func AssertGolden(t *testing.T, path string, got string) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("testutil: writing golden file %s: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("testutil: reading golden file %s: %v", path, err)
	}
	if got == string(want) {
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(want)),
		B:        difflib.SplitLines(got),
		FromFile: path,
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		t.Fatalf("testutil: computing diff: %v", err)
	}
	t.Fatalf("%s does not match golden output:\n%s", path, diff)
}
