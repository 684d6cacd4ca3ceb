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

// Package width measures the terminal column width of text, for
// callers who want to pass a correct width to Printer.Text instead of
// len(s). Using this package is opt-in: the printer treats input as
// opaque columnar units and leaves multibyte measurement to the caller.
package width

import "github.com/rivo/uniseg"

// String returns the number of terminal columns s occupies, accounting
// for wide East-Asian characters, combining marks, and emoji grapheme
// clusters.
func String(s string) int {
	return uniseg.StringWidth(s)
}

// Indent returns the column offset for a block nested level levels
// deep, given unit columns of indentation per level. It pairs with
// String: String measures atoms, Indent measures the structural
// indentation a caller passes as a Group or Space offset. unit <= 0 is
// treated as 1.
func Indent(level, unit int) int {
	if unit <= 0 {
		unit = 1
	}
	return level * unit
}
