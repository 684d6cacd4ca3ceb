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

package width

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringASCII(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 5, String("hello"))
}

func TestStringWideRunes(t *testing.T) {
	t.Parallel()
	// Each of these CJK characters occupies two terminal columns.
	assert.Equal(t, 6, String("漢字和"))
}

func TestStringEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, String(""))
}

func TestIndentScalesByUnit(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 6, Indent(3, 2))
	assert.Equal(t, 0, Indent(0, 2))
}

func TestIndentDefaultsUnitToOne(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, Indent(3, 0))
	assert.Equal(t, 3, Indent(3, -5))
}
