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

package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushFrontPop(t *testing.T) {
	t.Parallel()
	r := New(10)
	require.True(t, r.Empty())

	i0 := r.Push(Token{Kind: Text, Str: "a", Size: 1, Resolved: true})
	i1 := r.Push(Token{Kind: Text, Str: "b", Size: 1, Resolved: true})
	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	assert.Equal(t, 2, r.Len())

	tok, ok := r.PopFront()
	require.True(t, ok)
	assert.Equal(t, "a", tok.Str)

	idx, front, ok := r.Front()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "b", front.Str)
}

func TestAtIsKeyedByLogicalIndex(t *testing.T) {
	t.Parallel()
	r := New(4)
	r.Push(Token{Str: "a"})
	r.Push(Token{Str: "b"})
	_, _ = r.PopFront()
	idx := r.Push(Token{Str: "c"}) // logical index 2, not 1

	assert.Equal(t, 2, idx)
	assert.Equal(t, "b", r.At(1).Str)
	assert.Equal(t, "c", r.At(2).Str)
}

func TestAtOutOfWindowPanics(t *testing.T) {
	t.Parallel()
	r := New(4)
	r.Push(Token{Str: "a"})
	assert.Panics(t, func() { r.At(5) })
}

func TestMarkPendingThenResolve(t *testing.T) {
	t.Parallel()
	tok := Token{Kind: Break}
	MarkPending(&tok, 10)
	assert.False(t, tok.Resolved)

	Resolve(&tok, 17)
	assert.True(t, tok.Resolved)
	assert.Equal(t, 7, tok.Size)
}

func TestResolveToZeroIsDistinctFromUnresolved(t *testing.T) {
	t.Parallel()
	tok := Token{Kind: Break}
	MarkPending(&tok, 5)
	Resolve(&tok, 5) // delta is exactly zero
	assert.True(t, tok.Resolved)
	assert.Equal(t, 0, tok.Size)
}
