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

package oppenfmt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oppenfmt/oppenfmt/sink"
)

// TestUnclosedGroupRejectsFinish drives the scanner directly (bypassing
// Group's guaranteed-close defer) to confirm Finish still enforces
// Finish's unclosed-group invariant if it were ever reached.
func TestUnclosedGroupRejectsFinish(t *testing.T) {
	t.Parallel()
	p := New(sink.NewString(), Options{Margin: 40})
	require.NoError(t, p.scanner.GroupBegin(0))

	_, err := p.Finish()
	require.ErrorIs(t, err, ErrUnclosedGroup)
}
