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

//go:build !oppenfmt_raceaffinity

package affinity

import "testing"

func TestTouchIsNoopWithoutTag(t *testing.T) {
	t.Parallel()
	var g Guard
	done := make(chan struct{})
	go func() {
		g.Touch()
		close(done)
	}()
	<-done
	g.Touch() // from this goroutine too; must not panic either way.
}
