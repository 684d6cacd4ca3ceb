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

//go:build oppenfmt_raceaffinity

package affinity

import (
	"fmt"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// Guard panics if Touch is called from a different goroutine than the
// one that first called it. Built only under oppenfmt_raceaffinity,
// the same spirit as -race but targeted at this package's single-writer
// invariant rather than memory accesses in general.
type Guard struct {
	owner atomic.Int64 // goroutine id, 0 means untouched
}

// Touch asserts goroutine affinity.
func (g *Guard) Touch() {
	id := goid.Get()
	if owner := g.owner.Load(); owner != 0 {
		if owner != id {
			panic(fmt.Sprintf("oppenfmt: Printer touched from goroutine %d, previously used from %d", id, owner))
		}
		return
	}
	if !g.owner.CompareAndSwap(0, id) {
		// Another goroutine claimed ownership first; check against it.
		g.Touch()
	}
}
