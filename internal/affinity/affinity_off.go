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

// Package affinity optionally detects a Printer being touched from more
// than one goroutine, which is an error of the embedding program.
// Without the oppenfmt_raceaffinity build tag, Guard is a zero-cost
// no-op.
package affinity

// Guard tracks which goroutine first used a value.
type Guard struct{}

// Touch is a no-op in this build: it records nothing and never panics.
// Goroutine tracking and the panic exist only when built with the
// oppenfmt_raceaffinity tag (see affinity_on.go).
func (g *Guard) Touch() {}
