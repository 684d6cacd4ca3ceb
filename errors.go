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
	"errors"
	"fmt"
)

// ErrUnclosedGroup is returned by Finish when the scan stack still
// contains open groups.
var ErrUnclosedGroup = errors.New("oppenfmt: finish called with unclosed group")

// SinkError reports that the Sink refused a write. Once a SinkError
// occurs the Printer is poisoned: every later façade call returns this
// same error.
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string { return fmt.Sprintf("oppenfmt: sink error: %v", e.Err) }
func (e *SinkError) Unwrap() error { return e.Err }

// BodyError wraps an error returned by a Group body callback. The
// matching GroupEnd is always emitted before a BodyError is returned.
type BodyError struct {
	Depth int // nesting depth of the group whose body failed
	Err   error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("oppenfmt: group body at depth %d: %v", e.Depth, e.Err)
}
func (e *BodyError) Unwrap() error { return e.Err }
