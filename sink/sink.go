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

// Package sink provides a tiny capability interface so a Printer can
// write to either an in-memory string builder or a streaming byte
// target, with errors propagated verbatim.
package sink

import (
	"io"
	"strings"
)

// Sink accepts string writes and may fail. It is the sole collaborator
// a Printer writes to. It is treated as an external interface, not
// part of the core.
type Sink interface {
	WriteString(s string) error
}

// String is an in-memory Sink backed by a strings.Builder. It never
// fails.
type String struct {
	b strings.Builder
}

// NewString creates an empty in-memory Sink.
func NewString() *String { return &String{} }

// WriteString implements Sink. It never returns an error.
func (s *String) WriteString(str string) error {
	s.b.WriteString(str)
	return nil
}

// String returns the accumulated text.
func (s *String) String() string { return s.b.String() }

// Writer is a Sink backed by an io.Writer. It forwards writes and
// surfaces the writer's errors unchanged.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w as a Sink.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// WriteString implements Sink.
func (w *Writer) WriteString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}
