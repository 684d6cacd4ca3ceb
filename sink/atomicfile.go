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

package sink

import (
	"github.com/google/renameio"
)

// AtomicFile is a Sink backed by renameio, so a formatted document only
// appears at path once Close has been called successfully: a crash or a
// poisoned Printer mid-write never leaves a truncated file
// visible to readers of path.
type AtomicFile struct {
	path string
	pf   *renameio.PendingFile
}

// NewAtomicFile opens a pending atomic replacement of path.
func NewAtomicFile(path string) (*AtomicFile, error) {
	pf, err := renameio.TempFile("", path)
	if err != nil {
		return nil, err
	}
	return &AtomicFile{path: path, pf: pf}, nil
}

// WriteString implements Sink.
func (f *AtomicFile) WriteString(s string) error {
	_, err := f.pf.Write([]byte(s))
	return err
}

// Close commits the write, atomically replacing path. Call this from
// Finish's returned sink value; an AtomicFile that is never Closed
// leaves no trace at path.
func (f *AtomicFile) Close() error {
	return f.pf.CloseAtomicallyReplace()
}

// Abandon discards the pending temp file without touching path. Call
// this if a Printer backed by an AtomicFile is discarded unfinished,
// for a caller that wishes to abort and drop the output entirely.
func (f *AtomicFile) Abandon() error {
	return f.pf.Cleanup()
}
