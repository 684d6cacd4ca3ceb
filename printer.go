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

// Package oppenfmt implements a streaming pretty-printer with bounded
// working memory, after Oppen (1980) and Swierstra & Chitil (2009):
// memory is proportional to the configured line width, not to the size
// of the document being formatted. Callers drive formatting through
// control flow — Text, Space, HardBreak, and Group calls — rather than
// building a document tree in memory.
package oppenfmt

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/oppenfmt/oppenfmt/internal/affinity"
	"github.com/oppenfmt/oppenfmt/internal/ring"
	"github.com/oppenfmt/oppenfmt/internal/scan"
	"github.com/oppenfmt/oppenfmt/sink"
)

// mode is a group's realization decision: flat (inline) or broken (newlines).
type mode int8

const (
	flat mode = iota
	broken
)

// frame is one entry of the printer's indentation stack.
type frame struct {
	indent int
	mode   mode
}

// Printer is the streaming pretty-printer's public façade. A Printer is
// not safe for concurrent use from multiple goroutines; build with the
// oppenfmt_raceaffinity tag to get a loud panic instead of silent
// corruption when that invariant is violated.
type Printer struct {
	sink       sink.Sink
	margin     int
	log        *zap.SugaredLogger
	indentUnit int

	space  int
	indent int
	frames []frame

	scanner  *scan.Scanner
	poison   error
	finished bool
	depth    int // number of Group calls currently running

	guard affinity.Guard
}

// New creates a Printer that writes to s, wrapping lines at opts.Margin
// columns. Margin must be positive.
func New(s sink.Sink, opts Options) *Printer {
	opts = opts.withDefaults()
	if opts.Margin <= 0 {
		panic("oppenfmt: margin must be positive")
	}
	p := &Printer{
		sink:       s,
		margin:     opts.Margin,
		space:      opts.Margin,
		log:        opts.Logger,
		indentUnit: opts.IndentUnit,
	}
	p.scanner = scan.New(opts.Margin, p.onToken, opts.Logger)
	return p
}

// IndentUnit returns the configured per-level indent width (columns),
// defaulted per Options.IndentUnit, for callers computing Group/Space
// offsets with width.Indent.
func (p *Printer) IndentUnit() int { return p.indentUnit }

// Text emits the literal string s, whose display width is width
// columns (measuring multibyte text is left to the caller; see package
// width for a uniseg-backed helper).
func (p *Printer) Text(s string, width int) error {
	p.guard.Touch()
	if p.poison != nil {
		return p.poison
	}
	if err := p.scanner.Text(s, width); err != nil {
		return p.poisonWith(err)
	}
	return nil
}

// Space emits a breakable space at the current nesting, with offset
// extra columns of indentation if it is realized as a newline.
func (p *Printer) Space(offset int) error {
	p.guard.Touch()
	if p.poison != nil {
		return p.poison
	}
	if err := p.scanner.Space(offset); err != nil {
		return p.poisonWith(err)
	}
	return nil
}

// HardBreak emits an unconditional newline and forces every currently
// open enclosing group to render broken.
func (p *Printer) HardBreak(offset int) error {
	p.guard.Touch()
	if p.poison != nil {
		return p.poison
	}
	if err := p.scanner.HardBreak(offset); err != nil {
		return p.poisonWith(err)
	}
	return nil
}

// Group opens a group indented by offset columns, runs body, and
// closes the group on every exit path of body — including body
// returning an error or panicking — so the scan stack cannot leak
// across calls.
func (p *Printer) Group(offset int, body func() error) error {
	p.guard.Touch()
	if p.poison != nil {
		return p.poison
	}
	if err := p.scanner.GroupBegin(offset); err != nil {
		return p.poisonWith(err)
	}

	p.depth++
	depth := p.depth
	var bodyErr error
	var closeErr error
	func() {
		defer func() {
			p.depth--
			closeErr = p.scanner.GroupEnd()
		}()
		bodyErr = body()
	}()

	if closeErr != nil {
		return p.poisonWith(closeErr)
	}
	if bodyErr != nil {
		return &BodyError{Depth: depth, Err: bodyErr}
	}
	return nil
}

// Finish flushes all pending tokens and returns the underlying Sink.
// It fails with ErrUnclosedGroup if any group is still open.
//
// Finish is idempotent: calling it again after a successful call
// returns the same Sink and a nil error without re-flushing.
func (p *Printer) Finish() (sink.Sink, error) {
	p.guard.Touch()
	if p.finished {
		return p.sink, nil
	}
	if p.poison != nil {
		return nil, p.poison
	}
	if !p.scanner.StackEmpty() {
		return nil, ErrUnclosedGroup
	}
	if err := p.scanner.Flush(); err != nil {
		return nil, p.poisonWith(err)
	}
	p.finished = true
	return p.sink, nil
}

func (p *Printer) poisonWith(err error) error {
	if p.poison != nil {
		return p.poison
	}
	if _, ok := err.(*SinkError); !ok {
		err = &SinkError{Err: err}
	}
	p.log.Debugw("oppenfmt: printer poisoned", "error", err)
	p.poison = err
	return err
}

// onToken is the scanner's Drain callback: it consumes resolved tokens
// in order and writes them to the sink.
func (p *Printer) onToken(tok ring.Token) error {
	switch tok.Kind {
	case ring.Text:
		if err := p.write(tok.Str); err != nil {
			return err
		}
		p.space -= tok.Size

	case ring.GroupBegin:
		entryIndent := p.indent
		m := flat
		if tok.Size > p.space {
			m = broken
		}
		p.log.Debugw("oppenfmt: group mode decided",
			"size", tok.Size, "space", p.space, "broken", m == broken)
		p.frames = append(p.frames, frame{indent: entryIndent + tok.Offset, mode: m})

	case ring.GroupEnd:
		if len(p.frames) > 0 {
			p.frames = p.frames[:len(p.frames)-1]
		}

	case ring.Break:
		top := p.topFrame()
		if top.mode == flat {
			if err := p.write(" "); err != nil {
				return err
			}
			p.space--
		} else {
			if err := p.breakLine(top.indent + tok.Offset); err != nil {
				return err
			}
		}

	case ring.HardBreak:
		top := p.topFrame()
		if err := p.breakLine(top.indent + tok.Offset); err != nil {
			return err
		}

	default:
		return fmt.Errorf("oppenfmt: unknown token kind %v", tok.Kind)
	}
	return nil
}

// topFrame returns the innermost group frame, or the implicit root
// frame (indent 0, flat) if no group is open.
func (p *Printer) topFrame() frame {
	if len(p.frames) == 0 {
		return frame{indent: 0, mode: flat}
	}
	return p.frames[len(p.frames)-1]
}

func (p *Printer) breakLine(indent int) error {
	if err := p.write("\n"); err != nil {
		return err
	}
	if indent > 0 {
		if err := p.write(spaces(indent)); err != nil {
			return err
		}
	}
	p.indent = indent
	p.space = p.margin - indent
	return nil
}

func (p *Printer) write(s string) error {
	return p.sink.WriteString(s)
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
