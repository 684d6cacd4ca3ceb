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

// Package scan implements the Oppen/Swierstra-Chitil scanning half of
// the streaming pretty-printer: it turns caller events into tokens with
// resolved sizes, using a window-bounded ring buffer so that lookahead
// never exceeds the configured margin.
package scan

import (
	"go.uber.org/zap"

	"github.com/oppenfmt/oppenfmt/internal/ring"
)

// Drain is called once per token, in strict FIFO order, once that
// token's size has been finally resolved. It mirrors the printer's
// consumption of the ring.
type Drain func(ring.Token) error

// Scanner holds the left_total/right_total/scan_stack state of the
// Oppen/Swierstra-Chitil scanning algorithm.
type Scanner struct {
	margin int
	drain  Drain
	log    *zap.SugaredLogger

	buf       *ring.Ring
	scanStack []int // logical indices into buf, oldest-open first.

	leftTotal  int
	rightTotal int

	err error // sticky: once a Drain call fails, every later call re-reports it.
}

// New creates a Scanner with the given margin (columns) that forwards
// resolved tokens to drain.
func New(margin int, drain Drain, log *zap.SugaredLogger) *Scanner {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Scanner{
		margin: margin,
		drain:  drain,
		log:    log,
		buf:    ring.New(margin),
	}
}

// Err returns the sticky error from a prior failed Drain call, if any.
func (s *Scanner) Err() error { return s.err }

// StackEmpty reports whether every GroupBegin has been matched so far.
func (s *Scanner) StackEmpty() bool { return len(s.scanStack) == 0 }

// Text handles a literal text event.
func (s *Scanner) Text(str string, width int) error {
	if s.err != nil {
		return s.err
	}
	tok := ring.Token{Kind: ring.Text, Str: str, Size: width, Resolved: true}
	s.buf.Push(tok)
	s.rightTotal += width
	return s.checkStream()
}

// Space handles a breakable-space event.
func (s *Scanner) Space(offset int) error {
	if s.err != nil {
		return s.err
	}
	s.resolveTopBreak()
	tok := ring.Token{Kind: ring.Break, Offset: offset}
	ring.MarkPending(&tok, s.rightTotal)
	idx := s.buf.Push(tok)
	s.scanStack = append(s.scanStack, idx)
	s.rightTotal++
	return s.checkStream()
}

// HardBreak handles an unconditional newline event: its size is
// infinite from the start, and it forces every currently open group to
// render broken.
func (s *Scanner) HardBreak(offset int) error {
	if s.err != nil {
		return s.err
	}
	s.resolveTopBreak()
	s.forceOpenGroups()
	tok := ring.Token{Kind: ring.HardBreak, Offset: offset, Size: ring.Infinity, Resolved: true}
	s.buf.Push(tok)
	s.rightTotal++
	return s.checkStream()
}

// GroupBegin handles the start of a new group.
func (s *Scanner) GroupBegin(offset int) error {
	if s.err != nil {
		return s.err
	}
	tok := ring.Token{Kind: ring.GroupBegin, Offset: offset}
	ring.MarkPending(&tok, s.rightTotal)
	idx := s.buf.Push(tok)
	s.scanStack = append(s.scanStack, idx)
	return nil
}

// GroupEnd handles the close of the innermost open group.
func (s *Scanner) GroupEnd() error {
	if s.err != nil {
		return s.err
	}
	s.buf.Push(ring.Token{Kind: ring.GroupEnd, Size: 0, Resolved: true})
	for len(s.scanStack) > 0 {
		top := s.scanStack[len(s.scanStack)-1]
		s.scanStack = s.scanStack[:len(s.scanStack)-1]
		tok := s.buf.At(top)
		ring.Resolve(tok, s.rightTotal)
		if tok.Forced && tok.Size <= s.margin {
			tok.Size = s.margin + 1
		}
		if tok.Kind == ring.GroupBegin {
			break
		}
	}
	return s.advance()
}

// Flush forces out everything still pending, for use by Finish. The
// caller must have already verified StackEmpty itself; Flush only
// drains what advance() has not yet reached (there should be nothing
// left if the scan stack is empty, but this keeps the ring tidy if
// finish is reached via an error path).
func (s *Scanner) Flush() error {
	if s.err != nil {
		return s.err
	}
	for !s.buf.Empty() {
		if err := s.forceFront(); err != nil {
			return err
		}
	}
	return nil
}

// resolveTopBreak finalizes a Break sitting at the top of the scan
// stack when a new break position arrives (the "two consecutive
// breaks" edge case: only the first is stretchable).
func (s *Scanner) resolveTopBreak() {
	if len(s.scanStack) == 0 {
		return
	}
	top := s.scanStack[len(s.scanStack)-1]
	tok := s.buf.At(top)
	if tok.Kind != ring.Break {
		return
	}
	ring.Resolve(tok, s.rightTotal)
	s.scanStack = s.scanStack[:len(s.scanStack)-1]
}

// forceOpenGroups marks every GroupBegin still on the scan stack as
// forced, so it resolves to a too-wide size regardless of its actual
// content width (a hard break inside a group that would otherwise fit
// still forces that group to render broken).
func (s *Scanner) forceOpenGroups() {
	for _, idx := range s.scanStack {
		tok := s.buf.At(idx)
		if tok.Kind == ring.GroupBegin {
			tok.Forced = true
		}
	}
}

// checkStream enforces the algorithm's window bound: while more than
// margin columns of material are pending, the oldest entry is
// forwarded; if its size is still pending it is first force-resolved
// as too-wide, otherwise it keeps its known size.
func (s *Scanner) checkStream() error {
	for s.rightTotal-s.leftTotal > s.margin {
		if err := s.forceFront(); err != nil {
			return err
		}
	}
	return s.advance()
}

// forceFront evicts the oldest ring entry, resolving it to a too-wide
// sentinel if it was still pending.
func (s *Scanner) forceFront() error {
	idx, tok, ok := s.buf.Front()
	if !ok {
		return nil
	}
	if !tok.Resolved {
		tok.Size = s.margin + 1
		tok.Resolved = true
		if len(s.scanStack) > 0 && s.scanStack[0] == idx {
			s.scanStack = s.scanStack[1:]
		}
		s.log.Debugw("oppenfmt: force-resolved token past window bound",
			"margin", s.margin, "window", s.rightTotal-s.leftTotal)
	}
	return s.drainFront()
}

// advance drains every leading ring entry whose size is already known,
// in FIFO order, until it reaches one that is still pending.
func (s *Scanner) advance() error {
	for {
		_, tok, ok := s.buf.Front()
		if !ok || !tok.Resolved {
			return nil
		}
		if err := s.drainFront(); err != nil {
			return err
		}
	}
}

// drainFront pops the ring's oldest entry and forwards it to Drain,
// advancing left_total by its column contribution.
func (s *Scanner) drainFront() error {
	tok, ok := s.buf.PopFront()
	if !ok {
		return nil
	}
	switch tok.Kind {
	case ring.Text:
		s.leftTotal += tok.Size
	case ring.Break, ring.HardBreak:
		s.leftTotal++
	}
	if err := s.drain(tok); err != nil {
		s.err = err
		return err
	}
	return nil
}
