// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package stonemark

import "strings"

// lineStream is a peekable, line-oriented view over a document. Lines are
// 1-origin when surfaced through lineNo; reading past the end of the
// stream is a programming error and panics, matching spec.md §4.13's
// "reading past end is a hard error".
type lineStream struct {
	lines      []string
	pos        int // index of the current line within lines
	lastPos    int // index consumed by the previous call to consume
	lineOffset int // added to lineNo, for mini-documents reparsed from a larger stream
}

// newLineStream splits text into lines, dropping the file's trailing
// newline so it doesn't appear as a synthetic blank final line.
func newLineStream(text string) *lineStream {
	text = strings.TrimSuffix(text, "\n")
	var lines []string
	if text == "" {
		lines = nil
	} else {
		lines = strings.Split(text, "\n")
	}
	return &lineStream{lines: lines, pos: 0, lastPos: -1}
}

// atEnd reports whether the stream has no current line.
func (s *lineStream) atEnd() bool {
	return s.pos >= len(s.lines)
}

// current returns the line at the stream's position. It panics at end of
// stream.
func (s *lineStream) current() string {
	if s.atEnd() {
		panic("stonemark: read past end of line stream")
	}
	return s.lines[s.pos]
}

// peek returns the line after the current one, or "" if none remains.
func (s *lineStream) peek() string {
	if s.pos+1 >= len(s.lines) {
		return ""
	}
	return s.lines[s.pos+1]
}

// last returns the most recently consumed line, or "" if none has been
// consumed yet.
func (s *lineStream) last() string {
	if s.lastPos < 0 || s.lastPos >= len(s.lines) {
		return ""
	}
	return s.lines[s.lastPos]
}

// consume advances past the current line, incrementing lineNo.
func (s *lineStream) consume() {
	s.lastPos = s.pos
	s.pos++
}

// lineNo returns the 1-based line number of the current line (or, at
// end of stream, one past the last line).
func (s *lineStream) lineNo() int {
	return s.pos + 1 + s.lineOffset
}

// skipBlank advances past any blank lines and reports whether a
// non-blank line remains.
func (s *lineStream) skipBlank() bool {
	for !s.atEnd() && strings.TrimSpace(s.current()) == "" {
		s.consume()
	}
	return !s.atEnd()
}
