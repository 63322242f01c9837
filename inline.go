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

// The inline formatter (spec.md §4.10): a recursive-descent scanner over
// a run of text that recognizes the marker table's delimiters, link and
// footnote forms, and grouped spans. Each matched style span recurses
// into the scanner so markers nest (`**a **b** c**` produces a bold span
// around a nested bold span around "b").
package stonemark

import "strings"

type inlineScanner struct {
	runes  []rune
	pos    int
	parent *Node
}

// formatInline parses text into an inline-node sequence, registering any
// marker-bearing links or footnote references it encounters with
// parent's link registry. It has no inline image form: "![...]" is
// scanned as a literal '!' followed by a link.
func formatInline(text string, parent *Node) []*Node {
	s := &inlineScanner{runes: []rune(text), parent: parent}
	out, _ := s.scan("", false)
	return out
}

func (s *inlineScanner) matchToken(token string) bool {
	tr := []rune(token)
	if s.pos+len(tr) > len(s.runes) {
		return false
	}
	for i, r := range tr {
		if s.runes[s.pos+i] != r {
			return false
		}
	}
	return true
}

func (s *inlineScanner) matchAnyMarker() (markerSpec, int, bool) {
	for _, spec := range inlineMarkers {
		if s.matchToken(spec.token) {
			return spec, len([]rune(spec.token)), true
		}
	}
	return markerSpec{}, 0, false
}

// openEligible reports whether a marker token at the current position
// may open a span: the preceding character (skipping one punctuation
// mark) must be whitespace or start-of-text, and the character
// immediately inside the marker must be non-whitespace.
func (s *inlineScanner) openEligible(token string) bool {
	tl := len([]rune(token))
	i := s.pos - 1
	if i >= 0 && strings.ContainsRune(inlinePunct, s.runes[i]) {
		i--
	}
	beforeOK := i < 0 || isSpaceRune(s.runes[i])
	j := s.pos + tl
	afterOK := j < len(s.runes) && !isSpaceRune(s.runes[j])
	return beforeOK && afterOK
}

// closeEligible is openEligible's mirror: the character immediately
// inside the marker must be non-whitespace, and the following character
// (skipping one punctuation mark) must be whitespace or end-of-text.
func (s *inlineScanner) closeEligible(token string) bool {
	tl := len([]rune(token))
	i := s.pos - 1
	beforeOK := i >= 0 && !isSpaceRune(s.runes[i])
	j := s.pos + tl
	if j < len(s.runes) && strings.ContainsRune(inlinePunct, s.runes[j]) {
		j++
	}
	afterOK := j >= len(s.runes) || isSpaceRune(s.runes[j])
	return beforeOK && afterOK
}

// findClose scans forward from fromIdx for the balanced occurrence of
// closeCh, honoring nesting of openCh and backslash escapes.
func (s *inlineScanner) findClose(openCh, closeCh rune, fromIdx int) int {
	depth := 1
	i := fromIdx
	for i < len(s.runes) {
		if s.runes[i] == '\\' && i+1 < len(s.runes) {
			i += 2
			continue
		}
		switch s.runes[i] {
		case openCh:
			depth++
		case closeCh:
			depth--
			if depth == 0 {
				return i
			}
		}
		i++
	}
	return -1
}

func (s *inlineScanner) findDoubleClose(fromIdx int) int {
	depth := 1
	i := fromIdx
	for i+1 < len(s.runes) {
		if s.runes[i] == '\\' {
			i += 2
			continue
		}
		if s.runes[i] == '[' && s.runes[i+1] == '[' {
			depth++
			i += 2
			continue
		}
		if s.runes[i] == ']' && s.runes[i+1] == ']' {
			depth--
			if depth == 0 {
				return i
			}
			i += 2
			continue
		}
		i++
	}
	return -1
}

// scan consumes runes until it finds stopToken in a closing position (if
// stopToken is non-empty) or runs out of input. It returns the parsed
// children and whether stopToken was actually found.
func (s *inlineScanner) scan(stopToken string, wsDiscipline bool) ([]*Node, bool) {
	var out []*Node
	var textBuf []rune
	flush := func() {
		if len(textBuf) > 0 {
			out = append(out, newTextNode(s.parent, string(textBuf), 0))
			textBuf = nil
		}
	}

	for s.pos < len(s.runes) {
		if s.runes[s.pos] == '\\' && s.pos+1 < len(s.runes) {
			textBuf = append(textBuf, s.runes[s.pos+1])
			s.pos += 2
			continue
		}

		if stopToken != "" && s.matchToken(stopToken) {
			if !wsDiscipline || s.closeEligible(stopToken) {
				s.pos += len([]rune(stopToken))
				flush()
				return out, true
			}
		}

		if s.runes[s.pos] == '[' {
			if s.matchToken("[^") {
				for len(textBuf) > 0 && textBuf[len(textBuf)-1] == ' ' {
					textBuf = textBuf[:len(textBuf)-1]
				}
			}
			if node, ok := s.tryLink(); ok {
				flush()
				out = append(out, node)
				continue
			}
		}

		if s.runes[s.pos] == '(' {
			if node, ok := s.tryGroup(); ok {
				flush()
				out = append(out, node)
				continue
			}
		}

		if spec, tokLen, ok := s.matchAnyMarker(); ok {
			if !spec.wsDiscipline || s.openEligible(spec.token) {
				save := s.pos
				s.pos += tokLen
				children, closed := s.scan(spec.token, spec.wsDiscipline)
				if closed {
					flush()
					span := newNode(KindText, s.parent, s.parent.StartLine)
					span.Style = spec.style
					for _, c := range children {
						span.appendChild(c)
					}
					span.final = true
					out = append(out, span)
					continue
				}
				// no closer found anywhere ahead: the opener was not a
				// marker after all, fall back to literal text and let
				// the rest of the input be reprocessed without a stop
				// token in play.
				textBuf = append(textBuf, []rune(spec.token)...)
				s.pos = save + tokLen
				continue
			}
		}

		textBuf = append(textBuf, s.runes[s.pos])
		s.pos++
	}

	flush()
	return out, stopToken == ""
}

// tryLink dispatches '[' at the scanner's current position to one of
// the grouped-span, footnote-reference, or link forms.
func (s *inlineScanner) tryLink() (*Node, bool) {
	if s.matchToken("[[") {
		return s.tryDoubleGroup()
	}
	if s.matchToken("[^") {
		return s.tryFootnote()
	}
	closeIdx := s.findClose('[', ']', s.pos+1)
	if closeIdx < 0 {
		return nil, false
	}
	label := string(s.runes[s.pos+1 : closeIdx])
	after := closeIdx + 1

	if after < len(s.runes) && s.runes[after] == '[' {
		mClose := s.findClose('[', ']', after+1)
		if mClose < 0 {
			return nil, false
		}
		marker := string(s.runes[after+1 : mClose])
		node := newNode(KindLink, s.parent, s.parent.StartLine)
		node.Marker = marker
		for _, c := range formatInline(label, node) {
			node.appendChild(c)
		}
		node.final = true
		node.Registry().register(marker, node)
		s.pos = mClose + 1
		return node, true
	}

	if after < len(s.runes) && s.runes[after] == '(' {
		uClose := s.findClose('(', ')', after+1)
		if uClose < 0 {
			return nil, false
		}
		url := strings.TrimSpace(string(s.runes[after+1 : uClose]))
		node := newNode(KindLink, s.parent, s.parent.StartLine)
		node.URL = url
		node.Resolved = true
		for _, c := range formatInline(label, node) {
			node.appendChild(c)
		}
		node.final = true
		s.pos = uClose + 1
		return node, true
	}

	node := newNode(KindLink, s.parent, s.parent.StartLine)
	node.Marker = label
	node.URL = label
	node.Resolved = true
	for _, c := range formatInline(label, node) {
		node.appendChild(c)
	}
	node.final = true
	node.Registry().register(label, node)
	s.pos = closeIdx + 1
	return node, true
}

// tryFootnote parses "[^marker]". The preceding run of spaces is trimmed
// by the caller (scan) from its pending, not yet flushed text before
// this is called.
func (s *inlineScanner) tryFootnote() (*Node, bool) {
	closeIdx := s.findClose('[', ']', s.pos+2)
	if closeIdx < 0 {
		return nil, false
	}
	marker := string(s.runes[s.pos+2 : closeIdx])
	node := newNode(KindText, s.parent, s.parent.StartLine)
	node.Style = StyleFootnoteRef
	node.Marker = marker
	node.final = true
	node.Registry().register(marker, node)
	s.pos = closeIdx + 1
	return node, true
}

func (s *inlineScanner) tryDoubleGroup() (*Node, bool) {
	end := s.findDoubleClose(s.pos + 2)
	if end < 0 {
		return nil, false
	}
	inner := string(s.runes[s.pos+2 : end])
	node := newNode(KindText, s.parent, s.parent.StartLine)
	for _, c := range formatInline(inner, node) {
		node.appendChild(c)
	}
	node.final = true
	s.pos = end + 2
	return node, true
}

func (s *inlineScanner) tryGroup() (*Node, bool) {
	end := s.findClose('(', ')', s.pos+1)
	if end < 0 {
		return nil, false
	}
	inner := string(s.runes[s.pos+1 : end])
	node := newNode(KindText, s.parent, s.parent.StartLine)
	for _, c := range formatInline(inner, node) {
		node.appendChild(c)
	}
	node.final = true
	s.pos = end + 1
	return node, true
}
