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

// paragraphDef accumulates consecutive non-blank lines that no other
// block kind claims. A single-line paragraph immediately preceded by a
// blank line and immediately followed by a heading underline is
// reclassified into a Heading by finalize, following the original
// implementation's Paragraph.finalize (spec.md §9 design note).
var paragraphDef = &blockDef{
	kind:     KindParagraph,
	isType:   isTypeParagraph,
	check:    checkParagraph,
	finalize: finalizeParagraph,
	blank:    blankTerminate,
}

func isTypeParagraph(last, cur, next string) (bool, int, blockParams) {
	if strings.TrimSpace(cur) == "" {
		return false, 0, blockParams{}
	}
	if strings.TrimSpace(cur[:1]) == "" {
		return false, 0, blockParams{}
	}
	for _, def := range []*blockDef{listDef, blockQuoteDef, codeBlockDef, codeBlockIndentDef, ruleDef, headingDef, tableDef, detailDef, idLinkDef, imageDef} {
		if ok, _, _ := def.isType(last, cur, next); ok {
			return false, 0, blockParams{}
		}
	}
	return true, 0, blockParams{}
}

// checkParagraph implements the paragraph/heading-underline ambiguity
// resolution: an underline is only accepted as turning the paragraph
// into a heading when the paragraph is a single line preceded by a
// blank line (or by the start of the stream) and the underline is
// itself followed by a blank line or end of stream; a non-blank line
// after it is an AmbiguousFormat error. Otherwise the underline is not
// consumed and the paragraph simply ends.
func checkParagraph(n *Node, stream *lineStream, line string, reset bool) (status, error) {
	if _, ok := isHeadingUnderline(line); ok {
		// The paragraph's single line is at stream.pos-1, so the line
		// above the paragraph is at stream.pos-2.
		precededByBlank := stream.pos < 2 || strings.TrimSpace(stream.lines[stream.pos-2]) == ""
		if len(n.lines()) == 1 && precededByBlank {
			nextLine := stream.peek()
			if strings.TrimSpace(nextLine) != "" {
				return 0, ambiguousFormat(stream.lineNo()+1,
					"add a subsequent blank line for a header, or escape the first character of %q", nextLine)
			}
			n.appendLine(line)
			return statusConclude, nil
		}
		// multi-line paragraph body, or no blank line above the
		// paragraph: the underline-like line is not
		// consumed here, letting sibling dispatch try it (typically as
		// a Rule, since a bare run of '=' instead starts a fresh
		// bracketed Heading attempt).
		return statusEnd, nil
	}
	for _, def := range []*blockDef{listDef, blockQuoteDef, codeBlockDef, codeBlockIndentDef, ruleDef, headingDef, tableDef, detailDef, idLinkDef, imageDef} {
		last := stream.last()
		next := stream.peek()
		if ok, _, _ := def.isType(last, line, next); ok {
			return statusEnd, nil
		}
	}
	n.appendLine(line)
	return statusSame, nil
}

func finalizeParagraph(n *Node) (bool, error) {
	lines := n.lines()
	if ch, ok := isHeadingUnderline(lines[len(lines)-1]); ok && len(lines) == 2 {
		n.Kind = KindHeading
		n.Level = underlineLevel(ch)
		n.items = n.items[:0]
		n.appendLine(lines[0])
		finalizeInlineText(n)
		return true, nil
	}
	finalizeInlineText(n)
	return true, nil
}

// joinParagraphLines joins accumulated raw lines the way the original
// implementation does: a trailing hyphen on a line drops the hyphen and
// concatenates directly with the next line; otherwise lines are joined
// by a single space.
func joinParagraphLines(lines []string) string {
	var b strings.Builder
	for i, line := range lines {
		if i == 0 {
			b.WriteString(line)
			continue
		}
		prev := lines[i-1]
		if strings.HasSuffix(prev, "-") {
			s := b.String()
			b.Reset()
			b.WriteString(strings.TrimSuffix(s, "-"))
			b.WriteString(line)
		} else {
			b.WriteString(" ")
			b.WriteString(line)
		}
	}
	return b.String()
}

// finalizeInlineText runs the inline formatter over n's accumulated raw
// lines and replaces items with the resulting inline nodes. Used by any
// block kind whose text policy is "all" (spec.md §4.1 table).
func finalizeInlineText(n *Node) {
	lines := n.lines()
	text := joinParagraphLines(lines)
	n.items = nil
	for _, child := range formatInline(text, n) {
		n.appendChild(child)
	}
}
