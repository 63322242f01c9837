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

import (
	"regexp"
	"strings"
)

var idLinkRe = regexp.MustCompile(`^\[([^\]]+)\]: (.*)$`)

// idLinkDef recognizes a link or footnote definition: `[marker]: text`
// at column 0, with continuation lines aligned under the marker's
// bracket/colon/space prefix (spec.md §4.9). A marker beginning with '^'
// is a footnote; any other is an external link definition.
var idLinkDef = &blockDef{
	kind:     KindIDLink,
	isType:   isTypeIDLink,
	check:    checkIDLink,
	finalize: finalizeIDLink,
	blank:    blankInclude,
}

func isTypeIDLink(last, cur, next string) (bool, int, blockParams) {
	m := idLinkRe.FindStringSubmatch(cur)
	if m == nil {
		return false, 0, blockParams{}
	}
	marker := m[1]
	footnote := strings.HasPrefix(marker, "^")
	if footnote {
		// Inline footnote references ([^1] in running text, see
		// inline.go's tryFootnote) register under the bare marker
		// with no leading caret; strip it here too so a definition
		// resolves the same referrers its reference registered.
		marker = strings.TrimPrefix(marker, "^")
	}
	return true, 0, blockParams{marker: marker, footnote: footnote}
}

func checkIDLink(n *Node, stream *lineStream, line string, reset bool) (status, error) {
	if len(n.lines()) == 0 {
		m := idLinkRe.FindStringSubmatch(line)
		if m == nil {
			return 0, badFormat(stream.lineNo(), "malformed link definition %q", line)
		}
		n.appendLine(m[2])
		return statusSame, nil
	}
	prefixWidth := len(n.Marker) + 4
	if n.Footnote {
		// n.Marker was stored without its leading '^' (see
		// isTypeIDLink), but the source line's bracket still carries
		// the caret, so the literal prefix is one column wider.
		prefixWidth++
	}
	if strings.TrimSpace(line) == "" {
		n.appendLine("")
		return statusSame, nil
	}
	if len(line) < prefixWidth || strings.TrimSpace(line[:prefixWidth]) != "" {
		return statusEnd, nil
	}
	n.appendLine(line[prefixWidth:])
	return statusSame, nil
}

// finalizeIDLink discards a resolved external definition (its referrers
// carry the resolved URL directly) but retains a footnote definition,
// whose body is reparsed as a mini-document and rendered in place
// (spec.md §4.9).
func finalizeIDLink(n *Node) (bool, error) {
	lines := n.lines()
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	reg := n.Registry()
	if n.Footnote {
		n.items = nil
		for _, s := range lines {
			n.appendLine(s)
		}
		if err := reparseAsMiniDocument(n, documentChildren); err != nil {
			return false, err
		}
		reg.resolveFootnote(n.Marker)
		return true, nil
	}
	reg.resolveLink(n.Marker, joinParagraphLines(lines))
	return false, nil
}
