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

var (
	detailSummaryRe = regexp.MustCompile(`^--> ?(.*)$`)
	detailBodyRe    = regexp.MustCompile(`^--\| ?(.*)$`)
)

// detailBodyAllowed returns documentChildren with detailDef removed:
// nested detail blocks are rejected (spec.md §4.12). Computed lazily
// (rather than via init) since it depends on documentChildren, which is
// itself built during package initialization and must already be
// complete by the time any document is parsed.
func detailBodyAllowed() []*blockDef {
	out := make([]*blockDef, 0, len(documentChildren))
	for _, bd := range documentChildren {
		if bd != detailDef {
			out = append(out, bd)
		}
	}
	return out
}

// detailDef recognizes a collapsible section: an optional "-->" summary
// line followed by "--|" body lines, ending at the first blank line
// (spec.md §4.12).
var detailDef = &blockDef{
	kind:     KindDetail,
	isType:   isTypeDetail,
	check:    checkDetail,
	finalize: finalizeDetail,
	blank:    blankTerminate,
}

func isTypeDetail(last, cur, next string) (bool, int, blockParams) {
	if detailSummaryRe.MatchString(cur) || detailBodyRe.MatchString(cur) {
		return true, 0, blockParams{}
	}
	return false, 0, blockParams{}
}

func checkDetail(n *Node, stream *lineStream, line string, reset bool) (status, error) {
	if stream.lineNo() == n.StartLine {
		if m := detailSummaryRe.FindStringSubmatch(line); m != nil {
			n.HasSummary = true
			n.Caption = m[1]
			return statusSame, nil
		}
	}
	m := detailBodyRe.FindStringSubmatch(line)
	if m == nil {
		return statusEnd, nil
	}
	n.appendLine(m[1])
	return statusSame, nil
}

func finalizeDetail(n *Node) (bool, error) {
	startLine, endLine := n.StartLine, n.EndLine
	summaryText := n.Caption
	n.Caption = ""
	if err := reparseAsMiniDocument(n, detailBodyAllowed()); err != nil {
		return false, err
	}
	if n.HasSummary {
		summary := newNode(KindParagraph, n, startLine)
		for _, child := range formatInline(summaryText, n) {
			summary.appendChild(child)
		}
		summary.final = true
		summary.StartLine, summary.EndLine = startLine, startLine
		n.items = append([]any{summary}, n.items...)
	}
	n.StartLine, n.EndLine = startLine, endLine
	return true, nil
}
