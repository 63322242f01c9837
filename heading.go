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

// headingDef recognizes only the bracketed top-level form: a line of
// three or more '=' characters, the title text, and a closing line of
// '=' characters (spec.md §4.2). The underline forms (level 2-4) begin
// life as a Paragraph and are reclassified in place by
// finalizeParagraph once the underline is seen.
var headingDef = &blockDef{
	kind:   KindHeading,
	isType: isTypeHeadingBracket,
	check:  checkHeadingBracket,
	finalize: func(n *Node) (bool, error) {
		finalizeInlineText(n)
		return true, nil
	},
	blank: blankTerminate,
}

func isRunOf(line string, chars string, min int) bool {
	if len(line) < min {
		return false
	}
	for i := 0; i < len(line); i++ {
		if strings.IndexByte(chars, line[i]) < 0 {
			return false
		}
	}
	return true
}

func isTypeHeadingBracket(last, cur, next string) (bool, int, blockParams) {
	if isRunOf(cur, "=", 3) {
		return true, 0, blockParams{}
	}
	return false, 0, blockParams{}
}

// checkHeadingBracket accumulates the title line(s) until the closing
// bracket line is found.
func checkHeadingBracket(n *Node, stream *lineStream, line string, reset bool) (status, error) {
	if stream.lineNo() == n.StartLine {
		// the opening run of '=' itself; no title text yet.
		return statusSame, nil
	}
	if isRunOf(line, "=-", 3) {
		if !isRunOf(line, "=", 3) {
			return 0, badFormat(stream.lineNo(), "Top-level headings must end with = characters")
		}
		n.Level = 1
		return statusConclude, nil
	}
	n.appendLine(line)
	return statusSame, nil
}

// underlineLevel maps a heading underline's character to its raw
// (pre-HeaderSizes) level slot: '=' is 2, '-' is 3, '.' is 4.
func underlineLevel(ch byte) int {
	switch ch {
	case '=':
		return 2
	case '-':
		return 3
	case '.':
		return 4
	default:
		return 0
	}
}

// isHeadingUnderline reports whether line is a valid heading underline:
// a run of three or more of the same character drawn from "=-.".
func isHeadingUnderline(line string) (byte, bool) {
	if len(line) < 3 {
		return 0, false
	}
	ch := line[0]
	if ch != '=' && ch != '-' && ch != '.' {
		return 0, false
	}
	if !isRunOf(line, string(ch), 3) {
		return 0, false
	}
	return ch, true
}
