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
	"fmt"
	"strings"
)

// codeBlockDef recognizes the fenced form: an opening run of three or
// more identical '`' or '~' characters, optional attributes, and a
// closing line of at least as many of the same character (spec.md
// §4.5). Content between the fences, including blank lines, is kept
// verbatim.
var codeBlockDef = &blockDef{
	kind:   KindCodeBlock,
	isType: isTypeCodeBlockFenced,
	check:  checkCodeBlockFenced,
	finalize: func(n *Node) (bool, error) {
		n.Text = strings.Join(n.lines(), "\n")
		n.items = nil
		return true, nil
	},
	blank: blankInclude,
	prematureEnd: func(n *Node, stream *lineStream) error {
		return badFormat(stream.lineNo(), "unterminated code fence opened at line %d", n.StartLine)
	},
}

// codeBlockIndentDef recognizes the indented form: every line prefixed
// with exactly four spaces. It is never offered directly after a list
// item's own marker line, matching spec.md §4.5's "indented code blocks
// immediately following a list are rejected".
var codeBlockIndentDef = &blockDef{
	kind:   KindCodeBlock,
	isType: isTypeCodeBlockIndented,
	check:  checkCodeBlockIndented,
	finalize: func(n *Node) (bool, error) {
		lines := n.lines()
		for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
			lines = lines[:len(lines)-1]
		}
		n.Text = strings.Join(lines, "\n")
		n.items = nil
		return true, nil
	},
	blank: blankInclude,
}

func fenceRun(line string) (delim byte, runLen int) {
	if line == "" {
		return 0, 0
	}
	ch := line[0]
	if ch != '`' && ch != '~' {
		return 0, 0
	}
	n := 0
	for n < len(line) && line[n] == ch {
		n++
	}
	return ch, n
}

func isTypeCodeBlockFenced(last, cur, next string) (bool, int, blockParams) {
	delim, runLen := fenceRun(cur)
	if runLen < 3 {
		return false, 0, blockParams{}
	}
	return true, 0, blockParams{delim: delim, fenceLen: runLen}
}

// checkCodeBlockFenced treats its first call as the opening fence line:
// it parses the attribute specifier and records it without capturing the
// fence itself as content.
func checkCodeBlockFenced(n *Node, stream *lineStream, line string, reset bool) (status, error) {
	if stream.lineNo() == n.StartLine {
		attrs := strings.TrimSpace(line[n.FenceLen:])
		lang, classes, err := parseFenceAttrs(attrs)
		if err != nil {
			return 0, badFormat(stream.lineNo(), "%s", err)
		}
		n.Lang = lang
		n.Classes = classes
		n.Indent = n.FenceLen
		return statusSame, nil
	}
	if d, runLen := fenceRun(line); d == n.Delim && runLen >= n.Indent && strings.TrimSpace(line[runLen:]) == "" {
		return statusConclude, nil
	}
	n.appendLine(line)
	return statusSame, nil
}

// parseFenceAttrs parses a fence's attribute specifier: either a bare
// language identifier with no whitespace, or a brace-delimited list of
// dot-prefixed classes whose first entry is conventionally the language.
func parseFenceAttrs(attrs string) (lang string, classes []string, err error) {
	if attrs == "" {
		return "", nil, nil
	}
	if strings.HasPrefix(attrs, "{") {
		if !strings.HasSuffix(attrs, "}") {
			return "", nil, fmt.Errorf("mismatched braces in code fence attributes %q", attrs)
		}
		inner := strings.TrimSpace(attrs[1 : len(attrs)-1])
		if inner == "" {
			return "", nil, nil
		}
		for _, tok := range strings.Fields(inner) {
			if !strings.HasPrefix(tok, ".") || len(tok) < 2 {
				return "", nil, fmt.Errorf("code fence class %q must start with '.'", tok)
			}
			classes = append(classes, tok[1:])
		}
		if len(classes) > 0 {
			lang = classes[0]
		}
		return lang, classes, nil
	}
	if strings.ContainsAny(attrs, " \t") {
		return "", nil, fmt.Errorf("bare code fence language %q must not contain whitespace", attrs)
	}
	return attrs, nil, nil
}

func isTypeCodeBlockIndented(last, cur, next string) (bool, int, blockParams) {
	if len(cur) < 4 || strings.TrimSpace(cur[:4]) != "" {
		return false, 0, blockParams{}
	}
	if _, _, ok := matchUnordered(last); ok {
		return false, 0, blockParams{}
	}
	if _, _, ok := matchOrdered(last); ok {
		return false, 0, blockParams{}
	}
	return true, 4, blockParams{}
}

func checkCodeBlockIndented(n *Node, stream *lineStream, line string, reset bool) (status, error) {
	n.appendLine(line)
	return statusSame, nil
}
