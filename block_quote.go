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

// blockQuoteDef recognizes lines beginning with a run of '>' followed by
// exactly one space (spec.md §4.7). Depth changes are modeled as tree
// depth rather than column indent: a deeper run of '>' opens a nested
// BlockQuote child, a shallower one ends the current level and lets the
// ancestor at that depth continue.
var blockQuoteDef = &blockDef{
	kind:     KindBlockQuote,
	isType:   isTypeBlockQuote,
	check:    checkBlockQuote,
	finalize: finalizeBlockQuote,
	blank:    blankReset,
}

func init() {
	blockQuoteDef.allowed = []*blockDef{blockQuoteDef}
}

// parseQuotePrefix splits a line into its '>' run depth and the text
// following the single mandatory space. A bare run of '>' with nothing
// after it is treated as a blank interior line at that depth.
func parseQuotePrefix(line string) (level int, rest string, ok bool) {
	i := 0
	for i < len(line) && line[i] == '>' {
		i++
	}
	if i == 0 {
		return 0, "", false
	}
	if i >= len(line) {
		return i, "", true
	}
	if line[i] != ' ' {
		return 0, "", false
	}
	return i, line[i+1:], true
}

func isTypeBlockQuote(last, cur, next string) (bool, int, blockParams) {
	level, _, ok := parseQuotePrefix(cur)
	if !ok {
		return false, 0, blockParams{}
	}
	return true, 0, blockParams{quoteDepth: level}
}

func checkBlockQuote(n *Node, stream *lineStream, line string, reset bool) (status, error) {
	level, rest, ok := parseQuotePrefix(line)
	if !ok {
		return statusEnd, nil
	}
	if level > n.QuoteDepth {
		return statusChild, nil
	}
	if level < n.QuoteDepth {
		return statusEnd, nil
	}
	n.appendLine(rest)
	return statusSame, nil
}

// finalizeBlockQuote reparses each run of same-depth raw text into block
// children, the same way reparseAsMiniDocument does for simpler blocks,
// but block quotes also accumulate already-finalized deeper BlockQuote
// children directly in items (via checkBlockQuote's statusChild branch),
// interleaved with the raw text around them. Those already-built nodes
// must be kept in place rather than discarded by a blanket reparse.
func finalizeBlockQuote(n *Node) (bool, error) {
	startLine, endLine := n.StartLine, n.EndLine
	items := n.items
	n.items = nil

	segStart := startLine
	var textLines []string
	flush := func() error {
		if len(textLines) == 0 {
			return nil
		}
		nodes, err := parseBlockNodes(n, textLines, segStart, documentChildren)
		textLines = nil
		if err != nil {
			return err
		}
		for _, child := range nodes {
			n.appendChild(child)
		}
		return nil
	}

	for _, item := range items {
		switch v := item.(type) {
		case string:
			textLines = append(textLines, v)
		case *Node:
			if err := flush(); err != nil {
				return false, err
			}
			n.appendChild(v)
			segStart = v.EndLine + 1
		}
	}
	if err := flush(); err != nil {
		return false, err
	}

	n.StartLine, n.EndLine = startLine, endLine
	return true, nil
}
