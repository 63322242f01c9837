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

// miniDocDef drives a mini-document reparse: it owns no text of its own,
// it only dispatches every line to one of allowed's block kinds, exactly
// like the real top-level document (spec.md §4.4, §4.7, §4.9 "reparsed as
// a mini-document").
func miniDocDef(allowed []*blockDef) *blockDef {
	return &blockDef{
		allowed: allowed,
		blank:   blankSkip,
		check: func(n *Node, stream *lineStream, line string, reset bool) (status, error) {
			return statusChild, nil
		},
		finalize: func(n *Node) (bool, error) {
			return true, nil
		},
	}
}

// reparseAsMiniDocument replaces n's accumulated raw lines with the
// children produced by parsing those lines as a standalone mini-document
// restricted to allowed block kinds. The nested stream is numbered from
// n's StartLine (via lineOffset), and n's own StartLine/EndLine are
// restored afterwards, so the nested parse does not change them.
func reparseAsMiniDocument(n *Node, allowed []*blockDef) error {
	raw := n.lines()
	startLine, endLine := n.StartLine, n.EndLine
	n.items = nil
	if strings.TrimSpace(strings.Join(raw, "\n")) == "" {
		n.StartLine, n.EndLine = startLine, endLine
		return nil
	}
	stream := newLineStream(strings.Join(raw, "\n"))
	stream.lineOffset = startLine - 1
	if err := parseBlock(n, miniDocDef(allowed), stream, 0); err != nil {
		return err
	}
	n.StartLine, n.EndLine = startLine, endLine
	return nil
}

// parseBlockNodes reparses lines as a standalone run of block-level
// content restricted to allowed kinds, anchored at startLine for line
// numbering, and returns the resulting nodes parented to parent — as
// if they had been appended to parent directly during the original
// parse. Used where a node's own content is not purely raw text (see
// blockQuoteDef's self-nesting, block_quote.go) so reparseAsMiniDocument's
// "replace everything" approach would discard already-built children.
func parseBlockNodes(parent *Node, lines []string, startLine int, allowed []*blockDef) ([]*Node, error) {
	if strings.TrimSpace(strings.Join(lines, "\n")) == "" {
		return nil, nil
	}
	holder := &Node{Kind: parent.Kind, StartLine: startLine, registry: parent.registry, depth: parent.depth}
	stream := newLineStream(strings.Join(lines, "\n"))
	stream.lineOffset = startLine - 1
	if err := parseBlock(holder, miniDocDef(allowed), stream, 0); err != nil {
		return nil, err
	}
	children := holder.Children()
	for _, c := range children {
		c.Parent = parent
	}
	return children, nil
}
