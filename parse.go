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

// The generic block-parsing engine (spec.md §4.1).
//
// Each block kind supplies a blockDef of three operations — isType,
// check, and finalize — and the loop in parseBlock drives every kind
// identically: apply the node's indent band, honor its blank-line
// policy, dispatch check per line, and recurse into allowed blocks on
// CHILD. This is the Go replacement for the original's dynamic class
// reassignment: rather than mutating an object's class at runtime, a
// Node's Kind is fixed at construction and Heading/Paragraph
// reclassification is done with an explicit conversion inside
// paragraph's finalize (see paragraph.go).
package stonemark

import "strings"

// status is returned by a blockDef's check function for each line of
// interior content.
type status uint8

const (
	statusSame status = iota
	statusChild
	statusEnd
	statusConclude
)

// blankPolicy controls how a block reacts to a blank line.
type blankPolicy uint8

const (
	blankTerminate blankPolicy = iota // a blank line ends the node
	blankInclude                      // a blank line is captured as a text line
	blankReset                        // a blank line may or may not end the node
	blankSkip                         // blank lines are simply skipped (Document and mini-documents)
)

// blockParams carries the kind-specific construction arguments returned
// by isType, mirroring the **kwds dict of the original implementation.
type blockParams struct {
	marker     string
	listType   ListType
	delim      byte
	fenceLen   int
	lang       string
	classes    []string
	footnote   bool
	quoteDepth int
}

// blockDef describes one block kind's parsing behavior.
type blockDef struct {
	kind         Kind
	isType       func(last, cur, next string) (bool, int, blockParams)
	check        func(n *Node, stream *lineStream, line string, reset bool) (status, error)
	finalize     func(n *Node) (bool, error)
	allowed      []*blockDef
	blank        blankPolicy
	blankNeeded  bool // a non-blank, wrong-indent line is an error rather than a silent end
	prematureEnd func(n *Node, stream *lineStream) error
}

func applyParams(n *Node, p blockParams) {
	n.Marker = p.marker
	n.ListType = p.listType
	n.Delim = p.delim
	n.FenceLen = p.fenceLen
	n.Lang = p.lang
	n.Classes = p.classes
	n.Footnote = p.footnote
	n.QuoteDepth = p.quoteDepth
}

// parseBlock drives n's content consumption from stream under bd's
// rules, recursing into child blocks and finally finalizing n. indent is
// the total number of leading spaces n's content lines must carry.
func parseBlock(n *Node, bd *blockDef, stream *lineStream, indent int) error {
	lastContentLine := n.StartLine - 1
	reset := false

	for {
		if stream.atEnd() {
			if bd.prematureEnd != nil {
				return bd.prematureEnd(n, stream)
			}
			return closeNode(n, bd, lastContentLine)
		}
		raw := strings.TrimRight(stream.current(), " \t\r")
		if strings.TrimSpace(raw) == "" {
			switch bd.blank {
			case blankSkip:
				stream.consume()
				continue
			case blankInclude:
				n.appendLine("")
				stream.consume()
				lastContentLine = stream.lineNo() - 1
				continue
			case blankReset:
				reset = true
				stream.consume()
				continue
			default: // blankTerminate
				return closeNode(n, bd, lastContentLine)
			}
		}

		band := raw
		if indent > 0 {
			if len(band) < indent || strings.TrimSpace(band[:indent]) != "" {
				if bd.blankNeeded {
					if bd.prematureEnd != nil {
						return bd.prematureEnd(n, stream)
					}
					return indentError(stream.lineNo(), "bad indent (missing blank line above?)")
				}
				return closeNode(n, bd, lastContentLine)
			}
			band = band[indent:]
		}

		st, err := bd.check(n, stream, band, reset)
		if err != nil {
			return err
		}
		switch st {
		case statusSame:
			lastContentLine = stream.lineNo()
			stream.consume()
			reset = false
		case statusConclude:
			lastContentLine = stream.lineNo()
			stream.consume()
			n.EndLine = lastContentLine
			return finalizeNode(n, bd)
		case statusEnd:
			return closeNode(n, bd, lastContentLine)
		case statusChild:
			reset = false
			last, next := stream.last(), stream.peek()
			matched := false
			for _, childDef := range bd.allowed {
				ok, offset, params := childDef.isType(last, band, next)
				if !ok {
					continue
				}
				child := newNode(childDef.kind, n, stream.lineNo())
				if child.depth > child.Registry().depthLimit() {
					return badFormat(stream.lineNo(), "maximum nesting depth exceeded")
				}
				applyParams(child, params)
				n.appendChild(child)
				if err := parseBlock(child, childDef, stream, indent+offset); err != nil {
					return err
				}
				matched = true
				lastContentLine = child.EndLine
				// A child's own blank-line policy may have consumed one or
				// more blank lines internally (e.g. a list item ending at
				// a blank before a sibling of a different marker family).
				// Surface that gap to this node's own check on the next
				// line, the same signal a directly-seen blank line gives.
				if !stream.atEnd() && stream.lineNo() > child.EndLine+1 {
					reset = true
				}
				break
			}
			if !matched {
				return badFormat(stream.lineNo(), "no block type matched this line")
			}
		}
	}
}

func closeNode(n *Node, bd *blockDef, endLine int) error {
	if endLine < n.StartLine {
		endLine = n.StartLine
	}
	n.EndLine = endLine
	return finalizeNode(n, bd)
}

func finalizeNode(n *Node, bd *blockDef) error {
	keep, err := bd.finalize(n)
	if err != nil {
		return err
	}
	n.final = true
	if !keep && n.Parent != nil {
		n.Parent.removeChild(n)
	}
	return nil
}

// removeChild drops child from items; used by definition-only nodes
// (external link definitions) that return keep=false from finalize.
func (n *Node) removeChild(child *Node) {
	for i, item := range n.items {
		if node, ok := item.(*Node); ok && node == child {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return
		}
	}
}

// splitIndent splits line into its first n columns and the remainder,
// treating a short line as having no remainder.
func splitIndent(line string, n int) (head, tail string) {
	if len(line) <= n {
		return line, ""
	}
	return line[:n], line[n:]
}
