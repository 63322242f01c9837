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

// Package stonemark parses a strict, line-oriented markup dialect into a
// typed document tree and serializes that tree to HTML.
package stonemark

// Kind identifies the semantic type of a [Node].
type Kind uint8

const (
	KindDocument Kind = 1 + iota
	KindHeading
	KindParagraph
	KindList
	KindListItem
	KindCodeBlock
	KindBlockQuote
	KindRule
	KindImage
	KindIDLink
	KindLink
	KindText
	KindTable
	KindCell
	KindDetail
)

// ListType distinguishes ordered from unordered [Node] lists.
type ListType uint8

const (
	Unordered ListType = 1 + iota
	Ordered
)

// TextStyle is a bitmask of inline styles applied to a [KindText] node.
type TextStyle uint16

const (
	StyleBold TextStyle = 1 << iota
	StyleItalic
	StyleUnderline
	StyleHighlight
	StyleStrike
	StyleSub
	StyleSuper
	StyleCode
	StyleMonospace
	StyleFootnoteRef
)

// Node is a single element of a parsed document tree. Every block,
// table cell, and inline span produced by StoneMark is a Node: the
// kind tag (see [Kind]) determines which of the kind-specific fields
// below are meaningful.
//
// Node follows spec.md's lifecycle: a node is created with start_line
// set and pushed onto its parent's items, mutated by repeated calls to
// check as lines are consumed, and then finalized exactly once — after
// which items holds only *Node children, never raw line strings.
type Node struct {
	Kind      Kind
	Parent    *Node
	StartLine int
	EndLine   int

	registry *LinkRegistry
	items    []any // *Node once final; may hold string (raw line) while parsing
	final    bool
	depth    int // nesting depth, for the recursion guard in parse.go

	// Heading
	Level int

	// List / ListItem / IDLink (footnote) / CodeBlock (fenced) / Rule
	Marker   string
	ListType ListType
	Delim    byte

	// ListItem hanging indent width; fenced CodeBlock minimum closing
	// fence length
	Indent int

	// CodeBlock
	FenceLen int
	Lang     string
	Classes  []string

	// BlockQuote
	QuoteDepth int

	// Image / Link / IDLink
	URL      string
	Title    string
	Alt      string
	Footnote bool // IDLink: marker began with '^'
	Resolved bool // Link/Image: URL is known

	// Text
	Text  string
	Style TextStyle

	// Table / Cell
	Caption          string
	CaptionClass     string
	CaptionID        string
	Section          tableSection
	ColSpan, RowSpan int
	MergeRight       bool
	MergeDown        bool
	TableRows        [][]*Node // Table only: cells grouped by source row, for <tr> emission

	// Detail
	HasSummary bool // a "-->" line introduced this block, vs. starting directly on "--|"
}

// newNode creates a Node of the given kind as a child of parent,
// inheriting parent's link registry, and records startLine. The caller
// is responsible for appending it to parent's items.
func newNode(kind Kind, parent *Node, startLine int) *Node {
	n := &Node{
		Kind:      kind,
		Parent:    parent,
		StartLine: startLine,
	}
	if parent != nil {
		n.registry = parent.registry
		n.depth = parent.depth + 1
	}
	return n
}

// Registry returns the document-wide link registry shared by every node
// in the tree.
func (n *Node) Registry() *LinkRegistry {
	if n == nil {
		return nil
	}
	return n.registry
}

// Final reports whether finalize has run for this node.
func (n *Node) Final() bool {
	return n != nil && n.final
}

// Children returns the node's finalized child nodes. Calling Children
// before finalize has run only returns the *Node items appended so far
// (raw line strings, if any remain, are skipped).
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	out := make([]*Node, 0, len(n.items))
	for _, item := range n.items {
		if child, ok := item.(*Node); ok {
			out = append(out, child)
		}
	}
	return out
}

// appendChild appends a fully constructed child node to items.
func (n *Node) appendChild(child *Node) {
	n.items = append(n.items, child)
}

// appendLine appends a raw source line to items during parsing.
func (n *Node) appendLine(line string) {
	n.items = append(n.items, line)
}

// lines returns the raw string items accumulated so far, in order,
// ignoring any *Node entries.
func (n *Node) lines() []string {
	out := make([]string, 0, len(n.items))
	for _, item := range n.items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// dropLastLine removes the most recently appended raw line, if any.
func (n *Node) dropLastLine() {
	if len(n.items) == 0 {
		return
	}
	if _, ok := n.items[len(n.items)-1].(string); ok {
		n.items = n.items[:len(n.items)-1]
	}
}

// tableSection tags which part of a table a row or cell belongs to.
type tableSection uint8

const (
	sectionBody tableSection = iota
	sectionHead
	sectionFoot
)
