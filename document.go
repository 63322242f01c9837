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
	"strings"

	"golang.org/x/text/unicode/norm"
)

// documentChildren lists every top-level block kind in dispatch order.
// Earlier entries are tried first, so the catch-all paragraphDef is
// always last.
var documentChildren = []*blockDef{
	headingDef,
	listDef,
	codeBlockDef,
	codeBlockIndentDef,
	blockQuoteDef,
	ruleDef,
	imageDef,
	idLinkDef,
	tableDef,
	detailDef,
	paragraphDef,
}

// documentDef drives the top-level parse: it has no content of its own,
// so every line dispatches straight to a child block, and leading (or
// inter-block) blank lines are simply skipped.
var documentDef = &blockDef{
	kind:     KindDocument,
	allowed:  documentChildren,
	blank:    blankSkip,
	check:    func(n *Node, stream *lineStream, line string, reset bool) (status, error) { return statusChild, nil },
	finalize: func(n *Node) (bool, error) { return true, nil },
}

// Options configures how a [Document] is built, mirroring spec.md §6's
// Document(text, first_header_is_title?, header_sizes?, links?)
// constructor.
type Options struct {
	// FirstHeaderIsTitle promotes the document's first top-level
	// heading to level 1 and stores its plain text as the Title. The
	// heading itself stays in the rendered body.
	FirstHeaderIsTitle bool

	// HeaderSizes maps a heading's raw level (1 = bracketed top-level
	// form, 2/3/4 = the '='/'-'/'.' underline forms) to the HTML
	// heading number (1-6) it renders as. A nil slice defaults to
	// {1, 2, 3, 4}. A 3-element slice is accepted for backward
	// compatibility and its last element is repeated for level 4.
	HeaderSizes []int

	// Links pre-seeds external link/image/footnote markers that have
	// no in-document [marker]: definition. A referrer whose marker is
	// defined in the document takes precedence over this map.
	Links map[string]string

	// MaxDepth overrides the nesting-depth guard (default 200). Set to
	// a positive value to tighten or loosen it; zero keeps the
	// default.
	MaxDepth int
}

// resolveHeaderSizes normalizes sizes to exactly 4 entries, applying the
// {1,2,3,4} default and the 3-tuple level-4 repeat alias (spec.md §9).
func resolveHeaderSizes(sizes []int) ([4]int, error) {
	switch len(sizes) {
	case 0:
		return [4]int{1, 2, 3, 4}, nil
	case 3:
		return [4]int{sizes[0], sizes[1], sizes[2], sizes[2]}, nil
	case 4:
		return [4]int{sizes[0], sizes[1], sizes[2], sizes[3]}, nil
	default:
		return [4]int{}, badFormat(0, "header_sizes must have 3 or 4 entries, got %d", len(sizes))
	}
}

// Document is a parsed StoneMark tree together with the title and
// registry state produced while parsing it.
type Document struct {
	root        *Node
	title       string
	headerSizes [4]int
}

// Root returns the document's top-level node. Its children are the
// parsed top-level blocks, in source order.
func (d *Document) Root() *Node { return d.root }

// Title returns the document's title, set only when Options.FirstHeaderIsTitle
// promoted the first top-level heading; otherwise the empty string.
func (d *Document) Title() string { return d.title }

// HeaderSize reports the HTML heading number (1-6) that a raw heading
// level (1-4) renders as.
func (d *Document) HeaderSize(level int) int {
	if level < 1 || level > 4 {
		return level
	}
	return d.headerSizes[level-1]
}

// Parse builds a Document from text. Parsing is strict: any structural
// violation is reported through an [Error] rather than recovered from.
func Parse(text string, opts Options) (*Document, error) {
	headerSizes, err := resolveHeaderSizes(opts.HeaderSizes)
	if err != nil {
		return nil, err
	}

	reg := newLinkRegistry()
	reg.maxDepth = opts.MaxDepth

	root := &Node{Kind: KindDocument, StartLine: 1, registry: reg}
	stream := newLineStream(text)
	if err := parseBlock(root, documentDef, stream, 0); err != nil {
		return nil, err
	}

	for marker, url := range opts.Links {
		for _, n := range reg.referrers[marker] {
			if n.Resolved {
				continue
			}
			n.URL = url
			n.Resolved = true
		}
	}

	doc := &Document{root: root, headerSizes: headerSizes}

	if opts.FirstHeaderIsTitle {
		for _, heading := range root.Children() {
			if heading.Kind == KindHeading {
				doc.title = norm.NFC.String(nodeText(heading))
				heading.Level = 1
				break
			}
		}
	}

	return doc, nil
}

// ToHTML renders the document to a standalone HTML fragment. It returns
// a [MissingLink] error if any link, image, or footnote reference was
// never resolved by a definition.
func (d *Document) ToHTML() (string, error) {
	if unresolved := d.root.Registry().unresolved(); len(unresolved) > 0 {
		n := unresolved[0]
		return "", missingLink(n.StartLine, "marker %q has no definition", n.Marker)
	}
	var b strings.Builder
	for _, child := range d.root.Children() {
		renderBlock(&b, child, d, 0)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
