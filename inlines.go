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

// markerSpec describes one inline delimiter from spec.md §4.10's marker
// table. Entries are tried in order, so multi-character tokens that
// share a prefix with a shorter one (e.g. "**" and "*") are listed
// first.
type markerSpec struct {
	token        string
	style        TextStyle
	wsDiscipline bool
}

var inlineMarkers = []markerSpec{
	{"***", StyleBold | StyleItalic, true},
	{"**", StyleBold, true},
	{"__", StyleUnderline, true},
	{"==", StyleHighlight, true},
	{"~~", StyleStrike, true},
	{"``", StyleMonospace, true},
	{"*", StyleItalic, true},
	{"~", StyleSub, false},
	{"^", StyleSuper, false},
	{"`", StyleCode, false},
}

const inlinePunct = ".,?!'\""

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func newTextNode(parent *Node, text string, style TextStyle) *Node {
	n := newNode(KindText, parent, parent.StartLine)
	n.Text = text
	n.Style = style
	n.final = true
	return n
}

// nodeText flattens a node's Text descendants into plain text. Used for
// %s substitution in templated link definitions and for image alt text.
func nodeText(n *Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*Node)
	walk = func(n *Node) {
		if n.Kind == KindText && n.Text != "" {
			b.WriteString(n.Text)
			return
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// inlinePlainText formats text and immediately flattens the result back
// to plain text, for attributes (like an image's alt text) that cannot
// carry nested markup.
func inlinePlainText(text string, parent *Node) string {
	var b strings.Builder
	for _, n := range formatInline(text, parent) {
		b.WriteString(nodeText(n))
	}
	return b.String()
}
