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

// LinkRegistry is the document-wide mapping from marker string to the
// ordered list of inline nodes referring to it (spec.md §3.4). It is
// created once per [Document] and shared by reference with every node
// parsed underneath it: during parsing it is a borrowed mutable handle,
// and during HTML emission it is read only to detect unresolved
// referrers.
type LinkRegistry struct {
	referrers map[string][]*Node
	order     []string // markers in first-registration order
	maxDepth  int       // nesting guard; 0 means defaultMaxDepth
}

// defaultMaxDepth bounds block nesting (list-in-list-in-quote, and so
// on) so a pathological or adversarial input fails fast with a
// BadFormat error instead of recursing until the goroutine stack
// overflows (spec.md §9).
const defaultMaxDepth = 200

func newLinkRegistry() *LinkRegistry {
	return &LinkRegistry{referrers: make(map[string][]*Node)}
}

func (reg *LinkRegistry) depthLimit() int {
	if reg == nil || reg.maxDepth <= 0 {
		return defaultMaxDepth
	}
	return reg.maxDepth
}

// register records n as a referrer of marker. Called for [KindLink]
// nodes (including wrapped images) and footnote references as soon as they are
// constructed, regardless of whether a definition has been seen yet.
func (reg *LinkRegistry) register(marker string, n *Node) {
	if reg == nil || marker == "" {
		return
	}
	if _, ok := reg.referrers[marker]; !ok {
		reg.order = append(reg.order, marker)
	}
	reg.referrers[marker] = append(reg.referrers[marker], n)
}

// resolveLink binds every referrer of marker to a URL derived from
// template, marking each final. A template containing "%s" is expanded
// per referrer by substituting that referrer's own link text, so
// "[d]: http://example.com/%s" paired with "[the docs][d]" resolves to
// http://example.com/the docs. Called by an external IDLink
// definition's finalize (link_definition.go).
func (reg *LinkRegistry) resolveLink(marker, template string) {
	if reg == nil {
		return
	}
	for _, n := range reg.referrers[marker] {
		url := template
		if strings.Contains(template, "%s") {
			url = fmt.Sprintf(template, nodeText(n))
		}
		n.URL = url
		n.Resolved = true
	}
}

// resolveFootnote marks every referrer of marker (a footnote reference)
// as resolved; the footnote body itself is rendered from the retained
// IDLink node, addressed by marker at render time.
func (reg *LinkRegistry) resolveFootnote(marker string) {
	if reg == nil {
		return
	}
	for _, n := range reg.referrers[marker] {
		n.Resolved = true
	}
}

// unresolved returns every referrer node, across all markers, that was
// never resolved by a definition. Consulted at HTML-emission time so
// that forward references earlier in the document can still resolve
// (spec.md §7).
func (reg *LinkRegistry) unresolved() []*Node {
	if reg == nil {
		return nil
	}
	var out []*Node
	for _, marker := range reg.order {
		for _, n := range reg.referrers[marker] {
			if !n.Resolved {
				out = append(out, n)
			}
		}
	}
	return out
}
