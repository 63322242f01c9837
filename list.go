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
	uListRe = regexp.MustCompile(`^([-+*]) (.*)$`)
	oListRe = regexp.MustCompile(`^([0-9]+)([.)]) (.*)$`)
)

// listItemMiniAllowed is the block-kind set an item's collected content
// is reparsed against: paragraphs, nested lists, code blocks, and images
// (spec.md §4.4), nothing wider.
var listItemMiniAllowed []*blockDef

func init() {
	listItemMiniAllowed = []*blockDef{codeBlockDef, codeBlockIndentDef, imageDef, listDef, paragraphDef}
}

// listDef recognizes a run of list items sharing one marker family. A
// list never matches directly: is_type only fires for the item that
// starts it, and the list itself is created by the generic engine before
// its first item is dispatched.
var listDef = &blockDef{
	kind:    KindList,
	isType:  isTypeList,
	check:   checkList,
	allowed: []*blockDef{listItemDef},
	finalize: func(n *Node) (bool, error) {
		return true, nil
	},
	blank: blankReset,
}

var listItemDef = &blockDef{
	kind:   KindListItem,
	isType: isTypeListItem,
	check:  checkListItem,
	finalize: func(n *Node) (bool, error) {
		return true, reparseAsMiniDocument(n, listItemMiniAllowed)
	},
	blank: blankReset,
}

func matchUnordered(line string) (marker, text string, ok bool) {
	m := uListRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

func matchOrdered(line string) (marker, text string, ok bool) {
	m := oListRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1] + m[2], m[3], true
}

func isTypeList(last, cur, next string) (bool, int, blockParams) {
	if marker, _, ok := matchUnordered(cur); ok {
		return true, 0, blockParams{marker: marker, listType: Unordered}
	}
	if marker, _, ok := matchOrdered(cur); ok {
		return true, 0, blockParams{marker: marker, listType: Ordered}
	}
	return false, 0, blockParams{}
}

func isTypeListItem(last, cur, next string) (bool, int, blockParams) {
	return isTypeList(last, cur, next)
}

// checkList decides whether a line continues the running list (as
// another item, dispatched via CHILD) or ends it: a marker from the
// other family, or the same family with a different marker character
// ('-', '+', '*' for unordered lists; the '.' or ')' delimiter for
// ordered lists, whose numbers may differ per item) is a hard error
// unless a blank line separated the two, in which case it ends this
// list and starts a new sibling list.
func checkList(n *Node, stream *lineStream, line string, reset bool) (status, error) {
	var marker string
	var matchedType ListType
	if m, _, ok := matchUnordered(line); ok {
		marker, matchedType = m, Unordered
	} else if m, _, ok := matchOrdered(line); ok {
		marker, matchedType = m, Ordered
	} else {
		return statusEnd, nil
	}
	if matchedType != n.ListType {
		return statusEnd, nil
	}
	sameMarker := marker == n.Marker
	if matchedType == Ordered {
		sameMarker = marker[len(marker)-1] == n.Marker[len(n.Marker)-1]
	}
	if !sameMarker {
		if reset {
			return statusEnd, nil
		}
		return 0, badFormat(stream.lineNo(), "list marker changed from %q to %q without an intervening blank line", n.Marker, marker)
	}
	return statusChild, nil
}

// checkListItem accumulates an item's raw content lines. The first line
// is the one that carried the marker itself; every later line must begin
// with at least the item's hanging indent (marker width plus one space)
// to continue the item, and that indent is stripped from it. A line with
// less indentation, or a new marker line, ends the item.
func checkListItem(n *Node, stream *lineStream, line string, reset bool) (status, error) {
	if len(n.lines()) == 0 {
		var text string
		var ok bool
		if n.ListType == Unordered {
			_, text, ok = matchUnordered(line)
		} else {
			_, text, ok = matchOrdered(line)
		}
		if !ok {
			return 0, badFormat(stream.lineNo(), "malformed list item")
		}
		n.Indent = len(n.Marker) + 1
		n.appendLine(text)
		return statusSame, nil
	}
	if _, _, ok := matchUnordered(line); ok {
		return statusEnd, nil
	}
	if _, _, ok := matchOrdered(line); ok {
		return statusEnd, nil
	}
	if len(line) < n.Indent || strings.TrimSpace(line[:n.Indent]) != "" {
		return statusEnd, nil
	}
	n.appendLine(line[n.Indent:])
	return statusSame, nil
}
