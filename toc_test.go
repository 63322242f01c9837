// Copyright 2024 Ross Light
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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestHeadingsInDocumentOrder(t *testing.T) {
	input := "===\nIntro\n===\n\nbody\n\nDetails\n---\n\nmore\n"
	doc, err := Parse(input, Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := Headings(doc)
	want := []Heading{
		{Level: 1, Text: "Intro"},
		{Level: 3, Text: "Details"},
	}
	// Node is omitted from want since it is a pointer into doc's own
	// tree with no stable literal form; only Level/Text are compared.
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Heading{}, "Node")); diff != "" {
		t.Errorf("Headings(doc) mismatch (-want +got):\n%s", diff)
	}
}

func TestHeadingsNestedInsideBlockQuote(t *testing.T) {
	input := "> Title\n> ===\n"
	doc, err := Parse(input, Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := Headings(doc)
	if len(got) != 1 || got[0].Text != "Title" {
		t.Errorf("Headings(doc) = %+v; want a single heading Title", got)
	}
}

func TestWalkPreOrderVisitsEveryNode(t *testing.T) {
	doc, err := Parse("- one\n- two\n", Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var kinds []Kind
	Walk(doc.root, &WalkOptions{
		Pre: func(c *Cursor) bool {
			kinds = append(kinds, c.Node().Kind)
			return true
		},
	})
	// document, list, item "one" (with its paragraph body and that
	// paragraph's inline text), item "two" (likewise) —
	// reparseAsMiniDocument always wraps a list item's text in a
	// Paragraph, even for a single line, and Walk descends into the
	// paragraph's inline Text children too.
	want := []Kind{KindDocument, KindList, KindListItem, KindParagraph, KindText, KindListItem, KindParagraph, KindText}
	if len(kinds) != len(want) {
		t.Fatalf("visited %v; want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v; want %v", i, kinds[i], want[i])
		}
	}
}

func TestWalkPreFalseSkipsChildren(t *testing.T) {
	doc, err := Parse("- one\n- two\n", Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var visited int
	Walk(doc.root, &WalkOptions{
		Pre: func(c *Cursor) bool {
			visited++
			return c.Node().Kind != KindList
		},
	})
	// document, list — list's children (the items) are skipped.
	if visited != 2 {
		t.Errorf("visited = %d; want 2", visited)
	}
}
