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

import "testing"

func TestMatchUnordered(t *testing.T) {
	tests := []struct {
		line       string
		wantMarker string
		wantText   string
		wantOK     bool
	}{
		{"- item", "-", "item", true},
		{"+ item", "+", "item", true},
		{"* item", "*", "item", true},
		{"-item", "", "", false},
		{"", "", "", false},
	}
	for _, test := range tests {
		marker, text, ok := matchUnordered(test.line)
		if marker != test.wantMarker || text != test.wantText || ok != test.wantOK {
			t.Errorf("matchUnordered(%q) = (%q, %q, %v); want (%q, %q, %v)",
				test.line, marker, text, ok, test.wantMarker, test.wantText, test.wantOK)
		}
	}
}

func TestMatchOrdered(t *testing.T) {
	tests := []struct {
		line       string
		wantMarker string
		wantText   string
		wantOK     bool
	}{
		{"1. item", "1.", "item", true},
		{"12) item", "12)", "item", true},
		{"1.item", "", "", false},
		{"a. item", "", "", false},
	}
	for _, test := range tests {
		marker, text, ok := matchOrdered(test.line)
		if marker != test.wantMarker || text != test.wantText || ok != test.wantOK {
			t.Errorf("matchOrdered(%q) = (%q, %q, %v); want (%q, %q, %v)",
				test.line, marker, text, ok, test.wantMarker, test.wantText, test.wantOK)
		}
	}
}

func TestListMarkerChangeWithoutBlankIsError(t *testing.T) {
	_, err := Parse("- one\n+ two\n", Options{})
	if err == nil {
		t.Fatal("Parse() succeeded; want BadFormat for a mid-list marker change")
	}
	serr, ok := err.(*Error)
	if !ok || serr.Kind != BadFormat {
		t.Errorf("Parse() error = %v; want a BadFormat *Error", err)
	}
}

func TestListMarkerChangeAfterBlankStartsNewList(t *testing.T) {
	doc, err := Parse("- one\n\n+ two\n", Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	children := doc.Root().Children()
	if len(children) != 2 {
		t.Fatalf("len(children) = %d; want 2 separate lists", len(children))
	}
	for _, c := range children {
		if c.Kind != KindList {
			t.Errorf("child.Kind = %v; want KindList", c.Kind)
		}
	}
}

// TestNestedListRendering covers a loose item (one whose content is a
// paragraph plus a nested list, so the tight single-paragraph elision
// in html.go does not apply) alongside a tight sibling item.
func TestNestedListRendering(t *testing.T) {
	input := "- one\n  - nested\n- two\n"
	doc, err := Parse(input, Options{})
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	got, err := doc.ToHTML()
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	want := "<ul>\n" +
		"    <li>\n" +
		"        <p>one</p>\n" +
		"        <ul>\n" +
		"            <li>nested</li>\n" +
		"        </ul>\n" +
		"    </li>\n" +
		"    <li>two</li>\n" +
		"</ul>"
	if got != want {
		t.Errorf("ToHTML(%q) =\n%s\nwant:\n%s", input, got, want)
	}
}

func TestOrderedList(t *testing.T) {
	doc, err := Parse("1. first\n2. second\n", Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := doc.ToHTML()
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	want := "<ol>\n    <li>first</li>\n    <li>second</li>\n</ol>"
	if got != want {
		t.Errorf("ToHTML() = %q; want %q", got, want)
	}
}
