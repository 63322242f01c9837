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

func TestIsTypeIDLink(t *testing.T) {
	tests := []struct {
		line         string
		wantOK       bool
		wantMarker   string
		wantFootnote bool
	}{
		{"[ref]: http://example.com", true, "ref", false},
		{"[^1]: a footnote body", true, "1", true},
		{"not a definition", false, "", false},
	}
	for _, test := range tests {
		ok, _, params := isTypeIDLink("", test.line, "")
		if ok != test.wantOK {
			t.Errorf("isTypeIDLink(%q) ok = %v; want %v", test.line, ok, test.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if params.marker != test.wantMarker || params.footnote != test.wantFootnote {
			t.Errorf("isTypeIDLink(%q) = {marker: %q, footnote: %v}; want {%q, %v}",
				test.line, params.marker, params.footnote, test.wantMarker, test.wantFootnote)
		}
	}
}

func TestExternalLinkDefinitionTemplate(t *testing.T) {
	input := "Find [the docs][d] online.\n\n[d]: http://example.com/%s\n"
	doc, err := Parse(input, Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := doc.ToHTML()
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	want := `<p>Find <a href="http://example.com/the%20docs">the docs</a> online.</p>`
	if got != want {
		t.Errorf("ToHTML() = %q; want %q", got, want)
	}
}

func TestExternalLinkDefinitionRemovedFromTree(t *testing.T) {
	input := "[a][a]\n\n[a]: http://example.com\n"
	doc, err := Parse(input, Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	children := doc.Root().Children()
	if len(children) != 1 {
		t.Fatalf("len(children) = %d; want 1 (the definition node is discarded)", len(children))
	}
}

func TestFootnoteResolvesAndRenders(t *testing.T) {
	input := "See it[^1].\n\n[^1]: Extra info.\n"
	doc, err := Parse(input, Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := doc.ToHTML()
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	want := `<p>See it<sup><a href="#footnote-1">[1]</a></sup>.</p>` + "\n" +
		`<div class="footnote" id="footnote-1"><sup>1</sup>Extra info.</div>`
	if got != want {
		t.Errorf("ToHTML() =\n%s\nwant:\n%s", got, want)
	}
}

func TestFootnoteWithoutDefinitionIsUnresolved(t *testing.T) {
	doc, err := Parse("See it[^1].\n", Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = doc.ToHTML()
	serr, ok := err.(*Error)
	if !ok || serr.Kind != MissingLink {
		t.Errorf("ToHTML() error = %v; want a MissingLink *Error", err)
	}
}
