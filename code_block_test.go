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

func TestParseFenceAttrs(t *testing.T) {
	tests := []struct {
		attrs       string
		wantLang    string
		wantClasses []string
		wantErr     bool
	}{
		{"", "", nil, false},
		{"go", "go", nil, false},
		{"{.go}", "go", []string{"go"}, false},
		{"{.go .numbered}", "go", []string{"go", "numbered"}, false},
		{"go lang", "", nil, true},
		{"{.go", "", nil, true},
		{"{go}", "", nil, true},
	}
	for _, test := range tests {
		lang, classes, err := parseFenceAttrs(test.attrs)
		if (err != nil) != test.wantErr {
			t.Errorf("parseFenceAttrs(%q) error = %v, want error = %v", test.attrs, err, test.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if lang != test.wantLang {
			t.Errorf("parseFenceAttrs(%q) lang = %q; want %q", test.attrs, lang, test.wantLang)
		}
		if len(classes) != len(test.wantClasses) {
			t.Errorf("parseFenceAttrs(%q) classes = %v; want %v", test.attrs, classes, test.wantClasses)
			continue
		}
		for i := range classes {
			if classes[i] != test.wantClasses[i] {
				t.Errorf("parseFenceAttrs(%q) classes = %v; want %v", test.attrs, classes, test.wantClasses)
				break
			}
		}
	}
}

func TestFencedCodeBlockWithLanguage(t *testing.T) {
	doc, err := Parse("```go\nfunc f() {}\n```\n", Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := doc.ToHTML()
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	want := `<pre><code class="language-go">func f() {}</code></pre>`
	if got != want {
		t.Errorf("ToHTML() = %q; want %q", got, want)
	}
}

func TestUnterminatedCodeFence(t *testing.T) {
	_, err := Parse("```go\nfunc f() {}\n", Options{})
	if err == nil {
		t.Fatal("Parse() succeeded; want BadFormat for a fence with no closing line")
	}
	serr, ok := err.(*Error)
	if !ok || serr.Kind != BadFormat {
		t.Errorf("Parse() error = %v; want a BadFormat *Error", err)
	}
}

func TestIndentedCodeBlock(t *testing.T) {
	doc, err := Parse("    line one\n    line two\n", Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	children := doc.Root().Children()
	if len(children) != 1 || children[0].Kind != KindCodeBlock {
		t.Fatalf("Root().Children() = %v; want a single CodeBlock", children)
	}
	want := "line one\nline two"
	if children[0].Text != want {
		t.Errorf("Text = %q; want %q", children[0].Text, want)
	}
}

// TestIndentedCodeAfterListRejected verifies spec.md §4.5: an indented
// block immediately following a list item's marker line is not treated
// as a code block (it would be ambiguous with the item's own hanging
// indent), so it falls through to another block kind instead.
func TestIndentedCodeAfterListRejected(t *testing.T) {
	ok, _, _ := isTypeCodeBlockIndented("- item", "    more", "")
	if ok {
		t.Error("isTypeCodeBlockIndented matched directly after a list marker line; want false")
	}
}
