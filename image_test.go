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

func TestIsTypeImage(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{`![alt](http://example.com/a.png)`, true},
		{`[![alt](http://example.com/a.png)](http://example.com/)`, true},
		{`[![alt](http://example.com/a.png)][ref]`, true},
		{`[not an image](http://example.com/)`, false},
		{`![alt](http://example.com/a.png "extra" "stuff")`, false},
	}
	for _, test := range tests {
		ok, _, _ := isTypeImage("", test.line, "")
		if ok != test.want {
			t.Errorf("isTypeImage(%q) = %v; want %v", test.line, ok, test.want)
		}
	}
}

func TestPlainImage(t *testing.T) {
	doc, err := Parse(`![a cat](http://example.com/cat.png)`+"\n", Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	children := doc.Root().Children()
	if len(children) != 1 || children[0].Kind != KindImage {
		t.Fatalf("Root().Children() = %v; want a single Image", children)
	}
	img := children[0]
	if img.URL != "http://example.com/cat.png" || img.Alt != "a cat" || img.Title != "" {
		t.Errorf("img = {URL: %q, Alt: %q, Title: %q}; want {http://example.com/cat.png, a cat, \"\"}", img.URL, img.Alt, img.Title)
	}
	got, err := doc.ToHTML()
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	want := `<img src="http://example.com/cat.png" alt="a cat">`
	if got != want {
		t.Errorf("ToHTML() = %q; want %q", got, want)
	}
}

func TestImageWithTitle(t *testing.T) {
	doc, err := Parse(`![a cat](http://example.com/cat.png "My Cat")`+"\n", Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := doc.ToHTML()
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	want := `<img src="http://example.com/cat.png" alt="a cat" title="My Cat">`
	if got != want {
		t.Errorf("ToHTML() = %q; want %q", got, want)
	}
}

func TestWrappedImageDirectLink(t *testing.T) {
	doc, err := Parse(`[![a cat](http://example.com/cat.png)](http://example.com/)`+"\n", Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	children := doc.Root().Children()
	if len(children) != 1 || children[0].Kind != KindLink {
		t.Fatalf("Root().Children() = %v; want a single Link (reclassified)", children)
	}
	link := children[0]
	if link.URL != "http://example.com/" || !link.Resolved {
		t.Errorf("link = {URL: %q, Resolved: %v}; want {http://example.com/, true}", link.URL, link.Resolved)
	}
	inner := link.Children()
	if len(inner) != 1 || inner[0].Kind != KindImage {
		t.Fatalf("link.Children() = %v; want a single Image", inner)
	}
	got, err := doc.ToHTML()
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	want := `<a href="http://example.com/"><img src="http://example.com/cat.png" alt="a cat"></a>`
	if got != want {
		t.Errorf("ToHTML() = %q; want %q", got, want)
	}
}

func TestWrappedImageReferenced(t *testing.T) {
	input := "[![a cat](http://example.com/cat.png)][ref]\n\n[ref]: http://example.com/\n"
	doc, err := Parse(input, Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := doc.ToHTML()
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	want := `<a href="http://example.com/"><img src="http://example.com/cat.png" alt="a cat"></a>`
	if got != want {
		t.Errorf("ToHTML() = %q; want %q", got, want)
	}
}

func TestWrappedImageUnresolvedReference(t *testing.T) {
	doc, err := Parse(`[![a cat](http://example.com/cat.png)][missing]`+"\n", Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = doc.ToHTML()
	serr, ok := err.(*Error)
	if !ok || serr.Kind != MissingLink {
		t.Errorf("ToHTML() error = %v; want a MissingLink *Error", err)
	}
}
