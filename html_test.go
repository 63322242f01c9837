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

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`<a & 'b' "c">`, "&lt;a &amp; &#39;b&#39; &quot;c&quot;&gt;"},
		{"plain text", "plain text"},
		{"", ""},
	}
	for _, test := range tests {
		got := escapeHTML(test.in)
		if got != test.want {
			t.Errorf("escapeHTML(%q) = %q; want %q", test.in, got, test.want)
		}
	}
}

func TestNormalizeURI(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"http://example.com/a b", "http://example.com/a%20b"},
		{"http://example.com/%2F", "http://example.com/%2F"},
		{"http://example.com/a%2gb", "http://example.com/a%252gb"},
		{"http://example.com/日本", "http://example.com/%E6%97%A5%E6%9C%AC"},
		{"http://example.com/safe-._~'()!*", "http://example.com/safe-._~'()!*"},
	}
	for _, test := range tests {
		got := normalizeURI(test.in)
		if got != test.want {
			t.Errorf("normalizeURI(%q) = %q; want %q", test.in, got, test.want)
		}
	}
}

func TestHeadingTag(t *testing.T) {
	tests := []struct {
		size int
		want string
	}{
		{0, "h1"},
		{1, "h1"},
		{3, "h3"},
		{6, "h6"},
		{9, "h6"},
	}
	for _, test := range tests {
		got := headingTag(test.size)
		if got != test.want {
			t.Errorf("headingTag(%d) = %q; want %q", test.size, got, test.want)
		}
	}
}

func TestIndentPad(t *testing.T) {
	if got := indentPad(0); got != "" {
		t.Errorf("indentPad(0) = %q; want %q", got, "")
	}
	if got := indentPad(2); got != "        " {
		t.Errorf("indentPad(2) = %q; want %q", got, "        ")
	}
}

func TestStyleTagsOrderAndBalance(t *testing.T) {
	open, close := styleTags(StyleBold | StyleItalic)
	if len(open) != 2 || len(close) != 2 {
		t.Fatalf("styleTags(Bold|Italic) = %v, %v; want 2 open and 2 close tags", open, close)
	}
	if open[0] != "strong" || open[1] != "em" {
		t.Errorf("open = %v; want [strong em]", open)
	}
	if close[0] != "em" || close[1] != "strong" {
		t.Errorf("close = %v; want [em strong] (reverse of open)", close)
	}
}
