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

func TestIsRunOf(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"===", true},
		{"==", false},
		{"=-=", true},
		{"=a=", false},
		{"", false},
	}
	for _, test := range tests {
		if got := isRunOf(test.line, "=-", 3); got != test.want {
			t.Errorf("isRunOf(%q, \"=-\", 3) = %v; want %v", test.line, got, test.want)
		}
	}
}

func TestIsHeadingUnderline(t *testing.T) {
	tests := []struct {
		line    string
		wantCh  byte
		wantOK  bool
		wantLvl int
	}{
		{"===", '=', true, 2},
		{"---", '-', true, 3},
		{"...", '.', true, 4},
		{"--", 0, false, 0},
		{"-=-", 0, false, 0},
	}
	for _, test := range tests {
		ch, ok := isHeadingUnderline(test.line)
		if ch != test.wantCh || ok != test.wantOK {
			t.Errorf("isHeadingUnderline(%q) = (%q, %v); want (%q, %v)", test.line, ch, ok, test.wantCh, test.wantOK)
			continue
		}
		if ok {
			if got := underlineLevel(ch); got != test.wantLvl {
				t.Errorf("underlineLevel(%q) = %d; want %d", ch, got, test.wantLvl)
			}
		}
	}
}

func TestHeadingLevels(t *testing.T) {
	tests := []struct {
		name  string
		input string
		level int
		html  string
	}{
		{"bracket", "===\nOne\n===\n", 1, "<h1>One</h1>"},
		{"equals underline", "Two\n===\n", 2, "<h2>Two</h2>"},
		{"dash underline", "Three\n---\n", 3, "<h3>Three</h3>"},
		{"dot underline", "Four\n....\n", 4, "<h4>Four</h4>"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc, err := Parse(test.input, Options{})
			if err != nil {
				t.Fatalf("Parse(%q): %v", test.input, err)
			}
			children := doc.Root().Children()
			if len(children) != 1 || children[0].Kind != KindHeading {
				t.Fatalf("Root().Children() = %v; want a single Heading", children)
			}
			if children[0].Level != test.level {
				t.Errorf("Level = %d; want %d", children[0].Level, test.level)
			}
			got, err := doc.ToHTML()
			if err != nil {
				t.Fatalf("ToHTML: %v", err)
			}
			if got != test.html {
				t.Errorf("ToHTML() = %q; want %q", got, test.html)
			}
		})
	}
}

// TestAmbiguousUnderline verifies one half of spec.md §4.2's
// disambiguation rule: a single-line paragraph whose dash run is
// followed immediately (no blank line) by more text is rejected as
// ambiguous rather than silently guessed at.
func TestAmbiguousUnderline(t *testing.T) {
	_, err := Parse("Title\n---\nmore text\n", Options{})
	if err == nil {
		t.Fatal("Parse() succeeded; want AmbiguousFormat")
	}
	serr, ok := err.(*Error)
	if !ok || serr.Kind != AmbiguousFormat {
		t.Errorf("Parse() error = %v; want an AmbiguousFormat *Error", err)
	}
}
