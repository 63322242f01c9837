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
	"strings"

	"github.com/google/renameio"
)

// PageCSS is the fixed stylesheet embedded by [Document.WritePage] (spec.md
// §6: "the CSS asset is a fixed UTF-8 string").
const PageCSS = `body {
    font-family: sans-serif;
    max-width: 50rem;
    margin: 2rem auto;
    padding: 0 1rem;
    line-height: 1.5;
}
blockquote {
    border-left: 0.25rem solid #ccc;
    margin-left: 0;
    padding-left: 1rem;
    color: #555;
}
pre, code {
    font-family: monospace;
}
pre {
    background: #f6f8fa;
    padding: 0.5rem;
    overflow-x: auto;
}
table {
    border-collapse: collapse;
}
th, td {
    border: 1px solid #ccc;
    padding: 0.25rem 0.5rem;
}
.merged_rows, .merged_cols {
    background: #fafafa;
}
.footnote {
    font-size: 0.9em;
    border-top: 1px solid #ccc;
    margin-top: 1rem;
    padding-top: 0.25rem;
}
`

// WritePage renders doc to a standalone HTML page (head, title, an
// embedded copy of [PageCSS], body, tail) and writes it to path.
// Writing is atomic: the file is either fully replaced or left
// untouched, via [renameio.WriteFile].
func (d *Document) WritePage(path, title string) error {
	body, err := d.ToHTML()
	if err != nil {
		return err
	}
	if title == "" {
		title = d.Title()
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(escapeHTML(title))
	b.WriteString("</title>\n<style>\n")
	b.WriteString(PageCSS)
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")

	return renameio.WriteFile(path, []byte(b.String()), 0o644)
}
