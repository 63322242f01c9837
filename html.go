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
	"strconv"
	"strings"
	"unicode/utf8"

	"go4.org/bytereplacer"
	"golang.org/x/net/html/atom"
)

// htmlEscaper replaces the five characters spec.md §7 requires to always
// appear in entity form within rendered text.
var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&#39;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

func escapeHTML(s string) string {
	return string(htmlEscaper.Replace([]byte(s)))
}

// normalizeURI percent-encodes everything outside RFC 3986's unreserved
// set and its reserved set minus '[' and ']' (which are encoded too),
// leaving an already-encoded "%XX" sequence alone.
func normalizeURI(s string) string {
	const safeSet = `;/?:@&=+$,-_.!~*'()#`
	var b strings.Builder
	b.Grow(len(s))
	skip := 0
	var buf [utf8.UTFMax]byte
	for i, c := range s {
		if skip > 0 {
			skip--
			b.WriteRune(c)
			continue
		}
		switch {
		case c == '%':
			if i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
				skip = 2
				b.WriteByte('%')
			} else {
				b.WriteString("%25")
			}
		case (c < 0x80 && (isASCIILetter(byte(c)) || isASCIIDigit(byte(c)))) || strings.ContainsRune(safeSet, c):
			b.WriteRune(c)
		default:
			n := utf8.EncodeRune(buf[:], c)
			for _, bb := range buf[:n] {
				b.WriteByte('%')
				b.WriteByte(hexDigit(bb >> 4))
				b.WriteByte(hexDigit(bb & 0x0f))
			}
		}
	}
	return b.String()
}

func isASCIILetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }
func isASCIIDigit(c byte) bool  { return '0' <= c && c <= '9' }
func isHexDigit(c byte) bool    { return isASCIIDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F' }

func hexDigit(x byte) byte {
	if x < 0xa {
		return '0' + x
	}
	return 'A' + x - 0xa
}

func indentPad(depth int) string {
	return strings.Repeat("    ", depth)
}

// renderBlock appends n's HTML, indented four spaces per depth, to b. n
// must be a finalized block-level node (any [Kind] but [KindText] and
// [KindCell], which are handled by their containing block). Lists and
// block quotes indent their interior content one level deeper (spec.md
// §6's "HTML output conventions").
func renderBlock(b *strings.Builder, n *Node, doc *Document, depth int) {
	pad := indentPad(depth)
	switch n.Kind {
	case KindHeading:
		tag := headingTag(doc.HeaderSize(n.Level))
		b.WriteString(pad + "<" + tag + ">")
		renderInlineChildren(b, n)
		b.WriteString("</" + tag + ">\n")
	case KindParagraph:
		b.WriteString(pad + "<" + atom.P.String() + ">")
		renderInlineChildren(b, n)
		b.WriteString("</" + atom.P.String() + ">\n")
	case KindRule:
		b.WriteString(pad + "<" + atom.Hr.String() + ">\n")
	case KindList:
		tag := atom.Ul.String()
		if n.ListType == Ordered {
			tag = atom.Ol.String()
		}
		b.WriteString(pad + "<" + tag + ">\n")
		for _, item := range n.Children() {
			renderBlock(b, item, doc, depth+1)
		}
		b.WriteString(pad + "</" + tag + ">\n")
	case KindListItem:
		children := n.Children()
		if len(children) == 1 && children[0].Kind == KindParagraph {
			// A tight item (its content is a single paragraph) renders
			// on one line, eliding the paragraph wrapper.
			b.WriteString(pad + "<" + atom.Li.String() + ">")
			renderInlineChildren(b, children[0])
			b.WriteString("</" + atom.Li.String() + ">\n")
			return
		}
		b.WriteString(pad + "<" + atom.Li.String() + ">\n")
		for _, child := range children {
			renderBlock(b, child, doc, depth+1)
		}
		b.WriteString(pad + "</" + atom.Li.String() + ">\n")
	case KindCodeBlock:
		b.WriteString(pad + "<" + atom.Pre.String() + "><" + atom.Code.String())
		if n.Lang != "" {
			b.WriteString(` class="language-`)
			b.WriteString(escapeHTML(n.Lang))
			b.WriteString(`"`)
		}
		b.WriteString(">")
		b.WriteString(escapeHTML(n.Text))
		b.WriteString("</" + atom.Code.String() + "></" + atom.Pre.String() + ">\n")
	case KindBlockQuote:
		b.WriteString(pad + "<" + atom.Blockquote.String() + ">\n")
		for _, child := range n.Children() {
			renderBlock(b, child, doc, depth+1)
		}
		b.WriteString(pad + "</" + atom.Blockquote.String() + ">\n")
	case KindImage:
		b.WriteString(pad)
		renderImage(b, n)
		b.WriteString("\n")
	case KindLink:
		b.WriteString(pad)
		renderLinkOrWrappedImage(b, n, doc)
		b.WriteString("\n")
	case KindTable:
		renderTable(b, n, doc, depth)
	case KindDetail:
		renderDetail(b, n, doc, depth)
	case KindIDLink:
		renderFootnoteDef(b, n, doc, depth)
	}
}

func headingTag(size int) string {
	if size < 1 {
		size = 1
	}
	if size > 6 {
		size = 6
	}
	return "h" + strconv.Itoa(size)
}

func renderImage(b *strings.Builder, n *Node) {
	b.WriteString("<" + atom.Img.String() + ` src="`)
	b.WriteString(escapeHTML(normalizeURI(n.URL)))
	b.WriteString(`" alt="`)
	b.WriteString(escapeHTML(n.Alt))
	b.WriteString(`"`)
	if n.Title != "" {
		b.WriteString(` title="`)
		b.WriteString(escapeHTML(n.Title))
		b.WriteString(`"`)
	}
	b.WriteString(">")
}

// renderLinkOrWrappedImage handles both an ordinary Link and the
// reclassified wrapped-image form (a Link whose sole child is an
// Image), since image.go reuses KindLink for both.
func renderLinkOrWrappedImage(b *strings.Builder, n *Node, doc *Document) {
	children := n.Children()
	b.WriteString("<" + atom.A.String() + ` href="`)
	b.WriteString(escapeHTML(normalizeURI(n.URL)))
	b.WriteString(`"`)
	if n.Title != "" {
		b.WriteString(` title="`)
		b.WriteString(escapeHTML(n.Title))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	if len(children) == 1 && children[0].Kind == KindImage {
		renderImage(b, children[0])
	} else {
		for _, c := range children {
			renderInline(b, c)
		}
	}
	b.WriteString("</" + atom.A.String() + ">")
}

func renderTable(b *strings.Builder, n *Node, doc *Document, depth int) {
	pad := indentPad(depth)
	b.WriteString(pad + "<" + atom.Div.String() + "><" + atom.Table.String() + ">\n")
	if n.Caption != "" {
		b.WriteString(indentPad(depth + 1))
		b.WriteString("<" + atom.Caption.String())
		if n.CaptionClass != "" {
			b.WriteString(` class="` + escapeHTML(n.CaptionClass) + `"`)
		}
		if n.CaptionID != "" {
			b.WriteString(` id="` + escapeHTML(n.CaptionID) + `"`)
		}
		b.WriteString(">")
		b.WriteString(escapeHTML(n.Caption))
		b.WriteString("</" + atom.Caption.String() + ">\n")
	}
	var head, body, foot [][]*Node
	for _, row := range n.TableRows {
		if len(row) == 0 {
			continue
		}
		switch row[0].Section {
		case sectionHead:
			head = append(head, row)
		case sectionFoot:
			foot = append(foot, row)
		default:
			body = append(body, row)
		}
	}
	writeRowGroup(b, atom.Thead.String(), head, true, depth+1)
	writeRowGroup(b, atom.Tbody.String(), body, false, depth+1)
	writeRowGroup(b, atom.Tfoot.String(), foot, false, depth+1)
	b.WriteString(pad + "</" + atom.Table.String() + "></" + atom.Div.String() + ">\n")
}

func writeRowGroup(b *strings.Builder, tag string, rows [][]*Node, asHeader bool, depth int) {
	if len(rows) == 0 {
		return
	}
	pad := indentPad(depth)
	b.WriteString(pad + "<" + tag + ">\n")
	cellTag := atom.Td.String()
	if asHeader {
		cellTag = atom.Th.String()
	}
	for _, row := range rows {
		b.WriteString(indentPad(depth+1) + "<" + atom.Tr.String() + ">")
		for _, cell := range row {
			b.WriteString("<" + cellTag)
			if cell.ColSpan > 1 {
				b.WriteString(` colspan="` + strconv.Itoa(cell.ColSpan) + `"`)
			}
			if cell.RowSpan > 1 {
				b.WriteString(` rowspan="` + strconv.Itoa(cell.RowSpan) + `"`)
			}
			var classes []string
			if cell.MergeDown {
				classes = append(classes, "merged_rows")
			}
			if cell.MergeRight {
				classes = append(classes, "merged_cols")
			}
			if len(classes) > 0 {
				b.WriteString(` class="` + strings.Join(classes, " ") + `"`)
			}
			b.WriteString(">")
			for _, c := range cell.Children() {
				renderInline(b, c)
			}
			b.WriteString("</" + cellTag + ">")
		}
		b.WriteString("</" + atom.Tr.String() + ">\n")
	}
	b.WriteString(pad + "</" + tag + ">\n")
}

func renderDetail(b *strings.Builder, n *Node, doc *Document, depth int) {
	pad := indentPad(depth)
	b.WriteString(pad + "<" + atom.Details.String() + ">\n")
	children := n.Children()
	if n.HasSummary && len(children) > 0 {
		b.WriteString(indentPad(depth + 1))
		b.WriteString("<" + atom.Summary.String() + ">")
		for _, c := range children[0].Children() {
			renderInline(b, c)
		}
		b.WriteString("</" + atom.Summary.String() + ">\n")
		children = children[1:]
	}
	for _, child := range children {
		renderBlock(b, child, doc, depth+1)
	}
	b.WriteString(pad + "</" + atom.Details.String() + ">\n")
}

// renderFootnoteDef renders a retained footnote IDLink's body, labeled
// with its marker stripped of the leading '^'.
func renderFootnoteDef(b *strings.Builder, n *Node, doc *Document, depth int) {
	pad := indentPad(depth)
	label := strings.TrimPrefix(n.Marker, "^")
	b.WriteString(pad + `<div class="footnote" id="footnote-`)
	b.WriteString(escapeHTML(label))
	b.WriteString(`"><` + atom.Sup.String() + `>`)
	b.WriteString(escapeHTML(label))
	b.WriteString("</" + atom.Sup.String() + ">")
	children := n.Children()
	if len(children) == 1 && children[0].Kind == KindParagraph {
		// A single-paragraph body renders inline after the <sup> label,
		// eliding the paragraph wrapper.
		renderInlineChildren(b, children[0])
		b.WriteString("</div>\n")
		return
	}
	b.WriteString("\n")
	for _, child := range children {
		renderBlock(b, child, doc, depth+1)
	}
	b.WriteString(pad + "</div>\n")
}

func renderInlineChildren(b *strings.Builder, n *Node) {
	for _, c := range n.Children() {
		renderInline(b, c)
	}
}

// renderInline appends an inline node's HTML to b. A [KindText] node
// with Text set is a literal run; one with Style but no Text is a
// style span wrapping further inline children; a style of zero with
// children (and no Text) is a neutral grouped span from a parenthesized
// or double-bracketed run.
func renderInline(b *strings.Builder, n *Node) {
	switch n.Kind {
	case KindLink:
		renderLinkOrWrappedImage(b, n, nil)
	case KindImage:
		renderImage(b, n)
	case KindText:
		if n.Style&StyleFootnoteRef != 0 {
			renderFootnoteRef(b, n)
			return
		}
		if n.Text != "" {
			b.WriteString(escapeHTML(n.Text))
			return
		}
		openTags, closeTags := styleTags(n.Style)
		for _, t := range openTags {
			b.WriteString("<" + t + ">")
		}
		for _, c := range n.Children() {
			renderInline(b, c)
		}
		for _, t := range closeTags {
			b.WriteString("</" + t + ">")
		}
	}
}

func renderFootnoteRef(b *strings.Builder, n *Node) {
	label := strings.TrimPrefix(n.Marker, "^")
	b.WriteString("<" + atom.Sup.String() + "><" + atom.A.String() + ` href="#footnote-`)
	b.WriteString(escapeHTML(label))
	b.WriteString(`">[`)
	b.WriteString(escapeHTML(label))
	b.WriteString("]</" + atom.A.String() + "></" + atom.Sup.String() + ">")
}

// styleTags returns the open-tag and close-tag (reverse-order) lists
// for a TextStyle bitmask, so nested markers like bold+italic render as
// properly balanced nested elements.
func styleTags(style TextStyle) (open, close []string) {
	order := []struct {
		bit TextStyle
		tag string
	}{
		{StyleBold, atom.Strong.String()},
		{StyleItalic, atom.Em.String()},
		{StyleUnderline, atom.U.String()},
		{StyleHighlight, atom.Mark.String()},
		{StyleStrike, atom.S.String()},
		{StyleSub, atom.Sub.String()},
		{StyleSuper, atom.Sup.String()},
		{StyleCode, atom.Code.String()},
		{StyleMonospace, atom.Code.String()},
	}
	for _, o := range order {
		if style&o.bit != 0 {
			open = append(open, o.tag)
		}
	}
	for i := len(open) - 1; i >= 0; i-- {
		close = append(close, open[i])
	}
	return open, close
}
