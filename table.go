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

var tableCaptionRe = regexp.MustCompile(`^\|\[ (.*) \]\|(?:\s+(\.\S+))?(?:\s+(#\S+))?\s*$`)

// tableDef recognizes any line beginning with '|' (spec.md §4.11). The
// full grid, including the optional caption line and up to two
// head/body/foot separators, is parsed at finalize time once every row
// has been collected.
var tableDef = &blockDef{
	kind:     KindTable,
	isType:   isTypeTable,
	check:    checkTable,
	finalize: finalizeTable,
	blank:    blankTerminate,
}

func isTypeTable(last, cur, next string) (bool, int, blockParams) {
	if strings.HasPrefix(cur, "|") {
		return true, 0, blockParams{}
	}
	return false, 0, blockParams{}
}

func checkTable(n *Node, stream *lineStream, line string, reset bool) (status, error) {
	if !strings.HasPrefix(line, "|") {
		return statusEnd, nil
	}
	n.appendLine(line)
	return statusSame, nil
}

// splitTableCells splits a row into its pipe-delimited cells, stripping
// one leading and one trailing '|' so "| a | b |" yields ["a", "b"].
func splitTableCells(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	parts := strings.Split(line, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func isSeparatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	first := cells[0]
	if first == "" {
		return false
	}
	return isRunOf(first, "-", 1)
}

func sectionForRow(idx, numRows int, sepCount int, firstSep, secondSep int) tableSection {
	switch sepCount {
	case 0:
		return sectionBody
	case 1:
		if idx < firstSep {
			return sectionHead
		}
		return sectionBody
	default:
		if idx < firstSep {
			return sectionHead
		}
		if idx < secondSep {
			return sectionBody
		}
		return sectionFoot
	}
}

func finalizeTable(n *Node) (bool, error) {
	rawLines := n.lines()
	startLine := n.StartLine
	n.items = nil
	if len(rawLines) == 0 {
		return true, nil
	}

	idx := 0
	if m := tableCaptionRe.FindStringSubmatch(rawLines[0]); m != nil {
		n.Caption = m[1]
		n.CaptionClass = strings.TrimPrefix(m[2], ".")
		n.CaptionID = strings.TrimPrefix(m[3], "#")
		idx = 1
	}

	var rows [][]string
	var sepPositions []int // indices into rows at which a separator appeared
	ncols := -1
	for i := idx; i < len(rawLines); i++ {
		lineNo := startLine + i
		cells := splitTableCells(rawLines[i])
		if ncols == -1 {
			ncols = len(cells)
		} else if len(cells) != ncols {
			return false, badFormat(lineNo, "table row has %d cells, expected %d", len(cells), ncols)
		}
		if isSeparatorRow(cells) {
			sepPositions = append(sepPositions, len(rows))
			continue
		}
		rows = append(rows, cells)
	}
	n.ColSpan = ncols // KindTable reuses ColSpan to record its fixed column count

	var firstSep, secondSep int
	if len(sepPositions) > 0 {
		firstSep = sepPositions[0]
	}
	if len(sepPositions) > 1 {
		secondSep = sepPositions[1]
	}

	grid := make([][]*Node, len(rows))
	for r, rowCells := range rows {
		grid[r] = make([]*Node, ncols)
		section := sectionForRow(r, len(rows), len(sepPositions), firstSep, secondSep)
		for c, raw := range rowCells {
			text := raw
			mergeDown := strings.HasSuffix(text, `\/`)
			if mergeDown {
				text = strings.TrimSuffix(text, `\/`)
			}
			text = strings.TrimSpace(text)
			if mergeDown {
				if r == 0 || grid[r-1][c] == nil {
					return false, badFormat(startLine+idx+r, "table cell marked merge-down has no cell above it")
				}
				above := grid[r-1][c]
				above.RowSpan++
				above.MergeDown = true
				grid[r][c] = above
				continue
			}
			if text == "" {
				if c == 0 || grid[r][c-1] == nil {
					return false, badFormat(startLine+idx+r, "empty table cell has no preceding cell to merge into")
				}
				prev := grid[r][c-1]
				prev.ColSpan++
				prev.MergeRight = true
				grid[r][c] = prev
				continue
			}
			cell := newNode(KindCell, n, startLine+idx+r)
			cell.EndLine = cell.StartLine
			cell.Section = section
			cell.ColSpan, cell.RowSpan = 1, 1
			for _, child := range formatInline(text, n) {
				cell.appendChild(child)
			}
			cell.final = true
			grid[r][c] = cell
		}
	}

	seen := make(map[*Node]bool)
	tableRows := make([][]*Node, 0, len(rows))
	for r := range grid {
		var rowOut []*Node
		for c := range grid[r] {
			cell := grid[r][c]
			if cell == nil || seen[cell] {
				continue
			}
			seen[cell] = true
			rowOut = append(rowOut, cell)
			n.appendChild(cell)
		}
		tableRows = append(tableRows, rowOut)
	}
	n.TableRows = tableRows
	n.StartLine = startLine
	return true, nil
}
