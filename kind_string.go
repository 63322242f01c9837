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

import "strconv"

var kindNames = [...]string{
	KindDocument:   "Document",
	KindHeading:    "Heading",
	KindParagraph:  "Paragraph",
	KindList:       "List",
	KindListItem:   "ListItem",
	KindCodeBlock:  "CodeBlock",
	KindBlockQuote: "BlockQuote",
	KindRule:       "Rule",
	KindImage:      "Image",
	KindIDLink:     "IDLink",
	KindLink:       "Link",
	KindText:       "Text",
	KindTable:      "Table",
	KindCell:       "Cell",
	KindDetail:     "Detail",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		if name := kindNames[k]; name != "" {
			return name
		}
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (t ListType) String() string {
	switch t {
	case Unordered:
		return "Unordered"
	case Ordered:
		return "Ordered"
	default:
		return "ListType(" + strconv.Itoa(int(t)) + ")"
	}
}
