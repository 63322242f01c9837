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

// Heading is one entry of a [Document]'s table of contents.
type Heading struct {
	// Level is the heading's raw level (1-4); use [Document.HeaderSize]
	// to map it to an HTML heading number.
	Level int
	Text  string
	Node  *Node
}

// Headings walks doc's tree and returns every heading in document
// order, including ones nested inside block quotes, list items, and
// detail bodies.
func Headings(doc *Document) []Heading {
	var out []Heading
	Walk(doc.root, &WalkOptions{
		Pre: func(c *Cursor) bool {
			if c.Node().Kind == KindHeading {
				out = append(out, Heading{
					Level: c.Node().Level,
					Text:  nodeText(c.Node()),
					Node:  c.Node(),
				})
			}
			return true
		},
	})
	return out
}
