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

import "regexp"

var (
	imagePlainRe   = regexp.MustCompile(`^!\[([^\]]*)\]\(([^ )]+)(?:\s+"([^"]*)")?\)$`)
	imageWrappedRe = regexp.MustCompile(`^\[!\[([^\]]*)\]\(([^ )]+)(?:\s+"([^"]*)")?\)\](?:\(([^)]+)\)|\[([^\]]+)\])$`)
)

// imageDef recognizes the three single-line image forms of spec.md
// §4.8: plain, direct-link, and referenced. A wrapped form reclassifies
// the node to KindLink around a KindImage child, mirroring paragraph's
// reclassification into a heading.
var imageDef = &blockDef{
	kind:   KindImage,
	isType: isTypeImage,
	check:  checkImage,
	finalize: func(n *Node) (bool, error) {
		return true, nil
	},
	blank: blankTerminate,
}

func isTypeImage(last, cur, next string) (bool, int, blockParams) {
	if imagePlainRe.MatchString(cur) || imageWrappedRe.MatchString(cur) {
		return true, 0, blockParams{}
	}
	return false, 0, blockParams{}
}

func checkImage(n *Node, stream *lineStream, line string, reset bool) (status, error) {
	if m := imageWrappedRe.FindStringSubmatch(line); m != nil {
		alt, url, title, directURL, marker := m[1], m[2], m[3], m[4], m[5]
		img := newNode(KindImage, n, n.StartLine)
		img.Alt = inlinePlainText(alt, n)
		img.URL = url
		img.Title = title
		img.Resolved = true
		n.Kind = KindLink
		n.appendChild(img)
		if directURL != "" {
			n.URL = directURL
			n.Resolved = true
		} else {
			n.Marker = marker
			n.Registry().register(marker, n)
		}
		return statusConclude, nil
	}
	m := imagePlainRe.FindStringSubmatch(line)
	if m == nil {
		return 0, badFormat(stream.lineNo(), "malformed image %q", line)
	}
	n.Alt = inlinePlainText(m[1], n)
	n.URL = m[2]
	n.Title = m[3]
	n.Resolved = true
	return statusConclude, nil
}
