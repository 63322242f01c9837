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

// ruleDef recognizes a horizontal rule: a line of three or more
// identical '-' or '*' characters (spec.md §4.6).
var ruleDef = &blockDef{
	kind:   KindRule,
	isType: isTypeRule,
	check:  checkRule,
	finalize: func(n *Node) (bool, error) {
		n.items = nil
		return true, nil
	},
	blank: blankTerminate,
}

func isTypeRule(last, cur, next string) (bool, int, blockParams) {
	if len(cur) >= 3 && isRunOf(cur, "-", len(cur)) {
		return true, 0, blockParams{delim: '-'}
	}
	if len(cur) >= 3 && isRunOf(cur, "*", len(cur)) {
		return true, 0, blockParams{delim: '*'}
	}
	return false, 0, blockParams{}
}

func checkRule(n *Node, stream *lineStream, line string, reset bool) (status, error) {
	n.appendLine(line)
	return statusConclude, nil
}
