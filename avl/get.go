// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - index to specific item, nil if out of range
func (tree *Tree) Get(index int) *Node {
	if index < 0 || index >= tree.Count() {
		return nil
	}
	return get(index, tree.root)
}

func get(index int, tree *Node) *Node {
	for nil != tree {
		nl := tree.leftNodes

		if index < nl {
			tree = tree.left
		} else if index > nl {
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			tree = tree.right
		} else {
			return tree
		}
	}
	return nil
}
