// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value of
// an existing node with the same key
//
// returns true if a new node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {

	if nil == tree.root {
		tree.root = newNode(key, value, nil)
		tree.count += 1
		return true
	}

	// find where to insert the node
	var parent *Node
	p := tree.root
	for nil != p {
		parent = p
		switch p.key.Compare(key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			p.value = value
			return false
		}
	}

	n := newNode(key, value, parent)
	if +1 == parent.key.Compare(key) {
		parent.left = n
	} else {
		parent.right = n
	}
	tree.count += 1

	// every ancestor gains one node on the side of the new leaf
	for c := n; nil != c.up; c = c.up {
		if c.isLeft() {
			c.up.leftNodes += 1
		} else {
			c.up.rightNodes += 1
		}
	}

	// parent already had one child: the short side is now filled
	if 0 != parent.balance {
		parent.balance = 0
		return true
	}

	// parent was a leaf so its height has grown
	if n == parent.left {
		parent.balance = -1
	} else {
		parent.balance = +1
	}
	tree.insertFix(parent, n)
	return true
}

// insert fix: p and n are balanced and the height of the sub-tree at
// p has just increased by one, n being the child of p on the taller
// side; walk upwards until the extra height is absorbed or removed by
// a rotation
func (tree *Tree) insertFix(p *Node, n *Node) {
	for nil != p && nil != p.up {
		g := p.up

		if p == g.left {
			g.balance -= 1
			switch g.balance {
			case 0: // short side filled
				return
			case -1: // g is taller, continue upwards
				n, p = p, g
				continue
			}

			// g.balance == -2
			if n == p.left {
				// zig-zig: single rotation
				tree.rotateRight(g)
				p.balance = 0
				g.balance = 0
				return
			}

			// zig-zag: double rotation, n becomes the root of this sub-tree
			tree.rotateLeft(p)
			tree.rotateRight(g)
			switch n.balance {
			case -1:
				p.balance = 0
				g.balance = +1
			case 0:
				p.balance = 0
				g.balance = 0
			case +1:
				p.balance = -1
				g.balance = 0
			}
			n.balance = 0
			return
		}

		// p is the right child of g
		g.balance += 1
		switch g.balance {
		case 0:
			return
		case +1:
			n, p = p, g
			continue
		}

		// g.balance == +2
		if n == p.right {
			tree.rotateLeft(g)
			p.balance = 0
			g.balance = 0
			return
		}

		tree.rotateRight(p)
		tree.rotateLeft(g)
		switch n.balance {
		case +1:
			p.balance = 0
			g.balance = -1
		case 0:
			p.balance = 0
			g.balance = 0
		case -1:
			p.balance = +1
			g.balance = 0
		}
		n.balance = 0
		return
	}
}
