// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotateRight - promote the left child of n into the position of n
//
//        n            p
//       / \          / \
//      p   c  →     a   n
//     / \              / \
//    a   b            b   c
//
// balance factors are not changed, the caller sets them
func (tree *Tree) rotateRight(n *Node) {
	if nil == n {
		return
	}
	p := n.left
	if nil == p {
		return
	}

	// inner grandchild moves across
	n.left = p.right
	if nil != n.left {
		n.left.up = n
	}
	n.leftNodes = p.rightNodes

	tree.replaceChild(n, p)

	p.right = n
	n.up = p
	p.rightNodes = 1 + n.leftNodes + n.rightNodes

	tree.rotations += 1
}

// rotateLeft - promote the right child of n into the position of n
//
//      n                p
//     / \              / \
//    a   p      →     n   c
//       / \          / \
//      b   c        a   b
//
// balance factors are not changed, the caller sets them
func (tree *Tree) rotateLeft(n *Node) {
	if nil == n {
		return
	}
	p := n.right
	if nil == p {
		return
	}

	// inner grandchild moves across
	n.right = p.left
	if nil != n.right {
		n.right.up = n
	}
	n.rightNodes = p.leftNodes

	tree.replaceChild(n, p)

	p.left = n
	n.up = p
	p.leftNodes = 1 + n.leftNodes + n.rightNodes

	tree.rotations += 1
}

// internal: link c into the slot of old in old's parent, or make c
// the root; old's own links are left for the caller
func (tree *Tree) replaceChild(old *Node, c *Node) {
	up := old.up
	if nil != c {
		c.up = up
	}
	switch {
	case nil == up:
		tree.root = c
	case old == up.left:
		up.left = c
	default:
		up.right = c
	}
}
