// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes a specific item from the tree
//
// returns the value of the removed item, or nil if the key was not
// in the tree
func (tree *Tree) Delete(key Item) interface{} {
	q := tree.find(key)
	if nil == q {
		return nil
	}
	value := q.value // preserve the value part

	// two children: exchange places with the predecessor which has
	// at most a left child
	if nil != q.left && nil != q.right {
		tree.swap(q, q.left.last())
	}

	// diff is the change in balance of the parent: losing a left
	// child makes it lean right
	p := q.up
	diff := 0
	if nil != p {
		if q == p.left {
			diff = +1
		} else {
			diff = -1
		}
	}

	// every ancestor loses one node on the side of q
	for c := q; nil != c.up; c = c.up {
		if c.isLeft() {
			c.up.leftNodes -= 1
		} else {
			c.up.rightNodes -= 1
		}
	}

	// splice out q, at most one child remains
	child := q.left
	if nil == child {
		child = q.right
	}
	tree.replaceChild(q, child)

	freeNode(q)
	tree.count -= 1

	if nil != p {
		tree.removeFix(p, diff)
	}
	return value
}

// remove fix: the balance of n must change by diff as one of its
// sub-trees has become one shorter; walk upwards while the height of
// the repaired sub-tree is still reduced
func (tree *Tree) removeFix(n *Node, diff int) {
	for nil != n {

		// parent and the change to send it, computed before any
		// rotation moves n
		p := n.up
		ndiff := 0
		if nil != p {
			if n == p.left {
				ndiff = +1
			} else {
				ndiff = -1
			}
		}

		n.balance += diff

		switch diff {
		case -1: // right side shrank
			switch n.balance {
			case -2:
				c := n.left // the taller side
				if nil == c {
					fault.Panicf("avl: balance -2 without left child at: %v", n.key)
				}
				switch c.balance {
				case -1: // zig-zig
					tree.rotateRight(n)
					n.balance = 0
					c.balance = 0
				case 0: // zig-zig, height unchanged
					tree.rotateRight(n)
					n.balance = -1
					c.balance = +1
					return
				case +1: // zig-zag
					g := c.right
					tree.rotateLeft(c)
					tree.rotateRight(n)
					switch g.balance {
					case +1:
						n.balance = 0
						c.balance = -1
					case 0:
						n.balance = 0
						c.balance = 0
					case -1:
						n.balance = +1
						c.balance = 0
					}
					g.balance = 0
				}
			case -1: // was balanced, height unchanged
				return
			}

		case +1: // left side shrank
			switch n.balance {
			case +2:
				c := n.right
				if nil == c {
					fault.Panicf("avl: balance +2 without right child at: %v", n.key)
				}
				switch c.balance {
				case +1:
					tree.rotateLeft(n)
					n.balance = 0
					c.balance = 0
				case 0:
					tree.rotateLeft(n)
					n.balance = +1
					c.balance = -1
					return
				case -1:
					g := c.left
					tree.rotateRight(c)
					tree.rotateLeft(n)
					switch g.balance {
					case -1:
						n.balance = 0
						c.balance = +1
					case 0:
						n.balance = 0
						c.balance = 0
					case +1:
						n.balance = -1
						c.balance = 0
					}
					g.balance = 0
				}
			case +1:
				return
			}

		default:
			return
		}

		// sub-tree height has reduced: continue upwards
		n, diff = p, ndiff
	}
}

// swap - exchange the tree positions of two nodes
//
// parent and child links, balance factors and sub-tree counts are
// exchanged; key and value stay with their node
func (tree *Tree) swap(n1 *Node, n2 *Node) {
	if n1 == n2 || nil == n1 || nil == n2 {
		return
	}

	n1Up, n1Left, n1Right := n1.up, n1.left, n1.right
	n2Up, n2Left, n2Right := n2.up, n2.left, n2.right
	n1IsLeft := n1.isLeft()
	n2IsLeft := n2.isLeft()

	n1.up, n1.left, n1.right = n2Up, n2Left, n2Right
	n2.up, n2.left, n2.right = n1Up, n1Left, n1Right

	// adjacent nodes would now point at themselves
	switch {
	case n1Left == n2:
		n2.left = n1
		n1.up = n2
	case n1Right == n2:
		n2.right = n1
		n1.up = n2
	case n2Left == n1:
		n1.left = n2
		n2.up = n1
	case n2Right == n1:
		n1.right = n2
		n2.up = n1
	}

	// parents must point at the exchanged nodes
	if nil != n1Up && n1Up != n2 {
		if n1IsLeft {
			n1Up.left = n2
		} else {
			n1Up.right = n2
		}
	}
	if nil != n2Up && n2Up != n1 {
		if n2IsLeft {
			n2Up.left = n1
		} else {
			n2Up.right = n1
		}
	}

	// children must point back at their new parent
	for _, p := range []*Node{n1, n2} {
		if nil != p.left {
			p.left.up = p
		}
		if nil != p.right {
			p.right.up = p
		}
	}

	if tree.root == n1 {
		tree.root = n2
	} else if tree.root == n2 {
		tree.root = n1
	}

	n1.balance, n2.balance = n2.balance, n1.balance
	n1.leftNodes, n2.leftNodes = n2.leftNodes, n1.leftNodes
	n1.rightNodes, n2.rightNodes = n2.rightNodes, n1.rightNodes
}
