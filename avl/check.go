// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.key, keyOf(p.up), keyOf(up))
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckCounts - check the sub-tree node counts
func (tree *Tree) CheckCounts() bool {
	n, ok := checkCounts(tree.root)
	return ok && n == tree.count
}

// internal: returns number of nodes in the sub-tree
func checkCounts(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	nl, ok := checkCounts(p.left)
	if !ok || nl != p.leftNodes {
		return 0, false
	}
	nr, ok := checkCounts(p.right)
	if !ok || nr != p.rightNodes {
		return 0, false
	}
	return 1 + nl + nr, true
}

// CheckBalance - check every balance factor matches the sub-tree
// heights and is within -1..+1
func (tree *Tree) CheckBalance() bool {
	_, err := checkBalance(tree.root)
	return nil == err
}

// internal: returns height of the sub-tree
func checkBalance(p *Node) (int, error) {
	if nil == p {
		return 0, nil
	}
	hl, err := checkBalance(p.left)
	if nil != err {
		return 0, err
	}
	hr, err := checkBalance(p.right)
	if nil != err {
		return 0, err
	}
	if p.balance < -1 || p.balance > +1 {
		return 0, fault.ErrBalanceOutOfRange
	}
	if p.balance != hr-hl {
		return 0, fault.ErrBalanceMismatch
	}
	if hl > hr {
		return 1 + hl, nil
	}
	return 1 + hr, nil
}

// Check - verify all of the tree invariants
//
// returns the first failure found or nil if the tree is consistent
func (tree *Tree) Check() error {
	if nil != tree.root && nil != tree.root.up {
		return fault.ErrParentLinkMismatch
	}
	if !checkup(tree.root, nil) {
		return fault.ErrParentLinkMismatch
	}

	// strictly increasing keys in order
	var previous *Node
	n := 0
	for p := tree.root.first(); nil != p; p = p.Next() {
		if nil != previous && -1 != previous.key.Compare(p.key) {
			return fault.ErrKeyOrder
		}
		previous = p
		n += 1
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}

	if _, err := checkBalance(tree.root); nil != err {
		return err
	}
	if _, ok := checkCounts(tree.root); !ok {
		return fault.ErrSubtreeCountMismatch
	}
	return nil
}

// internal: printable key of a possibly nil node
func keyOf(p *Node) interface{} {
	if nil == p {
		return nil
	}
	return p.key
}
