// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node carries a balance factor: height(right) - height(left),
// kept in the range -1..+1.  After a node is linked in or unlinked the
// balance change is propagated upwards along the parent pointers and
// any node that reaches ±2 is repaired by a single (zig-zig) or a
// double (zig-zag) rotation.
//
// Data is associated with each key and is overwritten by an insert
// with the same key.  Delete never copies keys or data between nodes:
// a node with two children first exchanges tree positions with its
// in-order predecessor, so other nodes keep their address and a
// previous node may be deleted during iteration.
package avl
