// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package soak - randomised long running exercise of AVL trees
//
// Each worker owns one tree and applies a random mixture of inserts
// and deletes over a bounded key space, keeping a map of the expected
// contents.  At intervals the tree invariants are checked and the
// tree contents compared with the map.  Trees are not shared between
// workers, so no locking is needed on the trees themselves.
package soak
