// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package item - key types for use with the avl tree
package item

import (
	"strconv"
	"strings"
)

// String - key ordered by byte-wise string comparison
type String string

// Compare - key comparison for AVL interface
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}

// String - the key as a string
func (s String) String() string {
	return string(s)
}

// Integer - key ordered numerically
type Integer int64

// Compare - key comparison for AVL interface
func (i Integer) Compare(x interface{}) int {
	j := x.(Integer)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// String - decimal representation of the key
func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// Key - an ordered key that can also be displayed
type Key interface {
	Compare(interface{}) int
	String() string
}

// Parse - convert text to a key, numeric selects Integer keys
func Parse(s string, numeric bool) (Key, error) {
	if !numeric {
		return String(s), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return nil, err
	}
	return Integer(n), nil
}
