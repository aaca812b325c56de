// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
)

// a single replay step
type operation struct {
	insert bool
	key    item.Key
	value  string
}

func (op operation) String() string {
	if op.insert {
		return fmt.Sprintf("+%s=%s", op.key, op.value)
	}
	return fmt.Sprintf("-%s", op.key)
}

// parse one of: +KEY  +KEY=VALUE  -KEY
//
// a plain insert uses the key text as the value
func parseOperation(s string, numeric bool) (operation, error) {
	if len(s) < 2 {
		return operation{}, fault.ErrInvalidOperation
	}

	op := operation{}
	text := s[1:]
	switch s[0] {
	case '+':
		op.insert = true
		kv := strings.SplitN(text, "=", 2)
		text = kv[0]
		op.value = kv[0]
		if 2 == len(kv) {
			op.value = kv[1]
		}
	case '-':
		if strings.Contains(text, "=") {
			return operation{}, fault.ErrInvalidOperation
		}
	default:
		return operation{}, fault.ErrInvalidOperation
	}

	if "" == text {
		return operation{}, fault.ErrInvalidOperation
	}
	key, err := item.Parse(text, numeric)
	if nil != err {
		return operation{}, fault.ErrInvalidOperation
	}
	op.key = key
	return op, nil
}

func parseOperations(args []string, numeric bool) ([]operation, error) {
	if 0 == len(args) {
		return nil, fault.ErrMissingOperations
	}
	ops := make([]operation, 0, len(args))
	for _, a := range args {
		op, err := parseOperation(a, numeric)
		if nil != err {
			return nil, fmt.Errorf("%q: %s", a, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// one operation per line, blank lines and '#' comments skipped
func readOperations(r io.Reader, numeric bool) ([]operation, error) {
	ops := make([]operation, 0, 64)
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n += 1
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if "" == line {
			continue
		}
		op, err := parseOperation(line, numeric)
		if nil != err {
			return nil, fmt.Errorf("line: %d  %q: %s", n, line, err)
		}
		ops = append(ops, op)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	if 0 == len(ops) {
		return nil, fault.ErrMissingOperations
	}
	return ops, nil
}

// apply each operation in turn, verifying the tree after every step
func apply(tree *avl.Tree, ops []operation, m *metadata) error {
	for i, op := range ops {
		if op.insert {
			added := tree.Insert(op.key, op.value)
			if m.verbose {
				fmt.Fprintf(m.e, "%s  added: %t\n", op, added)
			}
		} else {
			value := tree.Delete(op.key)
			if m.verbose {
				fmt.Fprintf(m.e, "%s  removed: %v\n", op, value)
			}
		}
		if err := tree.Check(); nil != err {
			return fmt.Errorf("operation: %d  %s: %s", i+1, op, err)
		}
	}
	return nil
}

func printSummary(w io.Writer, tree *avl.Tree) {
	fmt.Fprintf(w, "count:     %d\n", tree.Count())
	fmt.Fprintf(w, "height:    %d\n", tree.Height())
	fmt.Fprintf(w, "rotations: %d\n", tree.Rotations())
}
