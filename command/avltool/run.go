// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
)

func runRun(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ops, err := parseOperations(c.Args(), c.Bool("numeric"))
	if nil != err {
		return err
	}

	return replay(m, ops, c.Bool("print"))
}

func runFile(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("file")
	if "" == fileName {
		return fault.ErrRequiredFileName
	}

	if m.verbose {
		fmt.Fprintf(m.e, "reading: %s\n", fileName)
	}

	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	ops, err := readOperations(f, c.Bool("numeric"))
	if nil != err {
		return err
	}

	return replay(m, ops, c.Bool("print"))
}

func replay(m *metadata, ops []operation, printTree bool) error {
	tree := avl.New()
	if err := apply(tree, ops, m); nil != err {
		return err
	}
	if printTree {
		tree.Fprint(m.w, true)
	}
	printSummary(m.w, tree)
	return nil
}

func runRandom(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return fault.ErrInvalidCount
	}
	seed := c.Int64("seed")
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	if m.verbose {
		fmt.Fprintf(m.e, "count: %d  seed: %d\n", count, seed)
	}

	return randomRun(m, count, seed)
}

// insert count distinct keys in random order, report the height,
// then delete them all in a different order
func randomRun(m *metadata, count int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	tree := avl.New()

	for _, k := range rng.Perm(count) {
		tree.Insert(item.Integer(k), k)
	}
	if err := tree.Check(); nil != err {
		return err
	}

	height := tree.Height()
	bound := heightBound(count)
	fmt.Fprintf(m.w, "count:     %d\n", tree.Count())
	fmt.Fprintf(m.w, "height:    %d  bound: %d\n", height, bound)
	fmt.Fprintf(m.w, "rotations: %d\n", tree.Rotations())
	if height > bound {
		return fault.ErrHeightExceedsBound
	}

	for _, k := range rng.Perm(count) {
		if nil == tree.Delete(item.Integer(k)) {
			return fault.ErrContentMismatch
		}
	}
	if err := tree.Check(); nil != err {
		return err
	}
	if !tree.IsEmpty() {
		return fault.ErrRemainingNodes
	}

	fmt.Fprintf(m.w, "deleted:   %d  rotations: %d\n", count, tree.Rotations())
	return nil
}

// maximum height of an AVL tree holding n nodes
func heightBound(n int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(n+2))))
}
