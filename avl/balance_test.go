// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"math"
	mathrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/item"
)

func build(keys ...int) *avl.Tree {
	tree := avl.New()
	for _, k := range keys {
		tree.Insert(item.Integer(k), k*10)
	}
	return tree
}

// expect a three node tree: 20 over 10 and 30, all balanced
func assertTriangle(t *testing.T, tree *avl.Tree) {
	r := tree.Root()
	if !assert.NotNil(t, r, "no root") {
		return
	}
	assert.Equal(t, item.Integer(20), r.Key(), "wrong root")
	assert.Nil(t, r.Parent(), "root has parent")
	assert.Equal(t, item.Integer(10), r.Left().Key(), "wrong left")
	assert.Equal(t, item.Integer(30), r.Right().Key(), "wrong right")
	assert.Equal(t, 0, r.Balance(), "root balance")
	assert.Equal(t, 0, r.Left().Balance(), "left balance")
	assert.Equal(t, 0, r.Right().Balance(), "right balance")
	assert.Nil(t, tree.Check(), "inconsistent")
}

func TestInsertZigZigRight(t *testing.T) {
	tree := build(10, 20, 30)
	assertTriangle(t, tree)
	assert.Equal(t, uint64(1), tree.Rotations(), "single rotation expected")
}

func TestInsertZigZigLeft(t *testing.T) {
	tree := build(30, 20, 10)
	assertTriangle(t, tree)
	assert.Equal(t, uint64(1), tree.Rotations(), "single rotation expected")
}

func TestInsertZigZagLeft(t *testing.T) {
	tree := build(30, 10, 20)
	assertTriangle(t, tree)
	assert.Equal(t, uint64(2), tree.Rotations(), "double rotation expected")
}

func TestInsertZigZagRight(t *testing.T) {
	tree := build(10, 30, 20)
	assertTriangle(t, tree)
	assert.Equal(t, uint64(2), tree.Rotations(), "double rotation expected")
}

// zig-zag where the new middle node already had a child: the
// balances of the outer nodes depend on which side it was
func TestInsertZigZagWithSubtrees(t *testing.T) {
	// 50(20(10,30),60) then 25 goes under 30: double rotation at 50
	tree := build(50, 20, 60, 10, 30, 25)
	assert.Nil(t, tree.Check(), "inconsistent")
	r := tree.Root()
	assert.Equal(t, item.Integer(30), r.Key(), "wrong root")
	assert.Equal(t, 0, r.Balance(), "root balance")
	assert.Equal(t, 0, r.Left().Balance(), "20 balance")
	assert.Equal(t, +1, r.Right().Balance(), "50 balance")

	// mirror with 35 on the other side of 30
	tree = build(50, 20, 60, 10, 30, 35)
	assert.Nil(t, tree.Check(), "inconsistent")
	r = tree.Root()
	assert.Equal(t, item.Integer(30), r.Key(), "wrong root")
	assert.Equal(t, -1, r.Left().Balance(), "20 balance")
	assert.Equal(t, 0, r.Right().Balance(), "50 balance")
}

func TestBalancedBuildNeedsNoRotation(t *testing.T) {
	tree := build(4, 2, 6, 1, 3, 5, 7)
	assert.Equal(t, uint64(0), tree.Rotations(), "no rotation expected")
	assert.Equal(t, 3, tree.Height(), "height")

	root := tree.Root()
	predecessor := root.Left().Right()
	assert.Equal(t, item.Integer(3), predecessor.Key(), "predecessor")

	v := tree.Delete(item.Integer(4))
	assert.Equal(t, 40, v, "deleted value")
	assert.Nil(t, tree.Check(), "inconsistent")
	assert.Equal(t, uint64(0), tree.Rotations(), "no rotation expected")

	// predecessor node itself took the root position
	assert.True(t, predecessor == tree.Root(), "predecessor is not the root")
	assert.Equal(t, item.Integer(3), tree.Root().Key(), "new root")
	assert.Equal(t, 30, tree.Root().Value(), "root value")
	assert.Equal(t, item.Integer(2), tree.Root().Left().Key(), "left")
	assert.Equal(t, -1, tree.Root().Left().Balance(), "left balance")
	assert.Equal(t, 6, tree.Count(), "count")
}

// deleting from the short side of a node whose tall child is
// balanced: one rotation and the height is unchanged
func TestDeleteZigZigBalancedChild(t *testing.T) {
	tree := build(20, 10, 30, 25, 35)
	before := tree.Rotations()
	tree.Delete(item.Integer(10))
	assert.Nil(t, tree.Check(), "inconsistent")
	assert.Equal(t, before+1, tree.Rotations(), "single rotation expected")
	r := tree.Root()
	assert.Equal(t, item.Integer(30), r.Key(), "root")
	assert.Equal(t, -1, r.Balance(), "root balance")
	assert.Equal(t, +1, r.Left().Balance(), "20 balance")
}

func TestDeleteZigZigLeaning(t *testing.T) {
	tree := build(20, 10, 30, 35)
	tree.Delete(item.Integer(10))
	assert.Nil(t, tree.Check(), "inconsistent")
	assert.Equal(t, item.Integer(30), tree.Root().Key(), "root")
	assert.Equal(t, 0, tree.Root().Balance(), "root balance")

	tree = build(20, 10, 30, 5)
	tree.Delete(item.Integer(30))
	assert.Nil(t, tree.Check(), "inconsistent")
	assert.Equal(t, item.Integer(10), tree.Root().Key(), "root")
}

func TestDeleteZigZag(t *testing.T) {
	tree := build(20, 10, 30, 25)
	before := tree.Rotations()
	tree.Delete(item.Integer(10))
	assert.Nil(t, tree.Check(), "inconsistent")
	assert.Equal(t, before+2, tree.Rotations(), "double rotation expected")
	assert.Equal(t, item.Integer(25), tree.Root().Key(), "root")

	tree = build(20, 10, 30, 15)
	tree.Delete(item.Integer(30))
	assert.Nil(t, tree.Check(), "inconsistent")
	assert.Equal(t, item.Integer(15), tree.Root().Key(), "root")
}

func TestDeleteSingleChild(t *testing.T) {
	tree := build(20, 10, 30, 5)
	c := tree.Root().Left().Left()
	tree.Delete(item.Integer(10))
	assert.Nil(t, tree.Check(), "inconsistent")
	assert.True(t, c == tree.Root().Left(), "child not spliced up")
	assert.Equal(t, 0, tree.Root().Balance(), "root balance")
}

// predecessor is the direct left child of the deleted node
func TestDeleteAdjacentPredecessor(t *testing.T) {
	tree := build(2, 1, 3)
	p := tree.Root().Left()
	tree.Delete(item.Integer(2))
	assert.Nil(t, tree.Check(), "inconsistent")
	assert.True(t, p == tree.Root(), "predecessor is not the root")
	assert.Equal(t, +1, tree.Root().Balance(), "root balance")
}

func TestOverwriteKeepsShape(t *testing.T) {
	tree := build(8, 4, 12, 2, 6, 10, 14, 1, 3)

	var before bytes.Buffer
	tree.Fprint(&before, false)
	rotations := tree.Rotations()

	for _, k := range []int{8, 1, 3, 14} {
		added := tree.Insert(item.Integer(k), "new")
		assert.False(t, added, "overwrite added a node")
	}

	var after bytes.Buffer
	tree.Fprint(&after, false)
	assert.Equal(t, before.String(), after.String(), "shape changed")
	assert.Equal(t, rotations, tree.Rotations(), "rotated on overwrite")
	assert.Equal(t, 9, tree.Count(), "count")

	n, index := tree.Search(item.Integer(3))
	assert.Equal(t, "new", n.Value(), "value not overwritten")
	assert.Equal(t, 2, index, "index")
}

func TestDeleteAbsentKey(t *testing.T) {
	tree := build(8, 4, 12, 2, 6, 10, 14, 1)

	var before bytes.Buffer
	tree.Fprint(&before, true)

	for _, k := range []int{0, 5, 9, 100} {
		v := tree.Delete(item.Integer(k))
		assert.Nil(t, v, "value for absent key")
	}

	var after bytes.Buffer
	tree.Fprint(&after, true)
	assert.Equal(t, before.String(), after.String(), "tree changed")
	assert.Equal(t, 8, tree.Count(), "count")

	empty := avl.New()
	assert.Nil(t, empty.Delete(item.Integer(1)), "delete from empty tree")
	assert.True(t, empty.IsEmpty(), "empty")
	assert.Nil(t, empty.First(), "first of empty tree")
	assert.Nil(t, empty.Last(), "last of empty tree")
	assert.Equal(t, 0, empty.Height(), "height of empty tree")
}

// AVL height bound: h ≤ ⌈1.44·log2(N+2)⌉
func heightBound(n int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(n+2))))
}

func TestHeightBoundSequential(t *testing.T) {
	tree := avl.New()
	for i := 1; i <= 4096; i += 1 {
		tree.Insert(item.Integer(i), nil)
		if h := tree.Height(); h > heightBound(i) {
			t.Fatalf("after %d inserts height: %d exceeds: %d", i, h, heightBound(i))
		}
	}
	assert.Nil(t, tree.Check(), "inconsistent")
	assert.Equal(t, 13, tree.Height(), "perfect tree height")
}

func TestRoundTripAnyOrder(t *testing.T) {
	r := mathrand.New(mathrand.NewSource(20200607))

	for round := 0; round < 20; round += 1 {
		n := 1 + r.Intn(600)
		keys := r.Perm(n)

		tree := avl.New()
		for i, k := range keys {
			assert.True(t, tree.Insert(item.Integer(k), k), "not added")
			if h := tree.Height(); h > heightBound(i+1) {
				t.Fatalf("round: %d height: %d exceeds: %d", round, h, heightBound(i+1))
			}
		}
		if err := tree.Check(); nil != err {
			t.Fatalf("round: %d insert inconsistent: %s", round, err)
		}

		r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		for _, k := range keys {
			v := tree.Delete(item.Integer(k))
			if k != v {
				t.Fatalf("round: %d delete: %d returned: %v", round, k, v)
			}
			if err := tree.Check(); nil != err {
				tree.Print(true)
				t.Fatalf("round: %d delete: %d inconsistent: %s", round, k, err)
			}
		}
		assert.True(t, tree.IsEmpty(), "not empty")
		assert.Nil(t, tree.Root(), "root remains")
		assert.Equal(t, 0, tree.Count(), "count")
	}
}

// interleaved inserts and deletes against a map
func TestMixedOperations(t *testing.T) {
	r := mathrand.New(mathrand.NewSource(1))
	tree := avl.New()
	shadow := make(map[int]int)

	for i := 0; i < 20000; i += 1 {
		k := r.Intn(500)
		if r.Intn(10) < 6 {
			_, exists := shadow[k]
			added := tree.Insert(item.Integer(k), i)
			if added == exists {
				t.Fatalf("insert: %d added: %v but exists: %v", k, added, exists)
			}
			shadow[k] = i
		} else {
			v := tree.Delete(item.Integer(k))
			if expected, ok := shadow[k]; ok {
				if v != expected {
					t.Fatalf("delete: %d returned: %v expected: %d", k, v, expected)
				}
				delete(shadow, k)
			} else if nil != v {
				t.Fatalf("delete: %d absent key returned: %v", k, v)
			}
		}
		if 0 == i%250 {
			if err := tree.Check(); nil != err {
				t.Fatalf("step: %d inconsistent: %s", i, err)
			}
		}
	}
	assert.Nil(t, tree.Check(), "inconsistent")
	assert.Equal(t, len(shadow), tree.Count(), "count")
	for k, v := range shadow {
		n, _ := tree.Search(item.Integer(k))
		if assert.NotNil(t, n, "missing key") {
			assert.Equal(t, v, n.Value(), "wrong value")
		}
	}
}

func TestPrintDepth(t *testing.T) {
	tree := build(1, 2, 3, 4, 5)
	var b bytes.Buffer
	depth := tree.Fprint(&b, true)
	assert.Equal(t, tree.Height(), depth, "print depth")
	assert.Contains(t, b.String(), "|------+ ", "no root line")
	assert.Equal(t, 0, avl.New().Fprint(&b, false), "empty depth")
}

func TestPoolReuse(t *testing.T) {
	tree := build(1, 2, 3)
	tree.Delete(item.Integer(2))
	_, free := avl.PoolStatistics()
	assert.True(t, free > 0, "deleted node not pooled")

	tree.Insert(item.Integer(9), 90)
	n, _ := tree.Search(item.Integer(9))
	assert.Equal(t, 90, n.Value(), "reused node value")
	assert.Equal(t, 0, n.Balance(), "reused node balance")
	assert.Nil(t, tree.Check(), "inconsistent")
}
