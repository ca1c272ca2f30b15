// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"
)

// CheckOrder - verify that the keys are in strict ascending order
func (tree *Tree[K, V]) CheckOrder() bool {
	return checkOrder(tree.root, nil, nil)
}

// internal: consistency checker with exclusive bounds
func checkOrder[K cmp.Ordered, V any](p *Node[K, V], lo *K, hi *K) bool {
	if nil == p {
		return true
	}
	if nil != lo && p.key <= *lo {
		fmt.Printf("order fail at node: %v  must be above: %v\n", p.key, *lo)
		return false
	}
	if nil != hi && p.key >= *hi {
		fmt.Printf("order fail at node: %v  must be below: %v\n", p.key, *hi)
		return false
	}
	if !checkOrder(p.left, lo, &p.key) {
		return false
	}
	return checkOrder(p.right, &p.key, hi)
}

// CheckHeights - verify every cached height against a full recount
func (tree *Tree[K, V]) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

// internal: consistency checker
func checkHeights[K cmp.Ordered, V any](p *Node[K, V]) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, okl := checkHeights(p.left)
	hr, okr := checkHeights(p.right)
	h := 1 + max(hl, hr)
	if p.height != h {
		fmt.Printf("height fail at node: %v  actual: %d  expected: %d\n", p.key, p.height, h)
		return h, false
	}
	return h, okl && okr
}

// CheckBalance - verify the AVL condition at every node
func (tree *Tree[K, V]) CheckBalance() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

// internal: consistency checker, heights recounted from scratch
func checkBalance[K cmp.Ordered, V any](p *Node[K, V]) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, okl := checkBalance(p.left)
	hr, okr := checkBalance(p.right)
	if hl-hr > 1 || hr-hl > 1 {
		fmt.Printf("balance fail at node: %v  left: %d  right: %d\n", p.key, hl, hr)
		return 1 + max(hl, hr), false
	}
	return 1 + max(hl, hr), okl && okr
}

// CheckCounts - verify that the stored node count matches a census of
// the whole tree
func (tree *Tree[K, V]) CheckCounts() bool {
	n := census(tree.root)
	if n != tree.count {
		fmt.Printf("count fail: actual: %d  expected: %d\n", tree.count, n)
		return false
	}
	return true
}

// internal: node census
func census[K cmp.Ordered, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return 1 + census(p.left) + census(p.right)
}
