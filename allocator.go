// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// a node in the tree
type Node[K cmp.Ordered, V any] struct {
	left   *Node[K, V] // left sub-tree
	right  *Node[K, V] // right sub-tree
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // cached height, 1 for a leaf
}

// per-tree data for allocator
//
// a tree is single-goroutine by contract, so the pool needs no locking
type freeList[K cmp.Ordered, V any] struct {
	pool       *Node[K, V] // linked list of reclaimed nodes
	totalNodes int         // total nodes created
	freeNodes  int         // number of nodes in the pool
}

// allocate a new node, reuses reclaimed nodes if any are available
func (f *freeList[K, V]) newNode(key K, value V) *Node[K, V] {
	if nil == f.pool {
		if 0 != f.freeNodes {
			panic("avl: pool corrupt")
		}
		f.totalNodes += 1
		return &Node[K, V]{
			key:    key,
			value:  value,
			height: 1,
		}
	}
	p := f.pool
	f.pool = p.right
	p.key = key
	p.value = value
	p.height = 1
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	f.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool
func (f *freeList[K, V]) freeNode(node *Node[K, V]) {
	var zeroKey K
	var zeroValue V

	node.right = f.pool // use as free list pointer

	node.left = nil
	node.key = zeroKey
	node.value = zeroValue
	node.height = 0
	f.freeNodes += 1

	f.pool = node
}
