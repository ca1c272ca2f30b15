// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// First - return the node with the lowest key value, nil if the tree
// is empty
func (tree *Tree[K, V]) First() *Node[K, V] {
	return first(tree.root)
}

// internal: lowest node in a sub-tree
func first[K cmp.Ordered, V any](p *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value, nil if the tree
// is empty
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return last(tree.root)
}

// internal: highest node in a sub-tree
func last[K cmp.Ordered, V any](p *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Iterator - a restartable in-order cursor over the nodes of a tree
//
// The cursor keeps its own descent stack, so the tree needs no parent
// pointers.  Structural changes to the tree invalidate the cursor;
// create a new one after any Set or Delete.
type Iterator[K cmp.Ordered, V any] struct {
	stack []*Node[K, V]
}

// Iterate - create a cursor positioned before the lowest key
func (tree *Tree[K, V]) Iterate() *Iterator[K, V] {
	it := &Iterator[K, V]{}
	it.descend(tree.root)
	return it
}

// push the whole left spine of a subtree
func (it *Iterator[K, V]) descend(p *Node[K, V]) {
	for nil != p {
		it.stack = append(it.stack, p)
		p = p.left
	}
}

// Next - advance the cursor, returning the next node in ascending key
// order or nil when the walk is finished
func (it *Iterator[K, V]) Next() *Node[K, V] {
	n := len(it.stack)
	if 0 == n {
		return nil
	}
	p := it.stack[n-1]
	it.stack = it.stack[:n-1]
	it.descend(p.right)
	return p
}
