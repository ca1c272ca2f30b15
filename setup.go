// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Tree - type to hold the root node of a tree
type Tree[K cmp.Ordered, V any] struct {
	root  *Node[K, V]
	count int
	free  freeList[K, V]
}

// New - create an initially empty tree
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{
		root:  nil,
		count: 0,
	}
}

// NewWith - create a tree holding a single entry
func NewWith[K cmp.Ordered, V any](key K, value V) *Tree[K, V] {
	tree := New[K, V]()
	tree.Set(key, value)
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Left - return the left child of a node, nil if none
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return the right child of a node, nil if none
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Height - the cached height of a node, 1 for a leaf
func (p *Node[K, V]) Height() int {
	return p.height
}
