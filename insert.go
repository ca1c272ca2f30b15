// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Set - store a value under a key, inserting a new node if the key is
// not already present; an existing key has its value overwritten in
// place and the tree shape is unchanged
// returns true if a new node was added
func (tree *Tree[K, V]) Set(key K, value V) bool {
	root, added := tree.set(tree.root, key, value)
	tree.root = root
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for set
// returns the possibly rotated subtree root, which the caller must
// reattach before rebalancing itself
func (tree *Tree[K, V]) set(p *Node[K, V], key K, value V) (*Node[K, V], bool) {
	if nil == p { // insert new node
		return tree.free.newNode(key, value), true
	}
	added := false
	switch cmp.Compare(p.key, key) {
	case +1: // p.key > key
		p.left, added = tree.set(p.left, key, value)
	case -1: // p.key < key
		p.right, added = tree.set(p.right, key, value)
	default: // replace value, no structural change
		p.value = value
		return p, false
	}
	return rebalance(p), added
}
