// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Delete - remove a specific key from the tree
// returns the stored value and true if the key was present; deleting
// an absent key is a no-op and returns the zero value and false
func (tree *Tree[K, V]) Delete(key K) (V, bool) {
	root, value, removed := tree.delete(tree.root, key)
	tree.root = root
	if removed {
		tree.count -= 1
	}
	return value, removed
}

// internal delete routine
func (tree *Tree[K, V]) delete(p *Node[K, V], key K) (*Node[K, V], V, bool) {
	var value V
	if nil == p { // key not in tree
		return nil, value, false
	}
	removed := false
	switch cmp.Compare(p.key, key) {
	case +1: // p.key > key
		p.left, value, removed = tree.delete(p.left, key)
	case -1: // p.key < key
		p.right, value, removed = tree.delete(p.right, key)
	default: // found: delete p
		value = p.value // preserve the value part
		if nil == p.left {
			r := p.right
			tree.free.freeNode(p) // return deleted node to pool
			return r, value, true
		}
		if nil == p.right {
			l := p.left
			tree.free.freeNode(p)
			return l, value, true
		}
		// two children: overwrite the payload with the in-order
		// successor, then remove the successor from the right subtree
		s := p.right
		for nil != s.left {
			s = s.left
		}
		p.key = s.key
		p.value = s.value
		p.right, _, _ = tree.delete(p.right, s.key)
		removed = true
	}
	return rebalance(p), value, removed
}
