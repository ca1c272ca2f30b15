// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Search - find the node holding a specific key, nil if not present
func (tree *Tree[K, V]) Search(key K) *Node[K, V] {
	return search(tree.root, key)
}

// Find - true if the key is present in the tree
func (tree *Tree[K, V]) Find(key K) bool {
	return nil != search(tree.root, key)
}

// Get - fetch the value stored under a key
// a missing key yields the optional default value, or failing that
// the zero value of V
func (tree *Tree[K, V]) Get(key K, defaultValue ...V) V {
	if p := search(tree.root, key); nil != p {
		return p.value
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	var zero V
	return zero
}

// internal search routine
func search[K cmp.Ordered, V any](p *Node[K, V], key K) *Node[K, V] {
	if nil == p {
		return nil
	}
	switch cmp.Compare(p.key, key) {
	case +1: // p.key > key
		return search(p.left, key)
	case -1: // p.key < key
		return search(p.right, key)
	default:
		return p
	}
}
