// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Entry - a key together with its stored value
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// Items - all entries of the tree in ascending key order
// an empty tree yields nil
func (tree *Tree[K, V]) Items() []Entry[K, V] {
	if nil == tree.root {
		return nil
	}
	items := make([]Entry[K, V], 0, tree.count)
	return inorder(tree.root, items)
}

// internal: left, self, right accumulation
func inorder[K cmp.Ordered, V any](p *Node[K, V], items []Entry[K, V]) []Entry[K, V] {
	if nil == p {
		return items
	}
	items = inorder(p.left, items)
	items = append(items, Entry[K, V]{Key: p.key, Value: p.value})
	return inorder(p.right, items)
}
