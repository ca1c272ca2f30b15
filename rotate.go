// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// height - cached height of a possibly absent subtree
// never recurses; nil means height zero
func height[K cmp.Ordered, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute the cached height of an occupied node
// must be called after any change to a child pointer
func setHeight[K cmp.Ordered, V any](p *Node[K, V]) {
	p.height = 1 + max(height(p.left), height(p.right))
}

// balanceFactor - positive when left-heavy, negative when right-heavy
// only valid when the heights below are already current
func balanceFactor[K cmp.Ordered, V any](p *Node[K, V]) int {
	return height(p.left) - height(p.right)
}

// rotateRight - promote the left child to subtree root
// the old root becomes the right child of the promoted node
func rotateRight[K cmp.Ordered, V any](p *Node[K, V]) *Node[K, V] {
	if nil == p.left {
		panic("avl: rotate right without a left child")
	}
	p1 := p.left
	p.left = p1.right
	p1.right = p

	// demoted node first, the promoted height depends on it
	setHeight(p)
	setHeight(p1)

	return p1
}

// rotateLeft - promote the right child to subtree root
// the old root becomes the left child of the promoted node
func rotateLeft[K cmp.Ordered, V any](p *Node[K, V]) *Node[K, V] {
	if nil == p.right {
		panic("avl: rotate left without a right child")
	}
	p1 := p.right
	p.right = p1.left
	p1.left = p

	setHeight(p)
	setHeight(p1)

	return p1
}

// rebalance - restore the AVL condition at a single node
//
// both children must already be balanced AVL subtrees; a single
// insert or delete below can put this node out of balance by at most
// two, so at most two rotations ever run per call
func rebalance[K cmp.Ordered, V any](p *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}
	setHeight(p)

	switch b := balanceFactor(p); {
	case b > 1:
		if balanceFactor(p.left) < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		// single LL rotation
		return rotateRight(p)

	case b < -1:
		if balanceFactor(p.right) > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		// single RR rotation
		return rotateLeft(p)

	default:
		return p
	}
}
