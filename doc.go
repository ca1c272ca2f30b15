// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree acting as an ordered key-value
// container
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Keys may be any totally ordered scalar type (integers, floats or
// strings); values are arbitrary and never inspected by the tree.
// Setting an existing key overwrites its value in place, deleting an
// absent key is a silent no-op.
//
// Every node caches its own height; rebalancing happens bottom-up
// after each structural change, so the height difference between
// sibling subtrees never exceeds one and all point operations stay
// logarithmic in the number of entries.
package avl
