// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	mathrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avl"
)

func TestNewWith(t *testing.T) {
	tree := avl.NewWith(7, "seven")
	assert.Equal(t, 1, tree.Count())
	assert.False(t, tree.IsEmpty())
	assert.True(t, tree.Find(7))
	assert.Equal(t, "seven", tree.Get(7))
}

func TestGetDefaults(t *testing.T) {
	tree := avl.New[int, string]()

	// empty tree: zero value without a default, the default otherwise
	assert.Equal(t, "", tree.Get(1))
	assert.Equal(t, "fallback", tree.Get(1, "fallback"))

	tree.Set(1, "one")
	assert.Equal(t, "one", tree.Get(1))
	assert.Equal(t, "one", tree.Get(1, "fallback"))
	assert.Equal(t, "fallback", tree.Get(2, "fallback"))
	assert.False(t, tree.Find(2))
}

func TestUpsertIdempotent(t *testing.T) {
	tree := avl.New[int, string]()

	added := tree.Set(42, "answer")
	assert.True(t, added)
	before := tree.Items()

	added = tree.Set(42, "answer")
	assert.False(t, added)
	assert.Equal(t, before, tree.Items())
	assert.Equal(t, 1, tree.Count())

	// overwrite changes the value but never the shape or count
	tree.Set(42, "revised")
	assert.Equal(t, 1, tree.Count())
	assert.Equal(t, "revised", tree.Get(42))
}

func TestDeleteAbsentKeepsItems(t *testing.T) {
	tree := avl.New[int, string]()
	for _, key := range []int{5, 3, 8, 1, 4, 9} {
		tree.Set(key, data(key))
	}
	before := tree.Items()

	value, ok := tree.Delete(999)
	assert.False(t, ok)
	assert.Equal(t, "", value)
	assert.Equal(t, before, tree.Items())
	assert.Equal(t, len(before), tree.Count())
}

func TestDeleteThenFind(t *testing.T) {
	const total = 200
	const remove = 73

	tree := avl.New[int, string]()
	for key := 0; key < total; key += 1 {
		tree.Set(key, data(key))
	}
	require.Equal(t, total, len(tree.Items()))

	for key := 0; key < remove; key += 1 {
		_, ok := tree.Delete(key)
		require.True(t, ok)
	}

	assert.Equal(t, total-remove, tree.Count())
	assert.Equal(t, total-remove, len(tree.Items()))

	for key := 0; key < remove; key += 1 {
		assert.False(t, tree.Find(key))
	}
	for _, item := range tree.Items() {
		assert.GreaterOrEqual(t, item.Key, remove)
	}
}

// the same entry set must produce the same snapshot whatever the
// insertion order
func TestOrderIndependence(t *testing.T) {
	keys := []int{15, -3, 42, 0, 7, 99, -28, 63, 4, 11, 2, -9}

	reference := avl.New[int, string]()
	for _, key := range keys {
		reference.Set(key, data(key))
	}
	expected := reference.Items()

	rnd := mathrand.New(mathrand.NewSource(12345))
	for round := 0; round < 20; round += 1 {
		shuffled := make([]int, len(keys))
		copy(shuffled, keys)
		rnd.Shuffle(len(shuffled), func(i int, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		tree := avl.New[int, string]()
		for _, key := range shuffled {
			tree.Set(key, data(key))
		}
		assert.Equal(t, expected, tree.Items())
	}
}

func TestIterateMatchesItems(t *testing.T) {
	tree := avl.New[int, string]()
	for _, key := range []int{50, 30, 70, 60, -20, 10, 90, 0} {
		tree.Set(key, data(key))
	}

	items := tree.Items()
	cursor := tree.Iterate()
	i := 0
	for p := cursor.Next(); nil != p; p = cursor.Next() {
		require.Less(t, i, len(items))
		assert.Equal(t, items[i].Key, p.Key())
		assert.Equal(t, items[i].Value, p.Value())
		i += 1
	}
	assert.Equal(t, len(items), i)

	// exhausted cursor stays exhausted
	assert.Nil(t, cursor.Next())

	// empty tree: empty cursor, no first or last node
	empty := avl.New[int, string]()
	assert.Nil(t, empty.Iterate().Next())
	assert.Nil(t, empty.First())
	assert.Nil(t, empty.Last())
}
