// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	mathrand "math/rand"
	"testing"

	"github.com/bitmark-inc/avl"
)

const benchTreeSize = 10_000

func benchKeys(n int) []int {
	prng := mathrand.New(mathrand.NewSource(42))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = prng.Intn(n * 4)
	}
	return keys
}

func BenchmarkSet(b *testing.B) {
	keys := benchKeys(benchTreeSize)
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree := avl.New[int, int]()
		for _, key := range keys {
			tree.Set(key, key)
		}
	}
}

func BenchmarkGet(b *testing.B) {
	keys := benchKeys(benchTreeSize)
	tree := avl.New[int, int]()
	for _, key := range keys {
		tree.Set(key, key)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree.Get(keys[i%len(keys)])
	}
}

func BenchmarkFindMiss(b *testing.B) {
	keys := benchKeys(benchTreeSize)
	tree := avl.New[int, int]()
	for _, key := range keys {
		tree.Set(key, key)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree.Find(-1 - i%benchTreeSize)
	}
}

func BenchmarkSetDelete(b *testing.B) {
	keys := benchKeys(benchTreeSize)
	tree := avl.New[int, int]()
	for _, key := range keys {
		tree.Set(key, key)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		key := keys[i%len(keys)]
		tree.Delete(key)
		tree.Set(key, key)
	}
}

func BenchmarkItems(b *testing.B) {
	keys := benchKeys(benchTreeSize)
	tree := avl.New[int, int]()
	for _, key := range keys {
		tree.Set(key, key)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		_ = tree.Items()
	}
}
