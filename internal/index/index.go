// Copyright 2025 The go-faidx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index implements a sorted string-keyed search index.
package index

import (
	"slices"
	"strings"
)

// Pair is a key-value pair held by an Index. Keys need not be unique;
// sequence names fold to first tokens that may collide, and collisions
// are meaningful to callers.
type Pair[V any] struct {
	Key   string
	Value V
}

// Index is an immutable multimap from string keys to values, backed by
// an array sorted on the key. Lookup returns every value stored under
// a key, so callers can tell unique matches from ambiguous ones.
type Index[V any] struct {
	pairs []Pair[V]
}

// New creates an index over the given pairs. Pairs sharing a key keep
// their relative order.
func New[V any](pairs []Pair[V]) *Index[V] {
	sorted := make([]Pair[V], len(pairs))
	copy(sorted, pairs)
	slices.SortStableFunc(sorted, func(a, b Pair[V]) int {
		return strings.Compare(a.Key, b.Key)
	})

	return &Index[V]{pairs: sorted}
}

// Lookup performs a binary search over the index and returns all
// values stored under key.
func (idx *Index[V]) Lookup(key string) []V {
	i, found := slices.BinarySearchFunc(idx.pairs, key, func(p Pair[V], k string) int {
		return strings.Compare(p.Key, k)
	})
	if !found {
		return nil
	}

	var values []V
	for ; i < len(idx.pairs) && idx.pairs[i].Key == key; i++ {
		values = append(values, idx.pairs[i].Value)
	}
	return values
}
