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

package index

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestIndex_Lookup tests Index.Lookup.
func TestIndex_Lookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		pairs []Pair[string]
		key   string

		expected []string
	}{
		{
			name:  "empty index",
			pairs: []Pair[string]{},
			key:   "chr1",

			expected: nil,
		},
		{
			name: "no match",
			pairs: []Pair[string]{
				{Key: "chr1", Value: "chr1 assembled"},
				{Key: "chr2", Value: "chr2 assembled"},
			},
			key: "chrX",

			expected: nil,
		},
		{
			name: "match first",
			pairs: []Pair[string]{
				{Key: "chr1", Value: "chr1 assembled"},
				{Key: "chr2", Value: "chr2 assembled"},
				{Key: "chrX", Value: "chrX assembled"},
			},
			key: "chr1",

			expected: []string{"chr1 assembled"},
		},
		{
			name: "match last",
			pairs: []Pair[string]{
				{Key: "chr1", Value: "chr1 assembled"},
				{Key: "chr2", Value: "chr2 assembled"},
				{Key: "chrX", Value: "chrX assembled"},
			},
			key: "chrX",

			expected: []string{"chrX assembled"},
		},
		{
			name: "unsorted input",
			pairs: []Pair[string]{
				{Key: "chrX", Value: "chrX assembled"},
				{Key: "chr1", Value: "chr1 assembled"},
				{Key: "chr2", Value: "chr2 assembled"},
			},
			key: "chr2",

			expected: []string{"chr2 assembled"},
		},
		{
			name: "colliding keys keep their order",
			pairs: []Pair[string]{
				{Key: "chr1", Value: "chr1 extra"},
				{Key: "chr2", Value: "chr2 assembled"},
				{Key: "chr1", Value: "chr1 other"},
			},
			key: "chr1",

			expected: []string{"chr1 extra", "chr1 other"},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			idx := New(test.pairs)

			result := idx.Lookup(test.key)
			if diff := cmp.Diff(test.expected, result); diff != "" {
				t.Fatalf("Lookup (-want, +got):\n%s", diff)
			}
		})
	}
}
