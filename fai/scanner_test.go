// Copyright 2025 The go-faidx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fai_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/seqio/go-faidx/fai"
)

// TestScanner tests scanning sidecar index records.
func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string

		expected []fai.Entry
		err      error
		errText  string
	}{
		{
			name: "empty input",
			data: "",

			expected: nil,
		},
		{
			name: "single record",
			data: "seq1\t12\t6\t10\t11\n",

			expected: []fai.Entry{
				{Name: "seq1", Length: 12, Offset: 6, LineBlen: 10, LineLen: 11},
			},
		},
		{
			name: "multiple records",
			data: "seq1\t12\t6\t10\t11\nseq2 extra description\t4\t26\t4\t5\n",

			expected: []fai.Entry{
				{Name: "seq1", Length: 12, Offset: 6, LineBlen: 10, LineLen: 11},
				{Name: "seq2 extra description", Length: 4, Offset: 26, LineBlen: 4, LineLen: 5},
			},
		},
		{
			name: "offset beyond 32 bits",
			data: "chr1\t248956422\t5124095000\t60\t61\n",

			expected: []fai.Entry{
				{Name: "chr1", Length: 248956422, Offset: 5124095000, LineBlen: 60, LineLen: 61},
			},
		},
		{
			name: "missing trailing newline",
			data: "seq1\t12\t6\t10\t11",

			expected: []fai.Entry{
				{Name: "seq1", Length: 12, Offset: 6, LineBlen: 10, LineLen: 11},
			},
		},
		{
			name: "too few fields",
			data: "seq1\t12\t6\t10\t11\nseq2\t4\t26\n",

			expected: []fai.Entry{
				{Name: "seq1", Length: 12, Offset: 6, LineBlen: 10, LineLen: 11},
			},
			err:     fai.ErrMalformedIndex,
			errText: "line 2",
		},
		{
			name: "too many fields",
			data: "seq1\t12\t6\t10\t11\t99\n",

			err:     fai.ErrMalformedIndex,
			errText: "line 1",
		},
		{
			name: "non-numeric length",
			data: "seq1\ttwelve\t6\t10\t11\n",

			err:     fai.ErrMalformedIndex,
			errText: "line 1",
		},
		{
			name: "non-numeric offset",
			data: "seq1\t12\tsix\t10\t11\n",

			err:     fai.ErrMalformedIndex,
			errText: "line 1",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s := fai.NewScanner(strings.NewReader(test.data))

			var entries []fai.Entry
			for s.Scan() {
				entries = append(entries, s.Entry())
			}

			if diff := cmp.Diff(test.expected, entries); diff != "" {
				t.Fatalf("Scan (-want, +got):\n%s", diff)
			}

			err := s.Err()
			if test.err == nil {
				if err != nil {
					t.Fatalf("Err: %v", err)
				}
				return
			}
			if !errors.Is(err, test.err) {
				t.Fatalf("Err; want: %v, got: %v", test.err, err)
			}
			if !strings.Contains(err.Error(), test.errText) {
				t.Fatalf("Err; want text %q, got: %v", test.errText, err)
			}
		})
	}
}

// TestNew_malformed tests that New propagates scanner errors.
func TestNew_malformed(t *testing.T) {
	t.Parallel()

	_, err := fai.New(strings.NewReader("seq1\t12\n"))
	if !errors.Is(err, fai.ErrMalformedIndex) {
		t.Fatalf("New; want: %v, got: %v", fai.ErrMalformedIndex, err)
	}
}
