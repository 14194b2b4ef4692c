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

// Package testutil provides helpers for writing test sequence files
// and sidecar indexes.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/seqio/go-faidx/fai"
)

// WriteSeqFile writes a raw sequence file with the given contents into
// a temporary directory and returns its path. The directory is cleaned
// up when the test ends.
func WriteSeqFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ref.fa")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing sequence file: %v", err)
	}
	return path
}

// WriteSidecar writes a sidecar index for the raw sequence file at
// path with the given entries, in the given order.
func WriteSidecar(t *testing.T, path string, entries []fai.Entry) string {
	t.Helper()

	faiPath := path + fai.Extension
	if err := os.WriteFile(faiPath, MakeFai(entries), 0o600); err != nil {
		t.Fatalf("writing sidecar index: %v", err)
	}
	return faiPath
}

// MakeFai renders entries in sidecar index format.
func MakeFai(entries []fai.Entry) []byte {
	var b []byte
	for _, e := range entries {
		b = append(b, e.String()...)
		b = append(b, '\n')
	}
	return b
}
