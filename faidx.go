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

package faidx

import (
	"errors"
	"fmt"
	"os"

	"github.com/seqio/go-faidx/fai"
	"github.com/seqio/go-faidx/internal/folding"
	"github.com/seqio/go-faidx/internal/index"
)

var (
	// ErrInvalidRange indicates a subsequence request with a negative
	// start or a length below one.
	ErrInvalidRange = errors.New("invalid subsequence range")

	// ErrAmbiguousName indicates that a name prefix matched more than
	// one sequence.
	ErrAmbiguousName = errors.New("ambiguous sequence name")
)

// Reference provides indexed retrieval from a raw sequence file.
//
// A Reference owns one open read handle and one index; both are fixed
// after Open. Sequence and SubSequence use positioned reads and may be
// called concurrently. SequenceNameStartingWith caches a resolution
// index on first use and requires external serialization.
type Reference struct {
	path string
	f    *os.File
	idx  *fai.Index

	// names maps first-token folds to full sequence names. It is
	// built lazily on first prefix resolution.
	names *index.Index[string]
}

// Open opens the raw sequence file at path for indexed retrieval.
//
// The sidecar index at path + fai.Extension is loaded when present.
// Otherwise the raw file is scanned to build the index, which is
// persisted immediately so that later opens skip the scan. An existing
// sidecar is trusted as-is; there is no staleness check against the
// raw file.
func Open(path string) (*Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sequence file %q: %w", path, err)
	}

	var idx *fai.Index
	faiPath := path + fai.Extension
	if _, serr := os.Stat(faiPath); serr == nil {
		idx, err = fai.Read(faiPath)
	} else {
		idx, err = fai.Build(path)
		if err == nil {
			err = idx.Write(faiPath)
		}
	}
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Reference{
		path: path,
		f:    f,
		idx:  idx,
	}, nil
}

// Index returns the Reference's index.
func (r *Reference) Index() *fai.Index {
	return r.idx
}

// Close releases the raw file handle.
func (r *Reference) Close() error {
	if err := r.f.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", r.path, err)
	}
	return nil
}

// Sequence returns the full sequence with the given name. The result
// has exactly the indexed length with all line terminators removed.
func (r *Reference) Sequence(name string) (string, error) {
	e, err := r.idx.Entry(name)
	if err != nil {
		return "", err
	}
	if e.Length == 0 {
		return "", nil
	}

	// Terminators embedded between the first and last character.
	newlines := 0
	if e.LineBlen > 0 {
		newlines = (e.Length - 1) / e.LineBlen
	}
	return r.readRange(e.Offset, e.Length+newlines)
}

// SubSequence returns length characters of the named sequence starting
// at the zero-based position start within its character stream.
//
// The raw byte window is computed in closed form from the entry's
// line-wrap width, so retrieval cost does not depend on start.
func (r *Reference) SubSequence(name string, start, length int) (string, error) {
	if start < 0 || length < 1 {
		return "", fmt.Errorf("%w: start %d, length %d", ErrInvalidRange, start, length)
	}
	e, err := r.idx.Entry(name)
	if err != nil {
		return "", err
	}
	if e.LineBlen == 0 {
		return "", fmt.Errorf("%w: sequence %q is empty", ErrInvalidRange, name)
	}

	newlinesBefore := 0
	if start > 0 {
		newlinesBefore = (start - 1) / e.LineBlen
	}
	newlinesByEnd := (start + length - 1) / e.LineBlen
	newlinesInside := newlinesByEnd - newlinesBefore

	return r.readRange(e.Offset+int64(newlinesBefore)+int64(start), length+newlinesInside)
}

// SequenceNameStartingWith resolves a whitespace-delimited name prefix
// to the unique full sequence name whose first token matches it. A
// prefix matching more than one sequence is an error rather than an
// arbitrary pick.
func (r *Reference) SequenceNameStartingWith(prefix string) (string, error) {
	if r.names == nil {
		pairs := make([]index.Pair[string], 0, r.idx.Len())
		for _, e := range r.idx.Entries() {
			folded, err := folding.FirstToken(e.Name)
			if err != nil {
				return "", err
			}
			pairs = append(pairs, index.Pair[string]{Key: folded, Value: e.Name})
		}
		r.names = index.New(pairs)
	}

	folded, err := folding.FirstToken(prefix)
	if err != nil {
		return "", err
	}

	matches := r.names.Lookup(folded)
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: no name starting with %q", fai.ErrSequenceNotFound, prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %d sequences", ErrAmbiguousName, prefix, len(matches))
	}
}

// readRange reads size raw bytes at offset and strips line
// terminators. The buffer is sized exactly to the computed raw window
// and filtered in place.
func (r *Reference) readRange(offset int64, size int) (string, error) {
	buf := make([]byte, size)
	if _, err := r.f.ReadAt(buf, offset); err != nil {
		return "", fmt.Errorf("reading %q at offset %d: %w", r.path, offset, err)
	}

	out := buf[:0]
	for _, c := range buf {
		if c != '\n' {
			out = append(out, c)
		}
	}
	return string(out), nil
}
