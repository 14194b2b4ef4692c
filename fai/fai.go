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

package fai

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
)

// Extension is the conventional extension for a sidecar index file,
// appended to the raw sequence file's path.
const Extension = ".fai"

var (
	// ErrSequenceNotFound indicates that a sequence name is not present
	// in the index.
	ErrSequenceNotFound = errors.New("sequence not found")

	// ErrMalformedIndex indicates that a sidecar index file is
	// structurally invalid.
	ErrMalformedIndex = errors.New("malformed index")
)

// Entry describes one named sequence's location and line-wrap geometry
// within the raw sequence file.
type Entry struct {
	// Name is the sequence identifier, unique within an Index.
	Name string

	// Length is the total number of sequence characters, excluding
	// line terminators.
	Length int

	// Offset is the absolute byte offset of the first sequence
	// character in the raw file. A negative offset marks an entry
	// whose first data line has not been located yet.
	Offset int64

	// LineBlen is the number of sequence characters per wrapped line.
	LineBlen int

	// LineLen is LineBlen plus the line terminator.
	LineLen int
}

// String renders the entry as a sidecar index record without the
// trailing newline.
func (e Entry) String() string {
	return e.Name + "\t" + strconv.Itoa(e.Length) + "\t" +
		strconv.FormatInt(e.Offset, 10) + "\t" +
		strconv.Itoa(e.LineBlen) + "\t" + strconv.Itoa(e.LineLen)
}

// Index maps sequence names to their entries. The zero value is not
// usable; construct an Index with New, Read, or Build.
type Index struct {
	entries map[string]Entry
}

// New reads a sidecar index from r.
func New(r io.Reader) (*Index, error) {
	idx := &Index{entries: map[string]Entry{}}

	s := NewScanner(r)
	for s.Scan() {
		idx.add(s.Entry())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return idx, nil
}

// Read reads the sidecar index file at path.
func Read(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening index %q: %w", path, err)
	}
	defer f.Close()

	idx, err := New(f)
	if err != nil {
		return nil, fmt.Errorf("reading index %q: %w", path, err)
	}
	return idx, nil
}

// add records the entry, replacing any previous entry with the same
// name. Raw files do not guarantee unique names; the last one wins.
func (idx *Index) add(e Entry) {
	idx.entries[e.Name] = e
}

// Entry returns the entry for the given sequence name.
func (idx *Index) Entry(name string) (Entry, error) {
	e, ok := idx.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrSequenceNotFound, name)
	}
	return e, nil
}

// Len returns the number of entries in the index.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Entries returns all entries sorted by ascending offset, mirroring
// the physical layout of the raw file.
func (idx *Index) Entries() []Entry {
	entries := make([]Entry, 0, len(idx.entries))
	for _, e := range idx.entries {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Offset, b.Offset)
	})
	return entries
}

// WriteTo writes the index in sidecar format, one newline-terminated
// record per entry, sorted by ascending offset. The output for a given
// set of entries is deterministic.
func (idx *Index) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, e := range idx.Entries() {
		nn, err := io.WriteString(w, e.String()+"\n")
		n += int64(nn)
		if err != nil {
			return n, fmt.Errorf("writing index: %w", err)
		}
	}
	return n, nil
}

// Write writes the index in sidecar format to the file at path,
// replacing any existing file.
func (idx *Index) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating index %q: %w", path, err)
	}
	if _, err := idx.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing index %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing index %q: %w", path, err)
	}
	return nil
}
