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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scanner scans a sidecar index from start to end, one record per
// line. A record that does not split into exactly five well-typed
// fields stops the scan with a malformed-index error that carries the
// 1-based line number and the offending line.
type Scanner struct {
	s     *bufio.Scanner
	line  int
	entry Entry
	err   error
}

// NewScanner returns a new index scanner reading records from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		s: bufio.NewScanner(bufio.NewReader(r)),
	}
}

// Scan advances the scanner to the next index record. It returns false
// if the scan stops, either by reaching the end of the input or an
// error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if !s.s.Scan() {
		return false
	}
	s.line++

	line := s.s.Text()
	fields := strings.Split(line, "\t")
	if len(fields) != 5 {
		s.err = fmt.Errorf("%w: line %d has %d fields: %q",
			ErrMalformedIndex, s.line, len(fields), line)
		return false
	}

	length, err := strconv.Atoi(fields[1])
	if err != nil {
		s.err = s.malformed(line, err)
		return false
	}
	offset, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		s.err = s.malformed(line, err)
		return false
	}
	lineBlen, err := strconv.Atoi(fields[3])
	if err != nil {
		s.err = s.malformed(line, err)
		return false
	}
	lineLen, err := strconv.Atoi(fields[4])
	if err != nil {
		s.err = s.malformed(line, err)
		return false
	}

	s.entry = Entry{
		Name:     fields[0],
		Length:   length,
		Offset:   offset,
		LineBlen: lineBlen,
		LineLen:  lineLen,
	}
	return true
}

// Entry returns the record parsed by the last call to Scan.
func (s *Scanner) Entry() Entry {
	return s.entry
}

// Err returns the first error encountered by the Scanner.
func (s *Scanner) Err() error {
	if s.err != nil {
		return s.err
	}
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// malformed reports a numeric field that failed to parse.
func (s *Scanner) malformed(line string, err error) error {
	return fmt.Errorf("%w: line %d: %q: %v", ErrMalformedIndex, s.line, line, err)
}
