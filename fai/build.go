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
	"os"
)

// Build scans the raw sequence file at path in a single forward pass
// and returns its index.
//
// Lines starting with '>' or '@' begin a new record named by the rest
// of the line. Lines starting with ';' are comments. A line starting
// with '+' marks a quality block; the two lines that follow it are
// consumed without contributing to any record's length. All other
// lines are sequence data.
//
// The first sequence line of a record fixes the record's line-wrap
// width. Later lines of a different length accumulate into the
// record's length but do not change the width, so records with ragged
// wrapping are indexed by their first line rather than rejected.
func Build(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sequence file %q: %w", path, err)
	}
	defer f.Close()

	idx := &Index{entries: map[string]Entry{}}
	r := bufio.NewReader(f)

	entry := Entry{Offset: -1}
	var offset int64

scan:
	for {
		line, ok := readLine(r)
		if !ok {
			break
		}
		lineLen := len(line)

		switch {
		case lineLen > 0 && line[0] == ';':
			// Comment; its bytes still advance the offset below.
		case lineLen > 0 && line[0] == '+':
			// Quality block. Both consumed lines advance the offset;
			// the marker line's own length is overwritten and never
			// counted, matching the sidecar convention's historical
			// accounting.
			qual, ok := readLine(r)
			if !ok {
				break scan
			}
			offset += int64(len(qual)) + 1
			next, ok := readLine(r)
			if !ok {
				break scan
			}
			lineLen = len(next)
		case lineLen > 0 && (line[0] == '>' || line[0] == '@'):
			if entry.Name != "" {
				idx.add(entry)
			}
			entry = Entry{Name: string(line[1:]), Offset: -1}
		default:
			if entry.Offset < 0 {
				entry.Offset = offset
			}
			entry.Length += lineLen
			if entry.LineLen == 0 {
				entry.LineLen = lineLen + 1
				entry.LineBlen = entry.LineLen - 1
			}
		}

		offset += int64(lineLen) + 1
	}

	if entry.Name != "" {
		idx.add(entry)
	}
	return idx, nil
}

// readLine reads one terminator-stripped line from r. ok is false at
// end of input with no remaining bytes.
func readLine(r *bufio.Reader) ([]byte, bool) {
	line, err := r.ReadBytes('\n')
	if len(line) > 0 && line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
	}
	if err != nil && len(line) == 0 {
		return nil, false
	}
	return line, true
}
