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

// Package folding provides text folding used for sequence name
// matching.
package folding

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// TokenFolder folds input down to its first whitespace-delimited
// token. Leading whitespace is dropped and everything from the first
// whitespace rune after the token onward is discarded. Sequence
// headers commonly carry free-form description text after the name's
// first token; folding a full name with TokenFolder yields the token
// callers use to address the sequence.
type TokenFolder struct {
	// started is true after encountering the first non-whitespace rune.
	started bool

	// done is true once the token has been fully emitted.
	done bool
}

// Transform implements [transform.Transformer.Transform].
func (f *TokenFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(c) {
			if f.started {
				// End of the token; the rest of the input is dropped.
				f.done = true
			}
			nSrc += size
			continue
		}

		if f.done {
			nSrc += size
			continue
		}
		f.started = true

		// Emit the character.
		// NOTE: we cannot use size here because c could be
		// utf8.RuneError in which case size would be 1 but the length
		// of utf8.RuneError is 3.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
		nSrc += size
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *TokenFolder) Reset() {
	*f = TokenFolder{}
}

// FirstToken returns the first whitespace-delimited token of s.
func FirstToken(s string) (string, error) {
	folded, _, err := transform.String(&TokenFolder{}, s)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}
	return folded, nil
}
