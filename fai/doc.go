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

// Package fai reads, writes, and builds sidecar sequence indexes.
//
// A sidecar index lives next to a raw FASTA/FASTQ-style sequence file
// at the raw file's path plus the ".fai" extension. It is plain text
// with one record per line and five tab-separated fields:
//
//	name  length  offset  line_blen  line_len
//
// where offset is the byte position of the record's first sequence
// character within the raw file, line_blen is the number of sequence
// characters per wrapped line, and line_len is the same including the
// line terminator. Records are ordered by ascending offset so the
// index mirrors the raw file's physical layout.
//
// The format is shared with external tooling using the same
// convention; field order and the tab separator must be preserved
// exactly.
package fai
