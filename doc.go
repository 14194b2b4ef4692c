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

// Package faidx implements indexed random access to FASTA/FASTQ-style
// sequence files in pure Go.
//
// A raw sequence file is paired with a sidecar index (see the fai
// package) recording each named sequence's byte offset and line-wrap
// geometry. Opening a Reference loads the sidecar if it exists and
// otherwise builds and persists it, after which any subsequence of any
// record can be materialized with a single positioned read, regardless
// of how large the raw file is.
package faidx
