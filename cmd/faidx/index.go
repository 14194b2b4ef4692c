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

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/seqio/go-faidx/fai"
)

var indexCommand = &cli.Command{
	Name:      "index",
	Usage:     "build the sidecar index for a sequence file",
	ArgsUsage: "FILE",
	Description: "Scan FILE and write its sidecar index to FILE" + fai.Extension +
		", replacing any existing index.",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected FILE argument", ErrFlagParse)
		}
		path := c.Args().Get(0)

		idx, err := fai.Build(path)
		if err != nil {
			return err
		}
		if err := idx.Write(path + fai.Extension); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "indexed %d sequences in %s\n", idx.Len(), path)
		return nil
	},
}
