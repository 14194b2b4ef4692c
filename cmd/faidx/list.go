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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	faidx "github.com/seqio/go-faidx"
)

var listCommand = &cli.Command{
	Name:        "list",
	Usage:       "list indexed sequences",
	ArgsUsage:   "FILE",
	Description: "List every indexed sequence in FILE with its length and layout.",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected FILE argument", ErrFlagParse)
		}

		r, err := faidx.Open(c.Args().Get(0))
		if err != nil {
			return err
		}
		defer r.Close()

		tbl := table.New("NAME", "LENGTH", "OFFSET", "LINE_BLEN", "LINE_LEN").
			WithWriter(c.App.Writer)
		for _, e := range r.Index().Entries() {
			tbl.AddRow(e.Name, e.Length, e.Offset, e.LineBlen, e.LineLen)
		}
		tbl.Print()

		return nil
	},
}
