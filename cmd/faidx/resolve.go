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

	"github.com/urfave/cli/v2"

	faidx "github.com/seqio/go-faidx"
)

var resolveCommand = &cli.Command{
	Name:      "resolve",
	Usage:     "resolve a name prefix to a full sequence name",
	ArgsUsage: "FILE PREFIX",
	Description: "Print the full name of the unique sequence in FILE whose first\n" +
		"whitespace-delimited name token equals PREFIX.",
	Action: func(c *cli.Context) error {
		args := c.Args().Slice()
		if len(args) != 2 {
			return fmt.Errorf("%w: expected FILE PREFIX arguments", ErrFlagParse)
		}

		r, err := faidx.Open(args[0])
		if err != nil {
			return err
		}
		defer r.Close()

		name, err := r.SequenceNameStartingWith(args[1])
		if err != nil {
			return err
		}

		fmt.Fprintln(c.App.Writer, name)
		return nil
	},
}
