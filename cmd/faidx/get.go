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
	"strconv"

	"github.com/urfave/cli/v2"

	faidx "github.com/seqio/go-faidx"
)

var getCommand = &cli.Command{
	Name:      "get",
	Usage:     "print a sequence or subsequence",
	ArgsUsage: "FILE NAME [START LENGTH]",
	Description: "Print the sequence NAME from FILE. With START and LENGTH, print\n" +
		"LENGTH characters beginning at the zero-based position START.",
	Action: func(c *cli.Context) error {
		args := c.Args().Slice()
		if len(args) != 2 && len(args) != 4 {
			return fmt.Errorf("%w: expected FILE NAME [START LENGTH]", ErrFlagParse)
		}

		r, err := faidx.Open(args[0])
		if err != nil {
			return err
		}
		defer r.Close()

		var seq string
		if len(args) == 2 {
			seq, err = r.Sequence(args[1])
		} else {
			start, serr := strconv.Atoi(args[2])
			if serr != nil {
				return fmt.Errorf("%w: invalid START %q", ErrFlagParse, args[2])
			}
			length, lerr := strconv.Atoi(args[3])
			if lerr != nil {
				return fmt.Errorf("%w: invalid LENGTH %q", ErrFlagParse, args[3])
			}
			seq, err = r.SubSequence(args[1], start, length)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(c.App.Writer, seq)
		return nil
	},
}
