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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrFaidx is a parent error for all command errors.
var ErrFaidx = errors.New("faidx")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrFaidx)

//nolint:gochecknoinits // init needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli`
	// handles the flag with the root command such that it takes a
	// command name argument but we don't use commands.
	//
	// This is done because `faidx --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func printVersion(c *cli.Context) error {
	info := version.GetVersionInfo()
	if _, err := fmt.Fprintln(c.App.Writer, info.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrFaidx, err)
	}
	return nil
}

func newFaidxApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Indexed retrieval from FASTA/FASTQ-style sequence files.",
		Description: strings.Join([]string{
			"Build and query sidecar indexes for random access to sequence files.",
			"http://github.com/seqio/go-faidx",
		}, "\n"),
		Flags: []cli.Flag{
			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			indexCommand,
			listCommand,
			getCommand,
			resolveCommand,
		},
	}
}
