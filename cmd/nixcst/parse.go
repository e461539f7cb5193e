/*
 * nixcst
 *
 * Copyright 2024 The nixcst Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"devt.de/krotik/common/termutil"
	"devt.de/krotik/nixcst/parser"
	"devt.de/krotik/nixcst/util"
)

func newParseCmd() *cobra.Command {
	var checkLossless bool

	cmd := &cobra.Command{
		Use:   "parse <file.nix>",
		Short: "Parse a Nix file and print its concrete syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			data, err := ioutil.ReadFile(path)
			if err != nil {
				return err
			}

			var logger util.Logger
			if verbose {
				logger = util.NewStdOutLogger()
			}

			diag := &parser.Diagnostic{}
			tree, err := parser.ParseWithLogger(path, data, diag, logger)
			if err != nil {
				return err
			}

			dump := tree.Dump()
			if isTerminal(cmd.OutOrStdout()) {
				dump = colorizeDump(dump)
			}
			fmt.Fprint(cmd.OutOrStdout(), dump)

			if checkLossless && !tree.CheckLossless() {
				return fmt.Errorf("%s: parse tree is not lossless", path)
			}

			if diag.Kind != parser.NoDiagnostic {
				fmt.Fprintln(cmd.ErrOrStderr(), diag.AsParseError(path))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&checkLossless, "check-lossless", false, "verify the tree reproduces the source byte for byte")
	return cmd
}

/*
isTerminal reports whether w is connected to an interactive terminal,
using termutil's line terminal as the probe - if it can attach one,
stdout is a real console rather than a pipe or file redirect.
*/
func isTerminal(w interface{}) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	_, err := termutil.NewConsoleLineTerminal(f)
	return err == nil
}

/*
colorizeDump adds ANSI color to NODE_/TOKEN_ lines of a golden dump, for
a human reading the tree at an interactive terminal. The golden format
itself (spec.md section 6) is untouched - coloring is applied on top of
the returned string, never fed back into a parse.
*/
func colorizeDump(dump string) string {
	const (
		nodeColor  = "\x1b[36m"
		tokenColor = "\x1b[33m"
		reset      = "\x1b[0m"
	)

	lines := strings.Split(dump, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]
		switch {
		case strings.HasPrefix(trimmed, "NODE_"):
			lines[i] = indent + nodeColor + trimmed + reset
		case strings.HasPrefix(trimmed, "TOKEN_"):
			lines[i] = indent + tokenColor + trimmed + reset
		}
	}
	return strings.Join(lines, "\n")
}
