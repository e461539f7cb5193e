/*
 * nixcst
 *
 * Copyright 2024 The nixcst Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Command nixcst is a thin external collaborator over the parser
package: it parses, prints and verifies Nix expression files, but
performs no semantic work of its own (spec.md section 6, "no files, no
network" applies to the core - this binary is the one place file I/O
happens).
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"devt.de/krotik/nixcst/config"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "nixcst",
		Short: "Lossless Nix expression parser",
		Long:  "nixcst parses Nix expressions into a source-preserving concrete syntax tree.",
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace lexer/parser state transitions")

	root.AddCommand(newParseCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newVersionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the nixcst version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.ProductVersion)
			return nil
		},
	}
}
