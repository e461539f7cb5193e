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
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"devt.de/krotik/common/fileutil"
	"devt.de/krotik/nixcst/parser"
)

func newCheckCmd() *cobra.Command {
	var ext string

	cmd := &cobra.Command{
		Use:   "check <dir>",
		Short: "Parse every Nix file under a directory and report diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]

			if ok, _ := fileutil.PathExists(root); !ok {
				return fmt.Errorf("no such file or directory: %s", root)
			}

			failed := 0
			checked := 0

			err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
				if err != nil || info.IsDir() || !strings.HasSuffix(path, ext) {
					return err
				}

				checked++
				data, rerr := ioutil.ReadFile(path)
				if rerr != nil {
					failed++
					fmt.Fprintln(cmd.ErrOrStderr(), path+":", rerr)
					return nil
				}

				diag := &parser.Diagnostic{}
				tree, perr := parser.ParseWithDiagnostic(path, data, diag)
				if perr != nil {
					failed++
					fmt.Fprintln(cmd.ErrOrStderr(), path+":", perr)
					return nil
				}
				if !tree.CheckLossless() {
					failed++
					fmt.Fprintln(cmd.ErrOrStderr(), path+": parse tree is not lossless")
					return nil
				}
				if diag.Kind != parser.NoDiagnostic {
					failed++
					fmt.Fprintln(cmd.ErrOrStderr(), diag.AsParseError(path))
				}
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "checked %d file(s), %d failed\n", checked, failed)
			if failed > 0 {
				return fmt.Errorf("%d file(s) failed to parse cleanly", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ext, "ext", ".nix", "file extension to check")
	return cmd
}
