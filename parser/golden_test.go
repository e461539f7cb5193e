/*
 * nixcst
 *
 * Copyright 2024 The nixcst Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

/*
stripErrorBanner removes a leading "error: ..." line and the blank line
following it, per spec.md section 6 - such a banner documents the case
for a human reader but is not part of the compared dump.
*/
func stripErrorBanner(expect string) string {
	if !strings.HasPrefix(expect, "error:") {
		return expect
	}
	if idx := strings.Index(expect, "\n\n"); idx != -1 {
		return expect[idx+2:]
	}
	return expect
}

/*
runGolden walks dir for *.nix files, parses each against its sibling
*.expect, and compares the golden dump verbatim (after stripping any
leading error banner).
*/
func runGolden(t *testing.T, dir string) {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(dir, "*.nix"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no fixtures found under %s", dir)
	}

	for _, nixPath := range matches {
		nixPath := nixPath
		name := strings.TrimSuffix(filepath.Base(nixPath), ".nix")

		t.Run(name, func(t *testing.T) {
			source, err := ioutil.ReadFile(nixPath)
			if err != nil {
				t.Fatalf("read %s: %v", nixPath, err)
			}

			expectPath := filepath.Join(dir, name+".expect")
			wantRaw, err := ioutil.ReadFile(expectPath)
			if err != nil {
				t.Fatalf("read %s: %v", expectPath, err)
			}
			want := stripErrorBanner(string(wantRaw))

			tree, err := Parse(name, source)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}

			if !tree.CheckLossless() {
				t.Fatalf("%s: tree is not lossless", name)
			}

			got := tree.Dump()
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s: golden dump mismatch (-want +got):\n%s", name, diff)
			}
		})
	}
}

func TestGoldenSuccess(t *testing.T) {
	runGolden(t, filepath.Join("..", "testdata", "parser", "success"))
}

func TestGoldenError(t *testing.T) {
	runGolden(t, filepath.Join("..", "testdata", "parser", "error"))
}
