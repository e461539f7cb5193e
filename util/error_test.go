/*
 * nixcst
 *
 * Copyright 2024 The nixcst Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import "testing"

func TestParseError(t *testing.T) {

	err := NewParseError("test.nix", "UnexpectedToken", "expected COLON, got IDENT", 12)

	if err.Error() != "Parse error in test.nix: UnexpectedToken (expected COLON, got IDENT) (Pos:12)" {
		t.Error("Unexpected result:", err)
		return
	}

	if err.Source != "test.nix" || err.Kind != "UnexpectedToken" || err.Pos != 12 {
		t.Error("Unexpected fields:", err)
		return
	}
}
