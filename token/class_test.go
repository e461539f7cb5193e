/*
 * nixcst
 *
 * Copyright 2024 The nixcst Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package token

import "testing"

func TestScalarPredicates(t *testing.T) {
	if !Whitespace(' ') || !Whitespace('\t') || !Whitespace('\n') || !Whitespace('\r') {
		t.Error("Whitespace predicate missed a whitespace byte")
	}
	if Whitespace('a') {
		t.Error("Whitespace predicate matched a non-whitespace byte")
	}

	if !Digit('0') || !Digit('9') || Digit('a') {
		t.Error("Digit predicate is wrong")
	}

	if !IdentStart('a') || !IdentStart('Z') || !IdentStart('_') || IdentStart('0') {
		t.Error("IdentStart predicate is wrong")
	}

	if !IdentCont('a') || !IdentCont('0') || !IdentCont('-') || !IdentCont('\'') || IdentCont('!') {
		t.Error("IdentCont predicate is wrong")
	}

	if !PathTerminator(' ') || !PathTerminator(';') || !PathTerminator(':') || PathTerminator('a') {
		t.Error("PathTerminator predicate is wrong")
	}
}

func TestClassifyVectorMatchesScalar(t *testing.T) {
	chunk := []byte("  a1_-'9\t\nfoo;);] bar")

	for _, pred := range []Predicate{Whitespace, Digit, IdentStart, IdentCont, PathTerminator} {
		out := make([]bool, len(chunk))
		ClassifyVector(chunk, pred, out)

		for i, b := range chunk {
			if out[i] != pred(b) {
				t.Errorf("ClassifyVector disagreed with scalar predicate at %d (%q): got %v want %v",
					i, b, out[i], pred(b))
			}
		}
	}
}

func TestRunEnd(t *testing.T) {
	data := []byte("   abc   ")

	if end := RunEnd(data, 0, Whitespace); end != 3 {
		t.Errorf("Unexpected whitespace run end: %v", end)
	}

	if end := RunEnd(data, 3, IdentCont); end != 6 {
		t.Errorf("Unexpected ident run end: %v", end)
	}

	if end := RunEnd(data, 6, Whitespace); end != len(data) {
		t.Errorf("Unexpected trailing whitespace run end: %v", end)
	}

	// A run crossing multiple VectorWidth batches must still land on the
	// exact byte, not be rounded to a batch boundary.

	long := make([]byte, VectorWidth*4+3)
	for i := range long {
		long[i] = 'a'
	}
	long[len(long)-1] = ' '

	if end := RunEnd(long, 0, IdentCont); end != len(long)-1 {
		t.Errorf("Unexpected long run end: %v want %v", end, len(long)-1)
	}
}
