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

// Character classifier
// =====================
//
// Go has no portable SIMD intrinsics in the standard library, so the
// "vectorized" predicates here are batches: a fixed-width window of
// bytes is classified by unrolling the scalar predicate over the whole
// window, never branching on the length of the window itself. Every
// Run scanner below falls back to the scalar predicate, byte by byte,
// once fewer than VectorWidth bytes remain - this is the "scalar
// fallback used on the tail of every scan" spec.md requires. The
// batch and scalar forms must therefore always agree bit-for-bit;
// the property is checked directly in class_test.go.

/*
VectorWidth is the batch size used by the vectorized predicates below.
It is a performance knob only: correctness never depends on its value.
*/
const VectorWidth = 8

/*
Whitespace reports whether b is a Nix whitespace byte.
*/
func Whitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

/*
Digit reports whether b is an ASCII decimal digit.
*/
func Digit(b byte) bool {
	return b >= '0' && b <= '9'
}

/*
IdentStart reports whether b may begin an identifier.
*/
func IdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

/*
IdentCont reports whether b may continue an identifier once started.
*/
func IdentCont(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') || b == '_' || b == '-' || b == '\''
}

/*
PathTerminator reports whether b ends a bare path literal: whitespace
or one of "; ) ] } :".
*/
func PathTerminator(b byte) bool {
	return Whitespace(b) || b == ';' || b == ')' || b == ']' || b == '}' || b == ':'
}

/*
Predicate is a scalar single-byte classifier.
*/
type Predicate func(byte) bool

/*
ClassifyVector applies pred to every byte of chunk and writes the
results into out, which must have length len(chunk). Semantics are
bitwise identical to calling pred on each byte independently; the
VectorWidth-sized unrolled loop is a throughput optimization, not a
change in behavior.
*/
func ClassifyVector(chunk []byte, pred Predicate, out []bool) {
	if len(out) != len(chunk) {
		panic("token: ClassifyVector: out must have len(chunk) entries")
	}

	i := 0
	for ; i+VectorWidth <= len(chunk); i += VectorWidth {
		out[i+0] = pred(chunk[i+0])
		out[i+1] = pred(chunk[i+1])
		out[i+2] = pred(chunk[i+2])
		out[i+3] = pred(chunk[i+3])
		out[i+4] = pred(chunk[i+4])
		out[i+5] = pred(chunk[i+5])
		out[i+6] = pred(chunk[i+6])
		out[i+7] = pred(chunk[i+7])
	}

	// Scalar fallback for the tail.

	for ; i < len(chunk); i++ {
		out[i] = pred(chunk[i])
	}
}

/*
RunEnd returns the offset of the first byte at or after start for which
pred is false, or len(data) if pred holds all the way to the end. It is
the primitive behind every "consume a maximal run" step in the
tokenizer (whitespace runs, identifier runs, digit runs).

RunEnd scans in VectorWidth batches and only falls back to a
byte-at-a-time scalar scan inside the batch that contains the actual
break, so the common case (long uniform runs) pays for one predicate
call per byte either way but touches memory in cache-friendly strides.
*/
func RunEnd(data []byte, start int, pred Predicate) int {
	i := start

	for ; i+VectorWidth <= len(data); i += VectorWidth {
		allMatch := true
		for j := 0; j < VectorWidth; j++ {
			if !pred(data[i+j]) {
				allMatch = false
				break
			}
		}
		if !allMatch {
			break
		}
	}

	for ; i < len(data); i++ {
		if !pred(data[i]) {
			return i
		}
	}

	return i
}
