/*
 * nixcst
 *
 * Copyright 2024 The nixcst Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lexer

import "devt.de/krotik/nixcst/token"

/*
scanNumber consumes a numeric literal starting at start, returning the
offset just past it and whether it is a FLOAT (has a fractional part
or an exponent) rather than an INTEGER.
*/
func scanNumber(data []byte, start int) (int, bool) {
	i := token.RunEnd(data, start, token.Digit)
	isFloat := false

	if i < len(data) && data[i] == '.' && i+1 < len(data) && token.Digit(data[i+1]) {
		isFloat = true
		i = token.RunEnd(data, i+1, token.Digit)
	}

	if i < len(data) && (data[i] == 'e' || data[i] == 'E') {
		j := i + 1
		if j < len(data) && (data[j] == '+' || data[j] == '-') {
			j++
		}
		expEnd := token.RunEnd(data, j, token.Digit)
		if expEnd > j {
			isFloat = true
			i = expEnd
		}
	}

	return i, isFloat
}
