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

import "fmt"

/*
Token is a single lexical unit: a kind plus a half-open byte span into
the source. Spans never overlap and never skip bytes between sibling
tokens produced by one tokenizer run.
*/
type Token struct {
	Kind  Kind
	Start uint32
	End   uint32
}

/*
Len returns the byte length of the token's span.
*/
func (t Token) Len() uint32 {
	return t.End - t.Start
}

/*
Text returns the token's slice of source. The caller must pass the same
source the token was produced from.
*/
func (t Token) Text(source []byte) []byte {
	return source[t.Start:t.End]
}

/*
String gives a debug representation, not used for golden output.
*/
func (t Token) String() string {
	return fmt.Sprintf("%v@%d..%d", t.Kind, t.Start, t.End)
}
