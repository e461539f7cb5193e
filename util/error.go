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

import (
	"errors"
	"fmt"
)

/*
Hard failure modes of a parse. These are the only two ways parsing can
fail outright rather than recording an ERROR node in the CST (spec.md
section 7).
*/
var (
	ErrOutOfMemory  = errors.New("out of memory")
	ErrPostfixLimit = errors.New("postfix safeguard exceeded")
)

/*
ParseError wraps a single syntactic surprise recorded during parsing
into a Go error: source name, diagnostic kind, human-readable detail,
and byte position. Produced from a parser.Diagnostic - there is no
runtime here, only syntax.
*/
type ParseError struct {
	Source string // name of the input the parser was given
	Kind   string // diagnostic kind, e.g. "UnexpectedToken", "UnterminatedString", "PostfixLimit"
	Detail string // human readable detail, e.g. "expected COLON, got IDENT"
	Pos    int    // byte offset into the source
}

/*
NewParseError creates a new ParseError. It takes plain values rather
than a parser.Diagnostic so that util never needs to import the parser
package - parser imports util, not the other way round.
*/
func NewParseError(source, kind, detail string, pos int) *ParseError {
	return &ParseError{source, kind, detail, pos}
}

/*
Error returns a human-readable string representation of this error.
*/
func (pe *ParseError) Error() string {
	return fmt.Sprintf("Parse error in %s: %s (%s) (Pos:%d)", pe.Source, pe.Kind, pe.Detail, pe.Pos)
}
