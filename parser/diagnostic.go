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
	"fmt"

	"devt.de/krotik/nixcst/token"
	"devt.de/krotik/nixcst/util"
)

/*
DiagnosticKind classifies the one diagnostic a parse may record (spec.md
section 7).
*/
type DiagnosticKind int

const (
	NoDiagnostic DiagnosticKind = iota
	UnexpectedToken
	UnterminatedString
	UnterminatedPath
	PostfixLimit
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnterminatedString:
		return "UnterminatedString"
	case UnterminatedPath:
		return "UnterminatedPath"
	case PostfixLimit:
		return "PostfixLimit"
	}
	return "NoDiagnostic"
}

/*
Diagnostic is the parser's single-slot error report: at most one is
produced per parse, describing the first syntactic surprise
encountered (spec.md section 7). Every surprise still becomes a visible
ERROR node in the tree regardless of whether a Diagnostic slot was
provided.
*/
type Diagnostic struct {
	Kind     DiagnosticKind
	Span     [2]uint32
	Got      token.Kind
	Expected token.Kind
	Note     string
	Limit    int
}

/*
AsParseError converts d into a util.ParseError, for callers that want a
Go error value rather than the raw Diagnostic struct.
*/
func (d Diagnostic) AsParseError(source string) *util.ParseError {
	detail := d.Note
	if detail == "" {
		detail = fmt.Sprintf("expected %v, got %v", d.Expected, d.Got)
	}
	return util.NewParseError(source, d.Kind.String(), detail, int(d.Span[0]))
}
