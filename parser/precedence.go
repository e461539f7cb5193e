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

import "devt.de/krotik/nixcst/token"

/*
Binding powers, lowest to highest (spec.md section 4.4). Right
associativity is implemented by parsing the right-hand side at one
level below the operator's own precedence; left associativity at the
same level.
*/
const (
	LOWEST = 0

	precPipe        = 5
	precImplication = 10
	precOrOr        = 20
	precAndAnd      = 30
	precEquality    = 40
	precRelational  = 50
	precUpdate      = 60
	precNot         = 70
	precAdditive    = 80
	precMultiplicative = 90
	precConcat      = 100
	precHasAttr     = 110
	NEGATE          = 120
	CALL            = 130
	precSelect      = 140
)

/*
assoc is left or right associativity for a binary operator.
*/
type assoc int

const (
	leftAssoc assoc = iota
	rightAssoc
)

/*
binOpInfo describes one entry of the binary operator precedence table.
*/
type binOpInfo struct {
	prec  int
	assoc assoc
}

var binOps = map[token.Kind]binOpInfo{
	token.PIPE_RIGHT:  {precPipe, leftAssoc},
	token.PIPE_LEFT:   {precPipe, rightAssoc},
	token.IMPLICATION: {precImplication, rightAssoc},
	token.OR_OR:       {precOrOr, leftAssoc},
	token.AND_AND:     {precAndAnd, leftAssoc},
	token.EQUAL:       {precEquality, leftAssoc},
	token.NOT_EQUAL:   {precEquality, leftAssoc},
	token.LESS:        {precRelational, leftAssoc},
	token.LESS_OR_EQ:  {precRelational, leftAssoc},
	token.MORE:        {precRelational, leftAssoc},
	token.MORE_OR_EQ:  {precRelational, leftAssoc},
	token.UPDATE:      {precUpdate, rightAssoc},
	token.ADD:         {precAdditive, leftAssoc},
	token.SUB:         {precAdditive, leftAssoc},
	token.MUL:         {precMultiplicative, leftAssoc},
	token.DIV:         {precMultiplicative, leftAssoc},
	token.CONCAT:      {precConcat, rightAssoc},
}

/*
exprStartKinds is the set of tokens that can begin an expression, used
to decide whether the next token starts a function-application argument
(spec.md section 4.4, infix loop step 4).
*/
var exprStartKinds = map[token.Kind]bool{
	token.INTEGER:      true,
	token.FLOAT:        true,
	token.URI:          true,
	token.PATH:         true,
	token.IDENT:        true,
	token.OR:           true,
	token.STRING_START: true,
	token.L_PAREN:      true,
	token.L_BRACK:      true,
	token.L_BRACE:      true,
	token.IF:           true,
	token.LET:          true,
	token.WITH:         true,
	token.ASSERT:       true,
	token.REC:          true,
	token.SUB:          true,
	token.INVERT:       true,
}
