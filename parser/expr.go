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
	"devt.de/krotik/nixcst/cst"
	"devt.de/krotik/nixcst/token"
	"devt.de/krotik/nixcst/util"
)

/*
parseExpr is the precedence-climbing core: it parses one prefix term
then extends it with infix/postfix/application operators as long as
their precedence is strictly greater than minPrec (spec.md section
4.4).
*/
func (p *Parser) parseExpr(minPrec int) (*cst.Node, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		next, err := p.parseInfix(left, minPrec)
		if err != nil {
			return nil, err
		}
		if next == left {
			return left, nil
		}
		left = next
	}
}

/*
parsePrefix dispatches on the current token to build the leftmost term
of an expression (spec.md section 4.4, "Prefix dispatch").
*/
func (p *Parser) parsePrefix() (*cst.Node, error) {
	switch p.cur.Kind {

	case token.INTEGER, token.FLOAT, token.URI:
		n := cst.NewBranch(cst.LITERAL)
		p.bump(n)
		return n, nil

	case token.PATH:
		return p.parsePath()

	case token.IDENT, token.OR:
		return p.parseIdentOrLambda()

	case token.STRING_START:
		return p.parseString()

	case token.L_BRACE:
		return p.parseBraceExpr()

	case token.REC:
		recLeaf := cst.NewBranch(cst.ATTR_SET)
		p.bump(recLeaf)
		if p.cur.Kind != token.L_BRACE {
			recLeaf.Append(p.errorNode())
			return recLeaf, nil
		}
		body, err := p.parseAttrSetBody()
		if err != nil {
			return nil, err
		}
		recLeaf.Children = append(recLeaf.Children, body.Children...)
		return recLeaf, nil

	case token.L_BRACK:
		return p.parseList()

	case token.L_PAREN:
		return p.parseParenOrLambda()

	case token.IF:
		return p.parseIf()

	case token.LET:
		return p.parseLet()

	case token.WITH:
		return p.parseWith()

	case token.ASSERT:
		return p.parseAssert()

	case token.SUB:
		n := cst.NewBranch(cst.UNARY_OP)
		p.bump(n)
		operand, err := p.parseExpr(NEGATE)
		if err != nil {
			return nil, err
		}
		n.Append(operand)
		return n, nil

	case token.INVERT:
		n := cst.NewBranch(cst.UNARY_OP)
		p.bump(n)
		operand, err := p.parseExpr(precNot)
		if err != nil {
			return nil, err
		}
		n.Append(operand)
		return n, nil

	default:
		return p.errorNode(), nil
	}
}

/*
parseInfix looks at the current lookahead and, if an infix/postfix/
application operator applies at a precedence greater than minPrec,
consumes it and returns the extended tree. If nothing applies it
returns left unchanged - the caller compares by identity to detect
this.
*/
func (p *Parser) parseInfix(left *cst.Node, minPrec int) (*cst.Node, error) {
	if info, ok := binOps[p.cur.Kind]; ok && info.prec > minPrec {
		if !p.bumpPostfix() {
			return nil, util.ErrPostfixLimit
		}
		n := cst.NewBranch(cst.BIN_OP)
		n.Append(left)
		p.bump(n)

		nextMin := info.prec
		if info.assoc == rightAssoc {
			nextMin = info.prec - 1
		}
		rhs, err := p.parseExpr(nextMin)
		if err != nil {
			return nil, err
		}
		n.Append(rhs)
		return n, nil
	}

	if p.cur.Kind == token.QUESTION && precHasAttr > minPrec {
		if !p.bumpPostfix() {
			return nil, util.ErrPostfixLimit
		}
		n := cst.NewBranch(cst.HAS_ATTR)
		n.Append(left)
		p.bump(n)
		path, err := p.parseAttrPath()
		if err != nil {
			return nil, err
		}
		n.Append(path)
		return n, nil
	}

	if p.cur.Kind == token.DOT && precSelect > minPrec {
		if !p.bumpPostfix() {
			return nil, util.ErrPostfixLimit
		}
		return p.parseSelect(left)
	}

	if CALL > minPrec && exprStartKinds[p.cur.Kind] {
		if !p.bumpPostfix() {
			return nil, util.ErrPostfixLimit
		}
		n := cst.NewBranch(cst.APPLY)
		n.Append(left)
		arg, err := p.parseExpr(CALL)
		if err != nil {
			return nil, err
		}
		n.Append(arg)
		return n, nil
	}

	return left, nil
}

/*
parseSelect builds a SELECT node: left . attrpath [or default]. The
trailing "or default" is detected by finding OR after the attribute
path, across trivia (spec.md section 4.4, infix loop step 3).
*/
func (p *Parser) parseSelect(left *cst.Node) (*cst.Node, error) {
	n := cst.NewBranch(cst.SELECT)
	n.Append(left)
	p.bump(n) // consume '.'

	path, err := p.parseAttrPath()
	if err != nil {
		return nil, err
	}
	n.Append(path)

	if p.cur.Kind == token.OR {
		p.bump(n)
		def, err := p.parseExpr(CALL)
		if err != nil {
			return nil, err
		}
		n.Append(def)
	}

	return n, nil
}

/*
parseList parses a LIST: children are parsed at CALL, so bare
juxtaposition inside "[ a b c ]" separates elements (each element may
still be a "." select chain) rather than applying them as a function
call (spec.md section 4.4, "L_BRACK").
*/
func (p *Parser) parseList() (*cst.Node, error) {
	n := cst.NewBranch(cst.LIST)
	p.bump(n) // '['

	for p.cur.Kind != token.R_BRACK && p.cur.Kind != token.EOF {
		elem, err := p.parseExpr(CALL)
		if err != nil {
			return nil, err
		}
		n.Append(elem)
	}

	p.expect(token.R_BRACK, n)
	return n, nil
}

/*
parseIf parses IF cond THEN then_expr ELSE else_expr, each sub
expression at LOWEST.
*/
func (p *Parser) parseIf() (*cst.Node, error) {
	n := cst.NewBranch(cst.IF_ELSE)
	p.bump(n)

	cond, err := p.parseExpr(LOWEST)
	if err != nil {
		return nil, err
	}
	n.Append(cond)

	p.expect(token.THEN, n)

	then, err := p.parseExpr(LOWEST)
	if err != nil {
		return nil, err
	}
	n.Append(then)

	p.expect(token.ELSE, n)

	els, err := p.parseExpr(LOWEST)
	if err != nil {
		return nil, err
	}
	n.Append(els)

	return n, nil
}

/*
parseWith parses WITH env ; body.
*/
func (p *Parser) parseWith() (*cst.Node, error) {
	n := cst.NewBranch(cst.WITH)
	p.bump(n)

	env, err := p.parseExpr(LOWEST)
	if err != nil {
		return nil, err
	}
	n.Append(env)

	p.expect(token.SEMICOLON, n)

	body, err := p.parseExpr(LOWEST)
	if err != nil {
		return nil, err
	}
	n.Append(body)

	return n, nil
}

/*
parseAssert parses ASSERT cond ; body.
*/
func (p *Parser) parseAssert() (*cst.Node, error) {
	n := cst.NewBranch(cst.ASSERT)
	p.bump(n)

	cond, err := p.parseExpr(LOWEST)
	if err != nil {
		return nil, err
	}
	n.Append(cond)

	p.expect(token.SEMICOLON, n)

	body, err := p.parseExpr(LOWEST)
	if err != nil {
		return nil, err
	}
	n.Append(body)

	return n, nil
}
