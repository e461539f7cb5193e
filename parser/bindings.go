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
)

/*
parseAttrSetBody parses "{ bindings }" where each binding is either an
INHERIT node or an ATTRPATH_VALUE node (spec.md section 4.4,
"Attribute-set bindings"). Trivia between bindings attaches to
ATTR_SET itself via the usual bump/attachTrivia discipline.
*/
func (p *Parser) parseAttrSetBody() (*cst.Node, error) {
	n := cst.NewBranch(cst.ATTR_SET)
	p.expect(token.L_BRACE, n)

	for p.cur.Kind != token.R_BRACE && p.cur.Kind != token.EOF {
		var (
			binding *cst.Node
			err     error
		)

		if p.cur.Kind == token.INHERIT {
			binding, err = p.parseInherit()
		} else {
			binding, err = p.parseAttrPathValue()
		}
		if err != nil {
			return nil, err
		}
		n.Append(binding)
	}

	p.expect(token.R_BRACE, n)
	return n, nil
}

/*
parseAttrPathValue parses "attrpath = expr ;".
*/
func (p *Parser) parseAttrPathValue() (*cst.Node, error) {
	n := cst.NewBranch(cst.ATTRPATH_VALUE)

	path, err := p.parseAttrPath()
	if err != nil {
		return nil, err
	}
	n.Append(path)

	p.expect(token.ASSIGN, n)

	val, err := p.parseExpr(LOWEST)
	if err != nil {
		return nil, err
	}
	n.Append(val)

	p.expect(token.SEMICOLON, n)
	return n, nil
}

/*
parseAttrPath parses a dot-separated sequence of IDENT, string literal
or DYNAMIC parts (spec.md section 4.4, "Attribute path").
*/
func (p *Parser) parseAttrPath() (*cst.Node, error) {
	n := cst.NewBranch(cst.ATTRPATH)

	part, err := p.parseAttrPathPart()
	if err != nil {
		return nil, err
	}
	n.Append(part)

	for p.cur.Kind == token.DOT {
		p.bump(n)
		part, err := p.parseAttrPathPart()
		if err != nil {
			return nil, err
		}
		n.Append(part)
	}

	return n, nil
}

/*
parseAttrPathPart parses one segment of an attribute path.
*/
func (p *Parser) parseAttrPathPart() (*cst.Node, error) {
	switch p.cur.Kind {

	case token.IDENT:
		n := cst.NewBranch(cst.IDENT)
		p.bump(n)
		return n, nil

	case token.OR:
		leaf := token.Token{Kind: token.IDENT, Start: p.cur.Start, End: p.cur.End}
		n := cst.NewBranch(cst.IDENT)
		p.attachTrivia(n)
		n.Append(cst.NewLeaf(leaf))
		p.advance()
		return n, nil

	case token.STRING_START:
		return p.parseString()

	case token.INTERPOL_START:
		return p.parseInterpolLike(cst.DYNAMIC)
	}

	return p.errorNode(), nil
}

/*
parseInherit parses "inherit [(expr)] a b "c" ${x} ;". A parenthesized
source expression makes this an INHERIT_FROM rather than a plain
INHERIT (spec.md section 3, "Attribute path").
*/
func (p *Parser) parseInherit() (*cst.Node, error) {
	n := cst.NewBranch(cst.INHERIT)
	p.bump(n) // 'inherit'

	if p.cur.Kind == token.L_PAREN {
		n.Kind = cst.INHERIT_FROM
		p.bump(n)

		src, err := p.parseExpr(LOWEST)
		if err != nil {
			return nil, err
		}
		n.Append(src)

		p.expect(token.R_PAREN, n)
	}

	for p.cur.Kind == token.IDENT || p.cur.Kind == token.OR ||
		p.cur.Kind == token.STRING_START || p.cur.Kind == token.INTERPOL_START {
		part, err := p.parseAttrPathPart()
		if err != nil {
			return nil, err
		}
		n.Append(part)
	}

	p.expect(token.SEMICOLON, n)
	return n, nil
}

/*
parseInterpolLike parses "${ expr }" into a branch of the given kind -
INTERPOL inside strings and paths, DYNAMIC inside attribute paths and
inherit targets. Both share the same token shape.
*/
func (p *Parser) parseInterpolLike(kind cst.NodeKind) (*cst.Node, error) {
	n := cst.NewBranch(kind)
	p.bump(n) // INTERPOL_START

	inner, err := p.parseExpr(LOWEST)
	if err != nil {
		return nil, err
	}
	n.Append(inner)

	p.expect(token.INTERPOL_END, n)
	return n, nil
}

/*
parseLet parses LET. If the next token is L_BRACE it is the legacy
"let { ... }" form (LEGACY_LET, flattened to the brace-delimited
binding list directly); otherwise modern "let bindings in body"
(LET_IN).
*/
func (p *Parser) parseLet() (*cst.Node, error) {
	n := cst.NewBranch(cst.LET_IN)
	p.bump(n) // 'let'

	if p.cur.Kind == token.L_BRACE {
		n.Kind = cst.LEGACY_LET
		body, err := p.parseAttrSetBody()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, body.Children...)
		return n, nil
	}

	for p.cur.Kind != token.IN && p.cur.Kind != token.EOF {
		var (
			binding *cst.Node
			err     error
		)

		if p.cur.Kind == token.INHERIT {
			binding, err = p.parseInherit()
		} else {
			binding, err = p.parseAttrPathValue()
		}
		if err != nil {
			return nil, err
		}
		n.Append(binding)
	}

	p.expect(token.IN, n)

	body, err := p.parseExpr(LOWEST)
	if err != nil {
		return nil, err
	}
	n.Append(body)

	return n, nil
}
