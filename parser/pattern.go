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
parseIdentOrLambda builds an IDENT node, re-tagging a leading "or" into
an IDENT leaf (spec.md section 4.4, "or is convertible to an
identifier"). It then performs inline-lambda detection: a following ":"
makes this the formal of a LAMBDA, a following "@" makes it the leading
bind of a PATTERN-style LAMBDA.
*/
func (p *Parser) parseIdentOrLambda() (*cst.Node, error) {
	leafTok := p.cur
	if leafTok.Kind == token.OR {
		leafTok = token.Token{Kind: token.IDENT, Start: p.cur.Start, End: p.cur.End}
	}

	identNode := cst.NewBranch(cst.IDENT)
	p.attachTrivia(identNode)
	identNode.Append(cst.NewLeaf(leafTok))
	p.advance()

	switch p.cur.Kind {
	case token.COLON:
		lambda := cst.NewBranch(cst.LAMBDA)
		lambda.Append(cst.NewBranch(cst.IDENT_PARAM, identNode))
		p.bump(lambda)
		body, err := p.parseExpr(LOWEST)
		if err != nil {
			return nil, err
		}
		lambda.Append(body)
		return lambda, nil

	case token.AT:
		bind := cst.NewBranch(cst.PAT_BIND, identNode)
		p.bump(bind)

		pat, err := p.parsePatternBody(bind)
		if err != nil {
			return nil, err
		}

		lambda := cst.NewBranch(cst.LAMBDA, pat)
		p.expect(token.COLON, lambda)
		body, err := p.parseExpr(LOWEST)
		if err != nil {
			return nil, err
		}
		lambda.Append(body)
		return lambda, nil
	}

	return identNode, nil
}

/*
isLambdaPattern implements the bounded lookahead of spec.md section
4.4 that disambiguates an attribute set from a lambda pattern: save
state, step past "{", and classify the next one or two tokens. State is
always restored before returning.
*/
func (p *Parser) isLambdaPattern() bool {
	save := p.save()
	defer p.restore(save)

	p.advance() // step past '{'
	t1 := p.cur

	isPattern := func() bool {
		if t1.Kind == token.ELLIPSIS {
			return true
		}

		if t1.Kind == token.IDENT {
			p.advance()
			t2 := p.cur
			return t2.Kind == token.COMMA || t2.Kind == token.QUESTION || t2.Kind == token.R_BRACE
		}

		if t1.Kind == token.R_BRACE {
			p.advance()
			t2 := p.cur
			return t2.Kind == token.COLON || t2.Kind == token.AT
		}

		return false
	}()

	p.logger.LogDebug("brace lookahead at ", t1.Start, ": pattern=", isPattern)
	return isPattern
}

/*
parseBraceExpr handles "{" in prefix position: it is either an
ATTR_SET or, via isLambdaPattern, a LAMBDA over a PATTERN.
*/
func (p *Parser) parseBraceExpr() (*cst.Node, error) {
	if !p.isLambdaPattern() {
		return p.parseAttrSetBody()
	}

	pat, err := p.parsePatternBody(nil)
	if err != nil {
		return nil, err
	}

	lambda := cst.NewBranch(cst.LAMBDA, pat)
	p.expect(token.COLON, lambda)
	body, err := p.parseExpr(LOWEST)
	if err != nil {
		return nil, err
	}
	lambda.Append(body)
	return lambda, nil
}

/*
parsePatternBody parses "{ entries }" possibly followed by a trailing
"@ ident" bind, given an already-parsed leading bind (nil if there was
none). Entries are PAT_ENTRY (ident with optional "? default"),
comma-separated, with an optional trailing "...". A bind on both sides
is legal to parse but reported as an ERROR child rather than aborting
(spec.md section 4.4, "Pattern parsing").
*/
func (p *Parser) parsePatternBody(leadingBind *cst.Node) (*cst.Node, error) {
	pat := cst.NewBranch(cst.PATTERN)
	if leadingBind != nil {
		pat.Append(leadingBind)
	}

	p.expect(token.L_BRACE, pat)

	for p.cur.Kind != token.R_BRACE && p.cur.Kind != token.EOF {
		if p.cur.Kind == token.ELLIPSIS {
			p.bump(pat)
			continue
		}

		entry := cst.NewBranch(cst.PAT_ENTRY)
		p.expect(token.IDENT, entry)

		if p.cur.Kind == token.QUESTION {
			p.bump(entry)
			def, err := p.parseExpr(LOWEST)
			if err != nil {
				return nil, err
			}
			entry.Append(def)
		}

		pat.Append(entry)

		if p.cur.Kind == token.COMMA {
			p.bump(pat)
		} else {
			break
		}
	}

	p.expect(token.R_BRACE, pat)

	if p.cur.Kind == token.AT {
		trailing := cst.NewBranch(cst.PAT_BIND)
		p.bump(trailing)

		ident := cst.NewBranch(cst.IDENT)
		p.expect(token.IDENT, ident)
		trailing.Append(ident)

		if leadingBind != nil {
			p.recordDiagnostic(UnexpectedToken, p.cur, token.ILLEGAL,
				"pattern bound on both sides")
			pat.Append(cst.NewBranch(cst.ERROR, trailing))
		} else {
			pat.Append(trailing)
		}
	}

	return pat, nil
}

/*
parseParenOrLambda handles "(" in prefix position. A forward scan to
the matching ")" decides whether a following ":" turns this into a
single-parameter LAMBDA (the parenthesized term becomes its formal) or
whether it is simply a parenthesized expression.
*/
func (p *Parser) parseParenOrLambda() (*cst.Node, error) {
	isLambda := p.isParenLambda()

	paren := cst.NewBranch(cst.PAREN)
	p.bump(paren) // '('

	inner, err := p.parseExpr(LOWEST)
	if err != nil {
		return nil, err
	}
	paren.Append(inner)

	p.expect(token.R_PAREN, paren)

	if !isLambda {
		return paren, nil
	}

	lambda := cst.NewBranch(cst.LAMBDA)
	lambda.Append(cst.NewBranch(cst.IDENT_PARAM, paren))
	p.expect(token.COLON, lambda)

	body, err := p.parseExpr(LOWEST)
	if err != nil {
		return nil, err
	}
	lambda.Append(body)
	return lambda, nil
}

/*
isParenLambda scans forward from the current "(" to its matching ")",
then checks whether the following token is ":". State is restored
before returning.
*/
func (p *Parser) isParenLambda() bool {
	save := p.save()
	defer p.restore(save)

	p.advance() // step past '('
	depth := 1

	for depth > 0 {
		if p.cur.Kind == token.EOF {
			return false
		}
		if p.cur.Kind == token.L_PAREN {
			depth++
		} else if p.cur.Kind == token.R_PAREN {
			depth--
		}
		if depth == 0 {
			break
		}
		p.advance()
	}

	p.advance() // step past ')'
	return p.cur.Kind == token.COLON
}
