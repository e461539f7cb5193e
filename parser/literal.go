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
parseString consumes STRING_START, a mixed run of STRING_CONTENT
leaves and INTERPOL subtrees, and a closing STRING_END. An unexpected
token before the terminator is wrapped in an ERROR node and ends the
string (spec.md section 4.4, "STRING_START").
*/
func (p *Parser) parseString() (*cst.Node, error) {
	n := cst.NewBranch(cst.STRING)
	p.bump(n) // STRING_START

	for {
		switch p.cur.Kind {
		case token.STRING_CONTENT:
			p.bump(n)

		case token.INTERPOL_START:
			sub, err := p.parseInterpolLike(cst.INTERPOL)
			if err != nil {
				return nil, err
			}
			n.Append(sub)

		case token.STRING_END:
			p.bump(n)
			return n, nil

		case token.EOF:
			n.Append(p.unterminatedNode(UnterminatedString))
			return n, nil

		default:
			n.Append(p.errorNode())
			return n, nil
		}
	}
}

/*
parsePath consumes a PATH token, then loops consuming alternating
INTERPOL subtrees and further PATH tokens for in-path "${...}"
(spec.md section 4.4, "PATH").
*/
func (p *Parser) parsePath() (*cst.Node, error) {
	n := cst.NewBranch(cst.PATH)
	p.bump(n)

	for p.cur.Kind == token.INTERPOL_START {
		sub, err := p.parseInterpolLike(cst.INTERPOL)
		if err != nil {
			return nil, err
		}
		n.Append(sub)

		if p.cur.Kind != token.PATH {
			break
		}
		p.bump(n)
	}

	return n, nil
}
