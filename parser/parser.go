/*
 * nixcst
 *
 * Copyright 2024 The nixcst Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package parser implements the precedence-climbing expression parser
that turns a token stream into a cst.CST. It never panics on malformed
input - every syntactic surprise becomes a visible ERROR node - and it
fails outright only for out-of-memory and the postfix safeguard
(spec.md section 7).
*/
package parser

import (
	"devt.de/krotik/nixcst/config"
	"devt.de/krotik/nixcst/cst"
	"devt.de/krotik/nixcst/lexer"
	"devt.de/krotik/nixcst/token"
	"devt.de/krotik/nixcst/util"
)

/*
Parser holds the mutable state of one parse: the tokenizer, the
lookahead token, trivia collected ahead of it, and the postfix
safeguard counter.
*/
type Parser struct {
	name   string
	lex    *lexer.Tokenizer
	source []byte

	cur    token.Token
	trivia []*cst.Node
	logger util.Logger

	postfixCount int
	postfixLimit int

	diag *Diagnostic
}

/*
checkpoint is a saved Parser position, covering both the tokenizer's
own State and the parser-level lookahead that sits on top of it. Both
must be restored together (spec.md section 5).
*/
type checkpoint struct {
	lexState lexer.State
	cur      token.Token
	trivia   []*cst.Node
}

/*
Parse parses source and returns the resulting CST. The only error
returns are util.ErrOutOfMemory and util.ErrPostfixLimit; every other
syntactic problem is recorded as an ERROR node inside the returned
tree, not as a Go error.
*/
func Parse(name string, source []byte) (*cst.CST, error) {
	return ParseWithDiagnostic(name, source, nil)
}

/*
ParseWithDiagnostic parses source like Parse, additionally filling in
diag with the first syntactic surprise encountered, if any (spec.md
section 6, "parse_with_diagnostic").
*/
func ParseWithDiagnostic(name string, source []byte, diag *Diagnostic) (*cst.CST, error) {
	return ParseWithLogger(name, source, diag, nil)
}

/*
ParseWithLogger parses source like ParseWithDiagnostic, additionally
tracing lookahead decisions (pattern-vs-attrset disambiguation, the
postfix safeguard tripping) to logger. A nil logger behaves like
util.NewNullLogger - logging never changes the parse result.
*/
func ParseWithLogger(name string, source []byte, diag *Diagnostic, logger util.Logger) (*cst.CST, error) {
	p := newParser(name, source, diag, logger)

	root := cst.NewBranch(cst.ROOT)
	body, err := p.parseExpr(LOWEST)
	if err != nil {
		return nil, err
	}
	root.Append(body)

	// Trailing trivia (and any unexpected trailing input, collected into
	// one ERROR node) attach to ROOT.

	root.Children = append(root.Children, p.trivia...)
	p.trivia = nil

	if p.cur.Kind != token.EOF {
		p.recordDiagnostic(UnexpectedToken, p.cur, token.EOF, "unexpected trailing input")
		errNode := cst.NewBranch(cst.ERROR)
		for p.cur.Kind != token.EOF {
			p.bump(errNode)
		}
		root.Append(errNode)
		root.Children = append(root.Children, p.trivia...)
		p.trivia = nil
	} else {
		root.Append(cst.NewLeaf(p.cur))
	}

	return cst.New(root, source), nil
}

func newParser(name string, source []byte, diag *Diagnostic, logger util.Logger) *Parser {
	if logger == nil {
		logger = util.NewNullLogger()
	}
	p := &Parser{
		name:         name,
		lex:          lexer.NewWithLogger(source, logger),
		source:       source,
		postfixLimit: len(source) + config.Int(config.PostfixSafeguardConstant),
		diag:         diag,
		logger:       logger,
	}
	p.advance()
	return p
}

/*
advance fetches the next significant token into p.cur, buffering any
trivia tokens encountered along the way so the next node to consume a
real token can claim them as its own leading children.
*/
func (p *Parser) advance() {
	for {
		tok := p.lex.Next()
		if tok.Kind.IsTrivia() {
			p.trivia = append(p.trivia, cst.NewLeaf(tok))
			continue
		}
		p.cur = tok
		return
	}
}

/*
bump appends any pending trivia and the current token to target's
children, then advances. It returns the consumed token.
*/
func (p *Parser) bump(target *cst.Node) token.Token {
	if len(p.trivia) > 0 {
		target.Children = append(target.Children, p.trivia...)
		p.trivia = nil
	}
	consumed := p.cur
	target.Append(cst.NewLeaf(consumed))
	p.advance()
	return consumed
}

/*
attachTrivia drains any pending trivia into target without consuming a
real token. Used at points where trivia logically belongs to the
branch under construction even though no token is being bumped yet.
*/
func (p *Parser) attachTrivia(target *cst.Node) {
	if len(p.trivia) > 0 {
		target.Children = append(target.Children, p.trivia...)
		p.trivia = nil
	}
}

/*
peek returns the next significant token without consuming it.
*/
func (p *Parser) peek() token.Token {
	return p.cur
}

/*
save snapshots tokenizer and lookahead state together.
*/
func (p *Parser) save() checkpoint {
	triviaCopy := make([]*cst.Node, len(p.trivia))
	copy(triviaCopy, p.trivia)
	return checkpoint{p.lex.SaveState(), p.cur, triviaCopy}
}

/*
restore rewinds to a previously saved checkpoint.
*/
func (p *Parser) restore(c checkpoint) {
	p.lex.RestoreState(c.lexState)
	p.cur = c.cur
	p.trivia = c.trivia
}

/*
expect consumes the current token into target if it has kind k,
returning true. Otherwise it records a diagnostic and appends an ERROR
node (wrapping the offending token, or nothing at EOF) to target,
returning false - the surrounding parse continues regardless.
*/
func (p *Parser) expect(k token.Kind, target *cst.Node) bool {
	if p.cur.Kind == k {
		p.bump(target)
		return true
	}

	p.recordDiagnostic(UnexpectedToken, p.cur, k, "")

	errNode := cst.NewBranch(cst.ERROR)
	if p.cur.Kind != token.EOF {
		p.bump(errNode)
	} else {
		p.attachTrivia(errNode)
	}
	target.Append(errNode)
	return false
}

/*
recordDiagnostic fills the parser's diagnostic slot if one was
provided and it is still empty - only the first syntactic surprise of a
parse is kept (spec.md section 7).
*/
func (p *Parser) recordDiagnostic(kind DiagnosticKind, got token.Token, expected token.Kind, note string) {
	if p.diag == nil || p.diag.Kind != NoDiagnostic {
		return
	}
	*p.diag = Diagnostic{
		Kind:     kind,
		Span:     [2]uint32{got.Start, got.End},
		Got:      got.Kind,
		Expected: expected,
		Note:     note,
	}
}

/*
bumpPostfix counts one more postfix/infix/application step and reports
whether the safeguard has tripped.
*/
func (p *Parser) bumpPostfix() bool {
	p.postfixCount++
	if p.postfixCount > p.postfixLimit {
		p.logger.LogError("postfix safeguard tripped after ", p.postfixCount, " steps")
		p.recordDiagnostic(PostfixLimit, p.cur, token.ILLEGAL, "postfix safeguard exceeded")
		return false
	}
	return true
}

/*
errorNode consumes exactly one token (or none, at EOF) into a standalone
ERROR node - used by prefix dispatch's catch-all case.
*/
func (p *Parser) errorNode() *cst.Node {
	n := cst.NewBranch(cst.ERROR)
	if p.cur.Kind != token.EOF {
		p.recordDiagnostic(UnexpectedToken, p.cur, token.ILLEGAL, "no expression can begin here")
		p.bump(n)
	} else {
		p.attachTrivia(n)
	}
	return n
}

/*
unterminatedNode closes a string/path/interpolation body that ran into
EOF before its terminator, recording kind as the diagnostic instead of
the generic UnexpectedToken - spec.md section 7 treats running out of
input mid-construct as a distinct case from seeing the wrong token.
*/
func (p *Parser) unterminatedNode(kind DiagnosticKind) *cst.Node {
	n := cst.NewBranch(cst.ERROR)
	p.recordDiagnostic(kind, p.cur, token.EOF, "unterminated before end of input")
	p.attachTrivia(n)
	return n
}
