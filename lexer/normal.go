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
scanNormal implements the "Normal mode dispatch" table of spec.md
section 4.2: trivia, comments, string/interpolation openers, numbers,
identifiers/keywords/URIs, path literals, and finally operators.
*/
func (t *Tokenizer) scanNormal() token.Token {
	p := t.pos

	if int(p) >= len(t.source) {
		return token.Token{Kind: token.EOF, Start: p, End: p}
	}

	b := t.source[p]

	// 1. Whitespace

	if token.Whitespace(b) {
		end := token.RunEnd(t.source, int(p), token.Whitespace)
		return t.emit(token.WHITESPACE, uint32(end))
	}

	// 2. Line comment

	if b == '#' {
		end := int(p) + 1
		for end < len(t.source) && t.source[end] != '\n' {
			end++
		}
		return t.emit(token.COMMENT, uint32(end))
	}

	// 3. Block comment, with nested-comment counting

	if b == '/' && t.at(1) == '*' {
		return t.emit(token.COMMENT, uint32(t.scanBlockComment(int(p))))
	}

	// 4. Interpolation opener

	if b == '$' && t.at(1) == '{' {
		t.push(ctxFrame{kind: frameInterpol})
		return t.emit(token.INTERPOL_START, p+2)
	}

	// 5./6. String openers

	if b == '"' {
		t.push(ctxFrame{kind: frameStringBody, multiline: false})
		return t.emit(token.STRING_START, p+1)
	}

	if b == '\'' && t.at(1) == '\'' {
		t.push(ctxFrame{kind: frameStringBody, multiline: true})
		return t.emit(token.STRING_START, p+2)
	}

	// 8. Numbers

	if token.Digit(b) {
		end, isFloat := scanNumber(t.source, int(p))
		if isFloat {
			return t.emit(token.FLOAT, uint32(end))
		}
		return t.emit(token.INTEGER, uint32(end))
	}

	// 9. Identifiers, keywords, URIs

	if token.IdentStart(b) {
		return t.scanIdentOrURI(int(p))
	}

	// 10. Path literals

	if b == '<' || b == '~' || b == '/' || b == '.' {
		if end, ok := scanPath(t.source, int(p)); ok {
			return t.emit(token.PATH, uint32(end))
		}
		// Fall through to operator scanning.
	}

	// 11. Operators, punctuation, and interpolation brace tracking

	return t.scanOperator(int(p))
}

/*
scanBlockComment consumes a /* ... *\/ comment starting at start,
honoring nested /* *\/ pairs per spec.md. An unterminated comment still
runs to EOF and is still emitted as a single COMMENT token.
*/
func (t *Tokenizer) scanBlockComment(start int) int {
	depth := 0
	i := start

	for i < len(t.source) {
		if t.source[i] == '/' && i+1 < len(t.source) && t.source[i+1] == '*' {
			depth++
			i += 2
			continue
		}
		if t.source[i] == '*' && i+1 < len(t.source) && t.source[i+1] == '/' {
			depth--
			i += 2
			if depth == 0 {
				return i
			}
			continue
		}
		i++
	}

	return len(t.source)
}

/*
scanIdentOrURI consumes a maximal identifier run starting at start. If
it is immediately followed by "://" the whole thing (scheme plus
path-terminator-bounded rest) is a URI; otherwise it is a keyword or a
plain IDENT.
*/
func (t *Tokenizer) scanIdentOrURI(start int) token.Token {
	end := token.RunEnd(t.source, start, token.IdentCont)

	if end+2 < len(t.source) && t.source[end] == ':' && t.source[end+1] == '/' && t.source[end+2] == '/' {
		uriEnd := end
		for uriEnd < len(t.source) && !token.PathTerminator(t.source[uriEnd]) {
			uriEnd++
		}
		return t.emit(token.URI, uint32(uriEnd))
	}

	word := string(t.source[start:end])

	if kind, ok := token.KeywordKinds[word]; ok {
		return t.emit(kind, uint32(end))
	}

	return t.emit(token.IDENT, uint32(end))
}

// Operator tables
// ===============

var threeByteOps = map[string]token.Kind{
	"...": token.ELLIPSIS,
}

var twoByteOps = map[string]token.Kind{
	"//": token.UPDATE,
	"++": token.CONCAT,
	"==": token.EQUAL,
	"!=": token.NOT_EQUAL,
	"<=": token.LESS_OR_EQ,
	">=": token.MORE_OR_EQ,
	"&&": token.AND_AND,
	"||": token.OR_OR,
	"->": token.IMPLICATION,
	"<|": token.PIPE_LEFT,
	"|>": token.PIPE_RIGHT,
}

var oneByteOps = map[byte]token.Kind{
	'+': token.ADD,
	'-': token.SUB,
	'*': token.MUL,
	'/': token.DIV,
	'!': token.INVERT,
	'?': token.QUESTION,
	'.': token.DOT,
	'@': token.AT,
	'=': token.ASSIGN,
	';': token.SEMICOLON,
	':': token.COLON,
	',': token.COMMA,
	'{': token.L_BRACE,
	'}': token.R_BRACE,
	'[': token.L_BRACK,
	']': token.R_BRACK,
	'(': token.L_PAREN,
	')': token.R_PAREN,
	'<': token.LESS,
	'>': token.MORE,
}

/*
scanOperator scans the longest matching operator at start, tracking the
brace balance of an enclosing interpolation frame (spec.md section
4.2, final bullet).
*/
func (t *Tokenizer) scanOperator(start int) token.Token {
	rest := t.source[start:]

	if len(rest) >= 3 {
		if k, ok := threeByteOps[string(rest[:3])]; ok {
			return t.emit(k, uint32(start+3))
		}
	}

	if f, inInterpol := t.top(); inInterpol && f.kind == frameInterpol {
		switch t.source[start] {
		case '{':
			f.depth++
			t.stack[len(t.stack)-1] = f
			return t.emit(token.L_BRACE, uint32(start+1))
		case '}':
			if f.depth == 0 {
				t.pop()
				return t.emit(token.INTERPOL_END, uint32(start+1))
			}
			f.depth--
			t.stack[len(t.stack)-1] = f
			return t.emit(token.R_BRACE, uint32(start+1))
		}
	}

	if len(rest) >= 2 {
		if k, ok := twoByteOps[string(rest[:2])]; ok {
			return t.emit(k, uint32(start+2))
		}
	}

	if k, ok := oneByteOps[rest[0]]; ok {
		return t.emit(k, uint32(start+1))
	}

	return t.emit(token.ERROR, uint32(start+1))
}
