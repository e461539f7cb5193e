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
scanStringBody is called whenever a frameStringBody frame is on top of
the context stack. It is a single dispatch point that decides, byte by
byte, which of the three things is true at the current position: the
string is closing, an interpolation is opening, or there is literal
content to consume (spec.md section 4.2).
*/
func (t *Tokenizer) scanStringBody(f ctxFrame) token.Token {
	p := int(t.pos)
	src := t.source

	if p >= len(src) {
		// Unterminated string: drop every open frame rather than spin on
		// a zero-length STRING_CONTENT token forever.
		t.stack = nil
		return t.emit(token.EOF, uint32(p))
	}

	if f.multiline {
		if end, ok := multilineTerminator(src, p); ok {
			t.pop()
			return t.emit(token.STRING_END, uint32(end))
		}
	} else if p < len(src) && src[p] == '"' {
		t.pop()
		return t.emit(token.STRING_END, uint32(p+1))
	}

	if p+1 < len(src) && src[p] == '$' && src[p+1] == '{' {
		t.push(ctxFrame{kind: frameInterpol})
		return t.emit(token.INTERPOL_START, uint32(p+2))
	}

	end := stringContentEnd(src, p, f.multiline)
	return t.emit(token.STRING_CONTENT, uint32(end))
}

/*
multilineTerminator reports whether a '' at p closes the string, as
opposed to being one of the three escape forms ('''  for a literal '',
''$ for a literal "${", ''\ for a literal-character escape).
*/
func multilineTerminator(src []byte, p int) (int, bool) {
	if p+1 >= len(src) || src[p] != '\'' || src[p+1] != '\'' {
		return 0, false
	}
	if p+2 < len(src) {
		switch src[p+2] {
		case '\'', '$', '\\':
			return 0, false
		}
	}
	return p + 2, true
}

/*
stringContentEnd returns the offset of the first byte at or after p
that begins a structural boundary (the closing delimiter, an
interpolation opener, or one of the multiline escape forms) so the
caller can emit everything up to it as a single STRING_CONTENT token.
Escaped bytes are included as content rather than being interpreted -
the tokenizer never resolves escape sequences, it only locates their
boundaries (spec.md section 3, losslessness).
*/
func stringContentEnd(src []byte, p int, multiline bool) int {
	i := p

	for i < len(src) {
		if multiline {
			if _, ok := multilineTerminator(src, i); ok {
				break
			}
			if i+2 < len(src) && src[i] == '\'' && src[i+1] == '\'' {
				switch src[i+2] {
				case '\'':
					i += 3
					continue
				case '$':
					i += 3
					continue
				case '\\':
					if i+3 < len(src) {
						i += 4
					} else {
						i += 3
					}
					continue
				}
			}
		} else {
			if src[i] == '"' {
				break
			}
			if src[i] == '\\' {
				if i+1 < len(src) {
					i += 2
				} else {
					i++
				}
				continue
			}
		}

		if i+1 < len(src) && src[i] == '$' && src[i+1] == '{' {
			break
		}

		i++
	}

	if i == p {
		// No content precedes the boundary; callers only reach here when
		// scanStringBody's own checks already ruled out terminator and
		// interpolation, so an empty run means unterminated input at EOF.
		return p
	}

	return i
}
