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

import (
	"testing"

	"devt.de/krotik/nixcst/token"
)

/*
scanAll drains a Tokenizer into a slice of (Kind, text) pairs, stopping
after EOF.
*/
func scanAll(src string) []string {
	tok := New([]byte(src))
	var out []string

	for {
		tk := tok.Next()
		out = append(out, tk.Kind.String()+":"+string(tk.Text(tok.Source())))
		if tk.Kind == token.EOF {
			break
		}
	}

	return out
}

func TestWhitespaceAndComments(t *testing.T) {
	got := scanAll("  # line\n/* block */1")

	want := []string{
		"WHITESPACE:  ",
		"COMMENT:# line",
		"WHITESPACE:\n",
		"COMMENT:/* block */",
		"INTEGER:1",
		"EOF:",
	}

	if len(got) != len(want) {
		t.Error("Unexpected token count:", got)
		return
	}

	for i := range want {
		if got[i] != want[i] {
			t.Error("Unexpected token at", i, ":", got[i], "vs", want[i])
			return
		}
	}
}

func TestNestedBlockComment(t *testing.T) {
	got := scanAll("/* a /* b */ c */x")

	if got[0] != "COMMENT:/* a /* b */ c */" {
		t.Error("Unexpected comment token:", got[0])
		return
	}

	if got[1] != "IDENT:x" {
		t.Error("Unexpected token after comment:", got[1])
		return
	}
}

func TestIntegerAndFloat(t *testing.T) {
	cases := map[string]token.Kind{
		"123":    token.INTEGER,
		"1.5":    token.FLOAT,
		"1.0e10": token.FLOAT,
		"1e3":    token.FLOAT,
		"1.5e-2": token.FLOAT,
	}

	for src, kind := range cases {
		tok := New([]byte(src))
		tk := tok.Next()

		if tk.Kind != kind {
			t.Error("Unexpected kind for", src, ":", tk.Kind)
			return
		}

		if string(tk.Text(tok.Source())) != src {
			t.Error("Unexpected text for", src, ":", string(tk.Text(tok.Source())))
			return
		}
	}
}

func TestKeywordsAndIdent(t *testing.T) {
	tok := New([]byte("if myvar then"))

	tk := tok.Next()
	if tk.Kind != token.IF {
		t.Error("Unexpected kind:", tk.Kind)
		return
	}

	tok.Next() // whitespace

	tk = tok.Next()
	if tk.Kind != token.IDENT {
		t.Error("Unexpected kind:", tk.Kind)
		return
	}

	tok.Next() // whitespace

	tk = tok.Next()
	if tk.Kind != token.THEN {
		t.Error("Unexpected kind:", tk.Kind)
		return
	}
}

func TestURI(t *testing.T) {
	tok := New([]byte("https://example.com/foo"))
	tk := tok.Next()

	if tk.Kind != token.URI {
		t.Error("Unexpected kind:", tk.Kind)
		return
	}

	if string(tk.Text(tok.Source())) != "https://example.com/foo" {
		t.Error("Unexpected text:", string(tk.Text(tok.Source())))
		return
	}
}

func TestOperators(t *testing.T) {
	tok := New([]byte("... // ++ == != <= >= && || -> <| |> + - < >"))

	want := []token.Kind{
		token.ELLIPSIS, token.UPDATE, token.CONCAT, token.EQUAL, token.NOT_EQUAL,
		token.LESS_OR_EQ, token.MORE_OR_EQ, token.AND_AND, token.OR_OR,
		token.IMPLICATION, token.PIPE_LEFT, token.PIPE_RIGHT, token.ADD, token.SUB,
		token.LESS, token.MORE,
	}

	for _, k := range want {
		tk := tok.Next()
		if tk.Kind != k {
			t.Error("Unexpected kind:", tk.Kind, "wanted", k)
			return
		}
		tok.Next() // whitespace between operators
	}
}

func TestPlainPath(t *testing.T) {
	tok := New([]byte("./foo/bar"))
	tk := tok.Next()

	if tk.Kind != token.PATH {
		t.Error("Unexpected kind:", tk.Kind)
		return
	}

	if string(tk.Text(tok.Source())) != "./foo/bar" {
		t.Error("Unexpected text:", string(tk.Text(tok.Source())))
		return
	}
}

func TestHomePath(t *testing.T) {
	tok := New([]byte("~/foo/bar"))
	tk := tok.Next()

	if tk.Kind != token.PATH || string(tk.Text(tok.Source())) != "~/foo/bar" {
		t.Error("Unexpected token:", tk.Kind, string(tk.Text(tok.Source())))
		return
	}
}

func TestSearchPath(t *testing.T) {
	tok := New([]byte("<nixpkgs/lib>"))
	tk := tok.Next()

	if tk.Kind != token.PATH || string(tk.Text(tok.Source())) != "<nixpkgs/lib>" {
		t.Error("Unexpected token:", tk.Kind, string(tk.Text(tok.Source())))
		return
	}
}

func TestDotAloneIsNotAPath(t *testing.T) {
	tok := New([]byte(". "))
	tk := tok.Next()

	if tk.Kind != token.DOT {
		t.Error("Unexpected kind:", tk.Kind)
		return
	}
}

func TestDivisionIsNotAPath(t *testing.T) {
	tok := New([]byte("1 / 2"))

	tk := tok.Next()
	if tk.Kind != token.INTEGER {
		t.Error("Unexpected kind:", tk.Kind)
		return
	}

	tok.Next() // whitespace

	tk = tok.Next()
	if tk.Kind != token.DIV {
		t.Error("Unexpected kind:", tk.Kind)
		return
	}
}

func TestPathWithInterpolation(t *testing.T) {
	got := scanAll("./foo${bar}/baz")

	want := []string{
		"PATH:./foo",
		"INTERPOL_START:${",
		"IDENT:bar",
		"INTERPOL_END:}",
		"PATH:/baz",
		"EOF:",
	}

	if len(got) != len(want) {
		t.Error("Unexpected token count:", got)
		return
	}

	for i := range want {
		if got[i] != want[i] {
			t.Error("Unexpected token at", i, ":", got[i], "vs", want[i])
			return
		}
	}
}

func TestSimpleStringRoundTrip(t *testing.T) {
	src := `"hello \"world\" ${1 + 2} end"`
	got := scanAll(src)

	var rebuilt string
	for _, tk := range got {
		if tk == "EOF:" {
			continue
		}
		idx := indexByte(tk, ':')
		rebuilt += tk[idx+1:]
	}

	if rebuilt != src {
		t.Error("Lossless round trip failed:", rebuilt, "vs", src)
		return
	}
}

func TestMultilineStringEscapes(t *testing.T) {
	// ''$ escapes a literal "${"; the content that follows ("{def}") is
	// ordinary text, not a second escape attempt.
	src := "''abc''$" + "{def}''"
	got := scanAll(src)

	var rebuilt string
	for _, tk := range got {
		if tk == "EOF:" {
			continue
		}
		idx := indexByte(tk, ':')
		rebuilt += tk[idx+1:]
	}

	if rebuilt != src {
		t.Error("Lossless round trip failed:", rebuilt, "vs", src)
		return
	}
}

func TestCheckpointRestore(t *testing.T) {
	tok := New([]byte(`"a${1}b"`))

	tok.Next() // STRING_START
	tok.Next() // STRING_CONTENT "a"

	save := tok.SaveState()

	tok.Next() // INTERPOL_START
	tok.Next() // INTEGER

	tok.RestoreState(save)

	tk := tok.Next()
	if tk.Kind != token.INTERPOL_START {
		t.Error("Restore did not rewind context stack:", tk.Kind)
		return
	}
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
