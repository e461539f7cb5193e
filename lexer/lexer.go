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
Package lexer turns a byte slice of Nix source into a stream of
token.Token values. It never fails - an unrecoverable byte sequence
produces a one-byte token.ERROR and the scan continues - and it keeps
a small context stack so that strings, path literals and ${...}
interpolations can interleave correctly (spec.md section 4.2).
*/
package lexer

import (
	"devt.de/krotik/nixcst/config"
	"devt.de/krotik/nixcst/token"
	"devt.de/krotik/nixcst/util"
)

/*
frameKind identifies the purpose of a context-stack frame.
*/
type frameKind int

const (
	frameStringBody frameKind = iota
	frameInterpol
)

/*
ctxFrame is one entry of the tokenizer's context stack. multiline only
applies to frameStringBody; depth only applies to frameInterpol.
*/
type ctxFrame struct {
	kind      frameKind
	multiline bool
	depth     uint32
}

/*
State is an opaque snapshot of the tokenizer's position, suitable for
Save/Restore pairs used by the parser's speculative lookahead. Stack is
copied by value on Save so that mutating the live tokenizer afterwards
can never alias a saved snapshot (spec.md section 9).
*/
type State struct {
	Pos   uint32
	Stack []ctxFrame
}

/*
Tokenizer scans one token at a time from a fixed source buffer. It
keeps no global state; independent Tokenizer values over independent
sources never interact, even across goroutines (spec.md section 5).
*/
type Tokenizer struct {
	source []byte
	pos    uint32
	stack  []ctxFrame
	logger util.Logger
}

/*
New creates a Tokenizer over source with tracing disabled (nil logger).
*/
func New(source []byte) *Tokenizer {
	return NewWithLogger(source, nil)
}

/*
NewWithLogger creates a Tokenizer over source, tracing context-stack
transitions to logger. A nil logger disables tracing.
*/
func NewWithLogger(source []byte, logger util.Logger) *Tokenizer {
	return &Tokenizer{source: source, logger: logger}
}

/*
Source returns the tokenizer's underlying byte slice.
*/
func (t *Tokenizer) Source() []byte {
	return t.source
}

/*
SaveState snapshots the tokenizer's position and context stack.
*/
func (t *Tokenizer) SaveState() State {
	stack := make([]ctxFrame, len(t.stack))
	copy(stack, t.stack)
	return State{Pos: t.pos, Stack: stack}
}

/*
RestoreState rewinds the tokenizer to a previously saved State. Both
the byte position and the context stack move together - restoring only
the position would desynchronize string/interpolation nesting.
*/
func (t *Tokenizer) RestoreState(s State) {
	t.pos = s.Pos
	stack := make([]ctxFrame, len(s.Stack))
	copy(stack, s.Stack)
	t.stack = stack

	if t.logger != nil {
		t.logger.LogDebug("restore to pos ", s.Pos, " depth ", len(stack))
	}
}

func (t *Tokenizer) push(f ctxFrame) {
	if len(t.stack) >= config.Int(config.MaxNestingDepth) {
		// The nesting bound is a safety valve, not a grammar limit - real
		// inputs never approach it. Past the bound the stack simply stops
		// growing: the frame is not pushed, and the tokenizer goes on in
		// whatever frame is currently on top.
		return
	}
	t.stack = append(t.stack, f)
	if t.logger != nil {
		t.logger.LogDebug("push frame ", f.kind, " depth now ", len(t.stack))
	}
}

func (t *Tokenizer) pop() {
	if len(t.stack) == 0 {
		return
	}
	t.stack = t.stack[:len(t.stack)-1]
	if t.logger != nil {
		t.logger.LogDebug("pop frame, depth now ", len(t.stack))
	}
}

func (t *Tokenizer) top() (ctxFrame, bool) {
	if len(t.stack) == 0 {
		return ctxFrame{}, false
	}
	return t.stack[len(t.stack)-1], true
}

/*
Next returns the next token from the current position. It never
returns an error - unrecoverable byte sequences become a one-byte
token.ERROR and the tokenizer advances past it.
*/
func (t *Tokenizer) Next() token.Token {
	if f, ok := t.top(); ok && f.kind == frameStringBody {
		return t.scanStringBody(f)
	}
	// An empty stack or a top frame of frameInterpol both fall through to
	// normal-mode dispatch - inside an interpolation, ordinary tokens are
	// scanned while scanOperator tracks brace balance so that the
	// interpolation's own "}" is told apart from a nested attrset's.

	return t.scanNormal()
}

func (t *Tokenizer) byteAt(pos uint32) (byte, bool) {
	if int(pos) >= len(t.source) {
		return 0, false
	}
	return t.source[pos], true
}

func (t *Tokenizer) at(offset int) byte {
	p := int(t.pos) + offset
	if p < 0 || p >= len(t.source) {
		return 0
	}
	return t.source[p]
}

func (t *Tokenizer) hasPrefix(offset int, s string) bool {
	p := int(t.pos) + offset
	if p < 0 || p+len(s) > len(t.source) {
		return false
	}
	return string(t.source[p:p+len(s)]) == s
}

func (t *Tokenizer) emit(kind token.Kind, end uint32) token.Token {
	tok := token.Token{Kind: kind, Start: t.pos, End: end}
	t.pos = end
	return tok
}
