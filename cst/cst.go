/*
 * nixcst
 *
 * Copyright 2024 The nixcst Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package cst

import (
	"bytes"
	"io"
)

/*
CST is the result of a successful parse: the root node plus the source
bytes it was built from. A CST owns its whole tree - there is no way to
reach a Node of one CST from another.
*/
type CST struct {
	root   *Node
	source []byte
}

/*
New wraps root and source into a CST. Callers that build a tree by hand
(tests, the parser package) use this rather than a struct literal so
the field names stay private to the package.
*/
func New(root *Node, source []byte) *CST {
	return &CST{root: root, source: source}
}

/*
Root returns the tree's root node.
*/
func (c *CST) Root() *Node {
	return c.root
}

/*
Source returns the byte slice the tree was parsed from.
*/
func (c *CST) Source() []byte {
	return c.source
}

/*
Text returns the slice of source spanned by n.
*/
func (c *CST) Text(n *Node) []byte {
	return c.source[n.Start():n.End()]
}

/*
PrintTree writes the golden-dump representation of the tree to w (see
spec.md section 6, "Golden file format").
*/
func (c *CST) PrintTree(w io.Writer) error {
	var buf bytes.Buffer
	writeNode(&buf, c.root, c.source, 0)
	_, err := w.Write(buf.Bytes())
	return err
}

/*
Dump returns PrintTree's output as a string, mainly for tests.
*/
func (c *CST) Dump() string {
	var buf bytes.Buffer
	writeNode(&buf, c.root, c.source, 0)
	return buf.String()
}

/*
CheckLossless verifies the invariant spec.md section 4.3 requires:
concatenating every leaf's text, in order, reproduces the source byte
for byte. Parse never calls it; the tests and the nixcst CLI ("check",
and "parse --check-lossless") call it explicitly.
*/
func (c *CST) CheckLossless() bool {
	var buf bytes.Buffer
	for _, leaf := range c.root.Leaves() {
		buf.Write(c.Text(leaf))
	}
	return bytes.Equal(buf.Bytes(), c.source)
}
