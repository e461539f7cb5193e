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

import "devt.de/krotik/nixcst/token"

/*
Node is a tagged variant: either a Leaf wrapping exactly one lexer
token, or a Branch carrying an ordered sequence of children. Exactly
one of Token and Children is meaningful on any given Node - a leaf has
a Token and no children, a branch has a Kind and zero or more children.

A Node is owned exclusively by its parent; the root is owned by the
CST that produced it. Trees are acyclic, so dropping the root drops
every descendant with it - there is no shared ownership and no
arena-of-indices bookkeeping to maintain.
*/
type Node struct {
	Kind     NodeKind
	Token    *token.Token
	Children []*Node
}

/*
NewLeaf wraps a single token as a Node.
*/
func NewLeaf(tok token.Token) *Node {
	return &Node{Token: &tok}
}

/*
NewBranch creates a branch Node of the given kind over children.
*/
func NewBranch(kind NodeKind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

/*
IsLeaf reports whether n wraps a single token rather than children.
*/
func (n *Node) IsLeaf() bool {
	return n.Token != nil
}

/*
Start returns the byte offset of the first token under n.
*/
func (n *Node) Start() uint32 {
	if n.Token != nil {
		return n.Token.Start
	}
	if len(n.Children) == 0 {
		return 0
	}
	return n.Children[0].Start()
}

/*
End returns the byte offset just past the last token under n.
*/
func (n *Node) End() uint32 {
	if n.Token != nil {
		return n.Token.End
	}
	if len(n.Children) == 0 {
		return 0
	}
	return n.Children[len(n.Children)-1].End()
}

/*
Append adds a child to a branch node.
*/
func (n *Node) Append(child *Node) {
	n.Children = append(n.Children, child)
}

/*
Walk calls visit for n and, depth-first, for every descendant.
*/
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

/*
Leaves returns every leaf under n, in source order. Concatenating their
text reproduces exactly source[n.Start():n.End()] - the losslessness
invariant spec.md section 4.3 requires.
*/
func (n *Node) Leaves() []*Node {
	var out []*Node
	n.Walk(func(m *Node) {
		if m.IsLeaf() {
			out = append(out, m)
		}
	})
	return out
}
