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
	"fmt"
	"strconv"

	"devt.de/krotik/common/stringutil"
)

/*
writeNode renders one line of the golden dump for n, indented two
spaces per depth, then recurses into its children. Leaves print their
token kind and escaped literal text; branches print their NodeKind.
Format is fixed by spec.md section 6 and must not drift, since the
golden tests compare it byte for byte.
*/
func writeNode(buf *bytes.Buffer, n *Node, source []byte, depth int) {
	buf.WriteString(stringutil.GenerateRollingString(" ", depth*2))

	if n.IsLeaf() {
		tok := n.Token
		fmt.Fprintf(buf, "TOKEN_%v@%d..%d %s\n", tok.Kind, tok.Start, tok.End,
			strconv.Quote(string(tok.Text(source))))
		return
	}

	fmt.Fprintf(buf, "NODE_%v@%d..%d\n", n.Kind, n.Start(), n.End())

	for _, child := range n.Children {
		writeNode(buf, child, source, depth+1)
	}
}
