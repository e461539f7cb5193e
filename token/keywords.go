/*
 * nixcst
 *
 * Copyright 2024 The nixcst Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package token

import "devt.de/krotik/common/sortutil"

/*
KeywordNames returns the reserved words of the language in a stable,
sorted order. Ranging over KeywordKinds directly would follow Go's
randomized map iteration order; this returns the same order on every
call.
*/
func KeywordNames() []string {
	names := make([]interface{}, 0, len(KeywordKinds))
	for k := range KeywordKinds {
		names = append(names, k)
	}

	sortutil.InterfaceStrings(names)

	ret := make([]string, len(names))
	for i, n := range names {
		ret[i] = n.(string)
	}

	return ret
}
