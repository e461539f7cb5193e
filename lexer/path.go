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

/*
Path scanning has no context-stack frame of its own: a path is a run of
ordinary bytes with a recognizable shape, re-entered fresh from
scanNormal every time. Interpolations inside a path (./foo${bar}/baz)
fall out for free, because '$' is never a path-body byte: the run
simply ends there, scanNormal's "${" check fires on the next call, and
once the interpolation's INTERPOL_END pops back out, scanNormal
recognizes the remainder ("/baz") as a fresh path of its own.

The three forms mirror spec.md section 4.2:

  search path:   < pathChar+ ( / pathChar+ )* >
  home path:     ~ ( / pathChar+ )+
  absolute/rel:  pathChar* ( / pathChar+ )+ /?

"." alone, or "/" alone, is not a path (no '/'-group ever matched) and
falls through to scanOperator as DOT or DIV respectively - this is the
"rewind to operator if not a path" rule, implemented here simply by
returning ok=false and letting scanNormal's caller try scanOperator.
*/

func isPathChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') || b == '.' || b == '_' || b == '-' || b == '+'
}

/*
scanPath dispatches on the byte at start to the matching path form.
*/
func scanPath(data []byte, start int) (int, bool) {
	switch data[start] {
	case '<':
		return scanSearchPath(data, start)
	case '~':
		return scanHomePath(data, start)
	default: // '.' or '/'
		return scanPlainPath(data, start)
	}
}

/*
scanSlashGroups consumes zero or more "/" pathChar+ groups starting at
i, returning the new offset and how many groups matched. A "/" not
followed by at least one path char (a bare "/", a "//" update operator,
or a "/${" interpolation opener) ends the scan without consuming it.
*/
func scanSlashGroups(data []byte, i int) (int, int) {
	groups := 0

	for i < len(data) && data[i] == '/' {
		j := i + 1
		k := j
		for k < len(data) && isPathChar(data[k]) {
			k++
		}
		if k == j {
			break
		}
		i = k
		groups++
	}

	return i, groups
}

func scanPlainPath(data []byte, start int) (int, bool) {
	i := start
	for i < len(data) && isPathChar(data[i]) {
		i++
	}

	end, groups := scanSlashGroups(data, i)
	if groups == 0 {
		return start, false
	}

	// Optional single trailing slash with nothing after it.
	if end < len(data) && data[end] == '/' && (end+1 >= len(data) || data[end+1] != '/') {
		end++
	}

	return end, true
}

func scanHomePath(data []byte, start int) (int, bool) {
	if start+1 >= len(data) || data[start+1] != '/' {
		return start, false
	}

	end, groups := scanSlashGroups(data, start+1)
	if groups == 0 {
		return start, false
	}

	return end, true
}

func scanSearchPath(data []byte, start int) (int, bool) {
	i := start + 1

	segStart := i
	for i < len(data) && isPathChar(data[i]) {
		i++
	}
	if i == segStart {
		return start, false
	}

	for i < len(data) && data[i] == '/' {
		j := i + 1
		k := j
		for k < len(data) && isPathChar(data[k]) {
			k++
		}
		if k == j {
			break
		}
		i = k
	}

	if i < len(data) && data[i] == '>' {
		return i + 1, true
	}

	return start, false
}
