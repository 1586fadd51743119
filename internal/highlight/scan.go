// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

package highlight

import "strings"

// keyBlobMarker starts every base64 encoded wire-format public key: the
// big-endian length of the algorithm name has three zero bytes.
const keyBlobMarker = "AAAA"

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\v' || b == '\f'
}

func isBase64(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	return b == '+' || b == '/' || b == '='
}

func skipSpace(line string, i int) int {
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	return i
}

// trimmedEnd is the offset just past the last non-space byte of line.
func trimmedEnd(line string) int {
	end := len(line)
	for end > 0 && isSpace(line[end-1]) {
		end--
	}
	return end
}

// isCommentLine reports whether line is blank or starts with '#' after
// optional leading whitespace.
func isCommentLine(line string) bool {
	i := skipSpace(line, 0)
	return i == len(line) || line[i] == '#'
}

// skipQuoted expects line[i] == '"' and returns the offset just past the
// closing quote. Backslash escapes the next byte. An unterminated string
// runs to the end of the line.
func skipQuoted(line string, i int) int {
	for i++; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(line)
}

// nextField returns the next whitespace delimited field at or after from.
// Double quoted sections are part of the field even when they contain
// spaces, which keeps option values like command="a b" in one piece.
func nextField(line string, from int) (start, end int, ok bool) {
	start = skipSpace(line, from)
	if start >= len(line) {
		return 0, 0, false
	}
	end = start
	for end < len(line) && !isSpace(line[end]) {
		if line[end] == '"' {
			end = skipQuoted(line, end)
			continue
		}
		end++
	}
	return start, end, true
}

// keyBlob checks that a key blob starts at or after from (separated by
// whitespace) and returns the extent of its base64 run.
func keyBlob(line string, from int) (start, end int, ok bool) {
	start = skipSpace(line, from)
	if start == from || !strings.HasPrefix(line[start:], keyBlobMarker) {
		return 0, 0, false
	}
	end = start
	for end < len(line) && isBase64(line[end]) {
		end++
	}
	return start, end, true
}

// trailingComment returns the comment span following a key blob, if any.
func trailingComment(line string, blobEnd int) (Span, bool) {
	start := skipSpace(line, blobEnd)
	end := trimmedEnd(line)
	if start >= end {
		return Span{}, false
	}
	return Span{Start: start, End: end, Category: CategoryComment}, true
}
