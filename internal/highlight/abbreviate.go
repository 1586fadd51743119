// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

package highlight

import "strings"

const (
	// AbbrevPrefix is the number of characters kept visible after the
	// leading AAAA of a key blob.
	AbbrevPrefix = 8
	// AbbrevSuffix is the number of trailing characters kept visible.
	AbbrevSuffix = 8
)

// Abbreviate returns the part of a key-material span that may be collapsed
// for display. The first AAAA and the eight characters after it stay
// visible, as do the last eight characters. If nothing would remain in
// between, ok is false and the whole key should be shown.
func Abbreviate(line string, s Span) (r Range, ok bool) {
	if s.Category != CategoryKeyMaterial || s.Start < 0 || s.End > len(line) || s.Start >= s.End {
		return Range{}, false
	}
	idx := strings.Index(line[s.Start:s.End], keyBlobMarker)
	if idx < 0 {
		return Range{}, false
	}
	head := s.Start + idx + len(keyBlobMarker)
	start := head + AbbrevPrefix
	end := s.End - AbbrevSuffix
	if end <= start {
		return Range{}, false
	}
	for i := head; i < start; i++ {
		if !isBase64(line[i]) {
			return Range{}, false
		}
	}
	for i := end; i < s.End; i++ {
		if !isBase64(line[i]) {
			return Range{}, false
		}
	}
	return Range{Start: start, End: end}, true
}
