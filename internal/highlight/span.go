// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

package highlight

// Category tags a classified range of a line.
type Category int

const (
	CategoryKeyword Category = iota + 1
	CategoryKeyType
	CategoryKeyMaterial
	CategoryComment
	CategoryMarker
	CategoryRevokedMarker
	CategoryHostPattern
	CategoryHashedHost
	CategoryNegation
)

// Categories lists every category in declaration order.
var Categories = []Category{
	CategoryKeyword,
	CategoryKeyType,
	CategoryKeyMaterial,
	CategoryComment,
	CategoryMarker,
	CategoryRevokedMarker,
	CategoryHostPattern,
	CategoryHashedHost,
	CategoryNegation,
}

var categoryNames = map[Category]string{
	CategoryKeyword:       "keyword",
	CategoryKeyType:       "key-type",
	CategoryKeyMaterial:   "key-material",
	CategoryComment:       "comment",
	CategoryMarker:        "marker",
	CategoryRevokedMarker: "revoked-marker",
	CategoryHostPattern:   "host-pattern",
	CategoryHashedHost:    "hashed-hostname",
	CategoryNegation:      "negation",
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return "plain"
}

// IsMarker is true for both @cert-authority and @revoked.
func (c Category) IsMarker() bool {
	return c == CategoryMarker || c == CategoryRevokedMarker
}

// Span is a half-open byte range [Start, End) of a line.
type Span struct {
	Start    int
	End      int
	Category Category
}

// Text returns the part of line covered by s.
func (s Span) Text(line string) string {
	return line[s.Start:s.End]
}

// Len returns the span length in bytes.
func (s Span) Len() int { return s.End - s.Start }

// Range is a half-open byte range inside a key-material span.
type Range struct {
	Start int
	End   int
}

// Len returns the range length in bytes.
func (r Range) Len() int { return r.End - r.Start }
