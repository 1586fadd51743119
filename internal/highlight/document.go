// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

package highlight

// Line is the classification of one line of a document.
type Line struct {
	Number int // 1-based
	Text   string
	Spans  []Span
	// Folds holds one collapsible range per key-material span that is long
	// enough to abbreviate, in span order.
	Folds []Range
}

// Fold returns the collapsible range of the key-material span at index i of
// l.Spans, if it has one.
func (l Line) Fold(i int) (Range, bool) {
	s := l.Spans[i]
	for _, f := range l.Folds {
		if f.Start >= s.Start && f.End <= s.End {
			return f, true
		}
	}
	return Range{}, false
}

// ClassifyLine classifies text and computes its folds.
func (c *Classifier) ClassifyLine(kind Kind, number int, text string) Line {
	l := Line{Number: number, Text: text, Spans: c.Classify(kind, text)}
	for _, s := range l.Spans {
		if s.Category != CategoryKeyMaterial {
			continue
		}
		if r, ok := Abbreviate(text, s); ok {
			l.Folds = append(l.Folds, r)
		}
	}
	return l
}

// Document classifies every line. Folds are recomputed on each call rather
// than carried over from an earlier pass, so they always match the text.
func (c *Classifier) Document(kind Kind, lines []string) []Line {
	out := make([]Line, len(lines))
	for i, text := range lines {
		out[i] = c.ClassifyLine(kind, i+1, text)
	}
	return out
}
