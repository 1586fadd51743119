// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

package highlight

// AuthorizedKeys classifies one authorized_keys line:
//
//	[options] key-type base64-key [comment]
//
// Option keywords are only reported once a key type followed by a key blob
// has been found; a line without one yields nothing.
func (c *Classifier) AuthorizedKeys(line string) []Span {
	if isCommentLine(line) {
		return nil
	}
	first := skipSpace(line, 0)
	for pos := first; ; {
		start, end, ok := nextField(line, pos)
		if !ok {
			return nil
		}
		pos = end
		if !c.vocab.IsKeyType(line[start:end]) {
			continue
		}
		blobStart, blobEnd, ok := keyBlob(line, end)
		if !ok {
			continue
		}
		spans := c.optionSpans(line, first, start)
		spans = append(spans,
			Span{Start: start, End: end, Category: CategoryKeyType},
			Span{Start: blobStart, End: blobEnd, Category: CategoryKeyMaterial},
		)
		if cs, ok := trailingComment(line, blobEnd); ok {
			spans = append(spans, cs)
		}
		return spans
	}
}

// optionSpans scans line[from:to] for comma or whitespace separated options
// of the form name or name=value and reports the known names.
func (c *Classifier) optionSpans(line string, from, to int) []Span {
	var spans []Span
	i := from
	for i < to {
		if line[i] == ',' || isSpace(line[i]) {
			i++
			continue
		}
		nameStart := i
		for i < to && line[i] != '=' && line[i] != ',' && line[i] != '"' && !isSpace(line[i]) {
			i++
		}
		if c.vocab.IsOption(line[nameStart:i]) {
			spans = append(spans, Span{Start: nameStart, End: i, Category: CategoryKeyword})
		}
		// Skip the value, quoted or bare, up to the next separator.
		for i < to && line[i] != ',' && !isSpace(line[i]) {
			if line[i] == '"' {
				i = skipQuoted(line, i)
				continue
			}
			i++
		}
	}
	return spans
}
