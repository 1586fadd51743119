// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

package highlight

const (
	markerCertAuthority = "@cert-authority"
	markerRevoked       = "@revoked"
)

// KnownHosts classifies one known_hosts line:
//
//	[@marker] host-pattern[,host-pattern...] key-type base64-key [comment]
//
// Host fields are reported even when the key type is not recognized.
func (c *Classifier) KnownHosts(line string) []Span {
	if isCommentLine(line) {
		return nil
	}
	var spans []Span
	start, end, ok := nextField(line, 0)
	if !ok {
		return nil
	}
	if line[start] == '@' {
		switch line[start:end] {
		case markerCertAuthority:
			spans = append(spans, Span{Start: start, End: end, Category: CategoryMarker})
		case markerRevoked:
			spans = append(spans, Span{Start: start, End: end, Category: CategoryRevokedMarker})
		}
		if start, end, ok = nextField(line, end); !ok {
			return spans
		}
	}
	spans = appendHostSpans(spans, line, start, end)

	ktStart, ktEnd, ok := nextField(line, end)
	if !ok || !c.vocab.IsKeyType(line[ktStart:ktEnd]) {
		return spans
	}
	blobStart, blobEnd, ok := keyBlob(line, ktEnd)
	if !ok {
		return spans
	}
	spans = append(spans,
		Span{Start: ktStart, End: ktEnd, Category: CategoryKeyType},
		Span{Start: blobStart, End: blobEnd, Category: CategoryKeyMaterial},
	)
	if cs, ok := trailingComment(line, blobEnd); ok {
		spans = append(spans, cs)
	}
	return spans
}

// appendHostSpans classifies the comma separated patterns of line[from:to].
func appendHostSpans(spans []Span, line string, from, to int) []Span {
	for i := from; i < to; {
		j := i
		for j < to && line[j] != ',' {
			j++
		}
		spans = appendHostPattern(spans, line, i, j)
		i = j + 1
	}
	return spans
}

func appendHostPattern(spans []Span, line string, start, end int) []Span {
	if start >= end {
		return spans
	}
	if line[start] == '!' {
		spans = append(spans, Span{Start: start, End: start + 1, Category: CategoryNegation})
		start++
		if start == end {
			return spans
		}
	}
	if line[start] == '|' {
		return append(spans, Span{Start: start, End: end, Category: CategoryHashedHost})
	}
	for i := start; i < end; i++ {
		if !isHostByte(line[i]) {
			return spans
		}
	}
	return append(spans, Span{Start: start, End: end, Category: CategoryHostPattern})
}

// isHostByte accepts host names, IP addresses, wildcards and the bracketed
// [host]:port form.
func isHostByte(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '.', ':', '?', '*', '-', '_', '[', ']':
		return true
	}
	return false
}
