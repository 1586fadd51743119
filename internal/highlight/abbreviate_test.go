// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.
package highlight

import (
	"strings"
	"testing"
)

func TestAbbreviate_MiddleRange(t *testing.T) {
	for _, n := range []int{1, 5, 300} {
		key := "AAAA" + "B3NzaC1y" + strings.Repeat("x", n) + "tail/+=="
		line := "ssh-rsa " + key + " c"
		s := Span{Start: 8, End: 8 + len(key), Category: CategoryKeyMaterial}
		r, ok := Abbreviate(line, s)
		if !ok {
			t.Fatalf("n=%d: expected a range", n)
		}
		if r.Len() != n || line[r.Start:r.End] != strings.Repeat("x", n) {
			t.Fatalf("n=%d: got range %v covering %q", n, r, line[r.Start:r.End])
		}
	}
}

func TestAbbreviate_TooShort(t *testing.T) {
	for _, key := range []string{
		"AAAA" + "12345678" + "abcdefgh",
		"AAAA" + "12345678" + "abcdefg",
		"AAAA1234",
		"AAAA",
	} {
		s := Span{Start: 0, End: len(key), Category: CategoryKeyMaterial}
		if r, ok := Abbreviate(key, s); ok {
			t.Fatalf("%q: expected no range, got %v", key, r)
		}
	}
}

func TestAbbreviate_Rejects(t *testing.T) {
	key := "AAAA" + strings.Repeat("k", 40)
	if _, ok := Abbreviate(key, Span{Start: 0, End: len(key), Category: CategoryComment}); ok {
		t.Fatalf("non key-material span must not be abbreviated")
	}
	if _, ok := Abbreviate(key, Span{Start: 0, End: len(key) + 1, Category: CategoryKeyMaterial}); ok {
		t.Fatalf("out of range span must not be abbreviated")
	}
	noMarker := strings.Repeat("k", 40)
	if _, ok := Abbreviate(noMarker, Span{Start: 0, End: len(noMarker), Category: CategoryKeyMaterial}); ok {
		t.Fatalf("span without AAAA must not be abbreviated")
	}
}

func TestAbbreviate_UsesFirstMarker(t *testing.T) {
	key := "xxAAAA12345678" + strings.Repeat("m", 10) + "AAAA5678"
	s := Span{Start: 0, End: len(key), Category: CategoryKeyMaterial}
	r, ok := Abbreviate(key, s)
	if !ok || r.Start != 14 || r.End != len(key)-8 {
		t.Fatalf("unexpected range %v ok=%v", r, ok)
	}
}

func TestAbbreviate_ClassifiedLine(t *testing.T) {
	line := "ssh-ed25519 " + edKey + " me"
	spans := NewClassifier(nil).AuthorizedKeys(line)
	r, ok := Abbreviate(line, spans[1])
	if !ok {
		t.Fatalf("expected a fold for %q", line)
	}
	if line[spans[1].Start:r.Start] != edKey[:12] {
		t.Fatalf("unexpected visible prefix %q", line[spans[1].Start:r.Start])
	}
	if line[r.End:spans[1].End] != edKey[len(edKey)-8:] {
		t.Fatalf("unexpected visible suffix %q", line[r.End:spans[1].End])
	}
}
