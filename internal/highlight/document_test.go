// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.
package highlight

import (
	"errors"
	"testing"
)

func TestDocument_FoldsPerLine(t *testing.T) {
	lines := []string{
		"# managed by hand",
		"ssh-ed25519 " + edKey + " me",
		"ssh-rsa AAAA1234567812345678",
		"",
	}
	doc := NewClassifier(nil).Document(KindAuthorizedKeys, lines)
	if len(doc) != len(lines) {
		t.Fatalf("expected %d lines, got %d", len(lines), len(doc))
	}
	for i, l := range doc {
		if l.Number != i+1 || l.Text != lines[i] {
			t.Fatalf("line %d: unexpected number/text %d %q", i, l.Number, l.Text)
		}
	}
	if len(doc[0].Spans) != 0 || len(doc[0].Folds) != 0 {
		t.Fatalf("comment line must have no spans or folds")
	}
	if len(doc[1].Folds) != 1 {
		t.Fatalf("expected one fold on key line, got %v", doc[1].Folds)
	}
	if _, ok := doc[1].Fold(1); !ok {
		t.Fatalf("expected Fold to find the key-material fold")
	}
	if _, ok := doc[1].Fold(0); ok {
		t.Fatalf("key-type span must not have a fold")
	}
	if len(doc[2].Spans) != 2 || len(doc[2].Folds) != 0 {
		t.Fatalf("short key: expected spans without fold, got %v / %v", doc[2].Spans, doc[2].Folds)
	}
}

func TestDocument_RecomputesAfterEdit(t *testing.T) {
	c := NewClassifier(nil)
	lines := []string{"ssh-ed25519 " + edKey}
	before := c.Document(KindAuthorizedKeys, lines)
	lines[0] = "no-pty " + lines[0]
	after := c.Document(KindAuthorizedKeys, lines)
	if after[0].Folds[0].Start != before[0].Folds[0].Start+len("no-pty ") {
		t.Fatalf("folds did not follow the edited text: %v -> %v", before[0].Folds, after[0].Folds)
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"authorized-keys": KindAuthorizedKeys,
		"authorized_keys": KindAuthorizedKeys,
		"Known-Hosts":     KindKnownHosts,
		"ssh_known_hosts": KindKnownHosts,
	}
	for in, expected := range cases {
		got, err := ParseKind(in)
		if err != nil || got != expected {
			t.Fatalf("ParseKind(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseKind("hosts"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestDetectKind(t *testing.T) {
	cases := map[string]Kind{
		"/home/a/.ssh/authorized_keys":      KindAuthorizedKeys,
		"authorized_keys2":                  KindAuthorizedKeys,
		"/etc/ssh/ssh_known_hosts":          KindKnownHosts,
		"backup/known_hosts.old.zst":        KindKnownHosts,
		"/tmp/authorized_keys.bak.gz":       KindAuthorizedKeys,
		"C:/Users/x/.ssh/KNOWN_HOSTS":       KindKnownHosts,
	}
	for in, expected := range cases {
		got, err := DetectKind(in)
		if err != nil || got != expected {
			t.Fatalf("DetectKind(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := DetectKind("/etc/hosts"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}
