// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

package highlight

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownKind is returned when a file kind cannot be parsed or detected.
var ErrUnknownKind = errors.New("unknown file kind")

// Kind selects which classifier handles a line.
type Kind int

const (
	KindUnknown Kind = iota
	KindAuthorizedKeys
	KindKnownHosts
)

func (k Kind) String() string {
	switch k {
	case KindAuthorizedKeys:
		return "authorized_keys"
	case KindKnownHosts:
		return "known_hosts"
	default:
		return "unknown"
	}
}

// ParseKind accepts the file names and their dashed spellings.
func ParseKind(s string) (Kind, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "authorized_keys", "authorized_keys2", "ak":
		return KindAuthorizedKeys, nil
	case "known_hosts", "known_hosts2", "ssh_known_hosts", "kh":
		return KindKnownHosts, nil
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// archiveSuffixes are stripped before a base name is matched.
var archiveSuffixes = []string{".gz", ".zst", ".bak", ".old", ".orig", "~"}

// DetectKind guesses the kind from a file path, e.g. ~/.ssh/known_hosts or
// /etc/ssh/ssh_known_hosts.zst.
func DetectKind(path string) (Kind, error) {
	base := strings.ToLower(filepath.Base(path))
	for trimmed := true; trimmed; {
		trimmed = false
		for _, suf := range archiveSuffixes {
			if strings.HasSuffix(base, suf) && len(base) > len(suf) {
				base = strings.TrimSuffix(base, suf)
				trimmed = true
			}
		}
	}
	switch {
	case strings.HasPrefix(base, "authorized_keys"):
		return KindAuthorizedKeys, nil
	case strings.HasPrefix(base, "known_hosts"), strings.HasPrefix(base, "ssh_known_hosts"):
		return KindKnownHosts, nil
	}
	return KindUnknown, fmt.Errorf("%w: cannot tell from file name %q", ErrUnknownKind, path)
}
