// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package vocab holds the word lists the highlighters match against: the
// authorized_keys option keywords and the public key type names. Both are
// plain data so new algorithms can be added from configuration without
// touching the scanners.
package vocab

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/crypto/ssh"
)

// ErrUnknownPreset is returned by Preset for names it does not know.
var ErrUnknownPreset = errors.New("unknown vocabulary preset")

const (
	PresetDefault  = "default"
	PresetExtended = "extended"
)

var defaultOptions = []string{
	"cert-authority",
	"command",
	"environment",
	"from",
	"no-agent-forwarding",
	"no-port-forwarding",
	"no-pty",
	"no-user-rc",
	"no-X11-forwarding",
	"permitopen",
	"principals",
	"tunnel",
}

var defaultKeyTypes = []string{
	"ecdsa-sha2-nistp256",
	"ecdsa-sha2-nistp384",
	"ecdsa-sha2-nistp521",
	"ssh-ed25519",
	"ssh-dss",
	"ssh-rsa",
}

// extraOptions are the sshd(8) AUTHORIZED_KEYS options missing from the
// default list.
var extraOptions = []string{
	"agent-forwarding",
	"expiry-time",
	"no-touch-required",
	"permitlisten",
	"port-forwarding",
	"pty",
	"restrict",
	"user-rc",
	"verify-required",
	"X11-forwarding",
}

var extraKeyTypes = []string{
	ssh.KeyAlgoSKECDSA256,
	ssh.KeyAlgoSKED25519,
	ssh.CertAlgoRSAv01,
	ssh.CertAlgoDSAv01,
	ssh.CertAlgoECDSA256v01,
	ssh.CertAlgoECDSA384v01,
	ssh.CertAlgoECDSA521v01,
	ssh.CertAlgoSKECDSA256v01,
	ssh.CertAlgoED25519v01,
	ssh.CertAlgoSKED25519v01,
}

// Vocabulary is an immutable pair of word sets. Option keywords compare
// case-insensitively, key types exactly.
type Vocabulary struct {
	options  map[string]string // lowercased -> canonical spelling
	keyTypes map[string]struct{}
}

// New builds a vocabulary from explicit lists. Empty entries are ignored.
func New(options, keyTypes []string) *Vocabulary {
	v := &Vocabulary{
		options:  make(map[string]string, len(options)),
		keyTypes: make(map[string]struct{}, len(keyTypes)),
	}
	v.add(options, keyTypes)
	return v
}

func (v *Vocabulary) add(options, keyTypes []string) {
	for _, o := range options {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		v.options[strings.ToLower(o)] = o
	}
	for _, k := range keyTypes {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		v.keyTypes[k] = struct{}{}
	}
}

// Default returns the vocabulary recognized out of the box.
func Default() *Vocabulary {
	return New(defaultOptions, defaultKeyTypes)
}

// Extended returns Default plus the remaining sshd options and the
// certificate and security-key algorithm names known to x/crypto/ssh.
func Extended() *Vocabulary {
	return Default().With(extraOptions, extraKeyTypes)
}

// Preset resolves a preset name. The empty name selects the default.
func Preset(name string) (*Vocabulary, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PresetDefault:
		return Default(), nil
	case PresetExtended:
		return Extended(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// With returns a copy of v extended by the given entries.
func (v *Vocabulary) With(options, keyTypes []string) *Vocabulary {
	out := New(nil, nil)
	for k, o := range v.options {
		out.options[k] = o
	}
	for k := range v.keyTypes {
		out.keyTypes[k] = struct{}{}
	}
	out.add(options, keyTypes)
	return out
}

// IsOption reports whether name is a known authorized_keys option keyword.
func (v *Vocabulary) IsOption(name string) bool {
	if name == "" {
		return false
	}
	_, ok := v.options[strings.ToLower(name)]
	return ok
}

// IsKeyType reports whether name is a known public key type.
func (v *Vocabulary) IsKeyType(name string) bool {
	_, ok := v.keyTypes[name]
	return ok
}

// Options lists the option keywords in their configured spelling, sorted.
func (v *Vocabulary) Options() []string {
	out := make([]string, 0, len(v.options))
	for _, o := range v.options {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i]) < strings.ToLower(out[j]) })
	return out
}

// KeyTypes lists the key type names, sorted.
func (v *Vocabulary) KeyTypes() []string {
	out := make([]string, 0, len(v.keyTypes))
	for k := range v.keyTypes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
