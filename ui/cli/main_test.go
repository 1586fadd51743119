// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const edKey = "AAAAC3NzaC1lZDI1NTE5AAAAIGb3Xk3m1d0Cz5n5tqf0p1e5qVQzKx3J7bQ0bqQ3e4Zq"

// isolate keeps tests away from any real keylight.yaml and from the
// terminal.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Setenv("KEYLIGHT_LANGUAGE", "")
	chdir(t, t.TempDir())
	prev := isTerminal
	isTerminal = func(*os.File) bool { return false }
	t.Cleanup(func() { isTerminal = prev })
	return tmp
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPrint_PlainAbbreviated(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "authorized_keys",
		"# team keys\nno-pty ssh-ed25519 "+edKey+" alice@laptop\n")
	out, err := run(t, "print", "--color", "never", path)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	want := "# team keys\nno-pty ssh-ed25519 " + edKey[:12] + "…" + edKey[len(edKey)-8:] + " alice@laptop\n"
	if out != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", out, want)
	}
}

func TestPrint_NoAbbreviate(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "known_hosts", "host ssh-ed25519 "+edKey+"\n")
	out, err := run(t, "print", "--color=never", "--abbreviate=false", path)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.Contains(out, edKey) {
		t.Fatalf("expected full key, got %q", out)
	}
}

func TestPrint_ColorAlways(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "known_hosts", "@revoked * ssh-ed25519 "+edKey+"\n")
	out, err := run(t, "print", "--color", "always", path)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected ANSI escapes, got %q", out)
	}
}

func TestPrint_MultipleFilesAndRootFallback(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	a := writeFile(t, dir, "authorized_keys", "# a\n")
	k := writeFile(t, dir, "known_hosts", "# k\n")
	out, err := run(t, "print", a, k)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.Contains(out, "==> "+a+" <==\n# a") || !strings.Contains(out, "==> "+k+" <==\n# k") {
		t.Fatalf("unexpected multi-file output %q", out)
	}

	out, err = run(t, a)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if out != "# a\n" {
		t.Fatalf("root without terminal should print, got %q", out)
	}
}

func TestPrint_Errors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	if _, err := run(t, "print", filepath.Join(dir, "known_hosts")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	odd := writeFile(t, dir, "keys.txt", "ssh-rsa AAAA\n")
	if _, err := run(t, "print", odd); err == nil {
		t.Fatalf("expected error for undetectable kind")
	}
	if _, err := run(t, "print", "--kind", "hosts", odd); err == nil {
		t.Fatalf("expected error for invalid --kind")
	}
	if _, err := run(t, "print", "--kind", "authorized-keys", odd); err != nil {
		t.Fatalf("explicit kind should work: %v", err)
	}
	if _, err := run(t, "print", "--color", "sometimes", odd, "--kind", "ak"); err == nil {
		t.Fatalf("expected error for unknown color mode")
	}
	if _, err := run(t, "view", odd); err == nil {
		t.Fatalf("view without a terminal must fail")
	}
}

func TestTokens_JSON(t *testing.T) {
	isolate(t)
	line := "example.com,!bad ssh-ed25519 " + edKey + " host key"
	path := writeFile(t, t.TempDir(), "known_hosts", "# c\n"+line+"\n")
	out, err := run(t, "tokens", path)
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	var doc tokenDocument
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if doc.Kind != "known_hosts" || len(doc.Lines) != 1 || doc.Lines[0].Line != 2 {
		t.Fatalf("unexpected document %+v", doc)
	}
	var cats []string
	for _, s := range doc.Lines[0].Spans {
		cats = append(cats, s.Category)
		if line[s.Start:s.End] != s.Text {
			t.Fatalf("span text mismatch: %+v", s)
		}
	}
	want := "host-pattern,negation,host-pattern,key-type,key-material,comment"
	if strings.Join(cats, ",") != want {
		t.Fatalf("categories %v, want %s", cats, want)
	}
	if len(doc.Lines[0].Folds) != 1 {
		t.Fatalf("expected one fold, got %+v", doc.Lines[0].Folds)
	}
}

func TestTokens_YAMLAndBadFormat(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "authorized_keys", "ssh-rsa AAAAB3NzaC1yc2EAAAADAQABAAABgQDexample== user@host\n")
	out, err := run(t, "tokens", "--format", "yaml", path)
	if err != nil {
		t.Fatalf("tokens yaml: %v", err)
	}
	for _, want := range []string{"kind: authorized_keys", "category: key-type", "user@host"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in yaml output:\n%s", want, out)
		}
	}
	if _, err := run(t, "tokens", "--format", "xml", path); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestVocab_Presets(t *testing.T) {
	isolate(t)
	out, err := run(t, "vocab")
	if err != nil {
		t.Fatalf("vocab: %v", err)
	}
	if !strings.Contains(out, "  ssh-ed25519\n") || strings.Contains(out, "sk-ssh-ed25519@openssh.com") {
		t.Fatalf("unexpected default vocabulary:\n%s", out)
	}
	if !strings.Contains(out, "Key types (6):") {
		t.Fatalf("expected key type count, got:\n%s", out)
	}
	out, err = run(t, "vocab", "--preset", "extended")
	if err != nil {
		t.Fatalf("vocab extended: %v", err)
	}
	if !strings.Contains(out, "sk-ssh-ed25519@openssh.com") {
		t.Fatalf("extended vocabulary missing security keys:\n%s", out)
	}
	if _, err := run(t, "vocab", "--preset", "nope"); err == nil {
		t.Fatalf("expected error for unknown preset")
	}
}

func TestConfigFile_ExtendsVocabulary(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "keylight.yaml", "color: never\nabbreviate: false\nvocabulary:\n  key_types: [ssh-future]\n")
	keys := writeFile(t, dir, "authorized_keys", "ssh-future "+edKey+" next\n")
	out, err := run(t, "tokens", "--config", cfgPath, keys)
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	if !strings.Contains(out, `"category": "key-type"`) || !strings.Contains(out, `"text": "ssh-future"`) {
		t.Fatalf("configured key type not recognized:\n%s", out)
	}
	if _, err := run(t, "print", "--config", filepath.Join(dir, "missing.yaml"), keys); err == nil {
		t.Fatalf("expected error for missing --config file")
	}
}

func TestConfigInit(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "sub", "keylight.yaml")
	out, err := run(t, "config", "init", "--path", path)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Fatalf("expected path in output, got %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil || !strings.Contains(string(data), "preset: default") {
		t.Fatalf("unexpected config file %q (%v)", data, err)
	}
	if _, err := run(t, "config", "init", "--path", path); err == nil {
		t.Fatalf("expected error when file exists")
	}
	if _, err := run(t, "config", "init", "--path", path, "--force"); err != nil {
		t.Fatalf("--force should overwrite: %v", err)
	}
}

func TestLanguageFromArgs(t *testing.T) {
	t.Setenv("KEYLIGHT_LANGUAGE", "")
	if got := languageFromArgs([]string{"print", "--language", "de"}); got != "de" {
		t.Fatalf("got %q", got)
	}
	if got := languageFromArgs([]string{"--language=de", "vocab"}); got != "de" {
		t.Fatalf("got %q", got)
	}
	if got := languageFromArgs(nil); got != "en" {
		t.Fatalf("got %q", got)
	}
	t.Setenv("KEYLIGHT_LANGUAGE", "de")
	if got := languageFromArgs(nil); got != "de" {
		t.Fatalf("env fallback: got %q", got)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
