// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package source reads authorized_keys and known_hosts files, including
// compressed backups, into lines ready for classification.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/keylight/internal/highlight"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// maxLineSize bounds a single line. Certificates with many principals can
// run to several KiB; this leaves plenty of headroom.
const maxLineSize = 1 << 20

// File is a loaded document.
type File struct {
	Path  string
	Kind  highlight.Kind
	Lines []string
}

type multiCloser struct {
	io.Reader
	closers []func() error
}

func (m *multiCloser) Close() error {
	var first error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open opens path for reading. Files ending in .zst or .gz are
// decompressed on the fly.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	return wrapDecompressor(path, f)
}

func wrapDecompressor(path string, f io.ReadCloser) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("could not create zstd reader: %w", err)
		}
		return &multiCloser{Reader: zr, closers: []func() error{f.Close, func() error { zr.Close(); return nil }}}, nil
	case ".gz":
		gr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("could not create gzip reader: %w", err)
		}
		return &multiCloser{Reader: gr, closers: []func() error{f.Close, gr.Close}}, nil
	}
	return f, nil
}

// ReadLines splits r into lines without their terminators. A trailing CR
// is dropped so files edited on Windows classify the same.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return lines, nil
}

// Load reads path. When kind is KindUnknown it is detected from the file
// name; standard input has no name, so its kind must be given.
func Load(path string, kind highlight.Kind) (*File, error) {
	if kind == highlight.KindUnknown {
		if path == Stdin {
			return nil, fmt.Errorf("%w: standard input needs an explicit kind", highlight.ErrUnknownKind)
		}
		detected, err := highlight.DetectKind(path)
		if err != nil {
			return nil, err
		}
		kind = detected
	}
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	lines, err := ReadLines(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &File{Path: path, Kind: kind, Lines: lines}, nil
}
