// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Keylight.
//
// Usage:
//
//	go run . [flags] [file]
//	./keylight [flags] [file]
//
// See --help for options.
package main

import (
	"fmt"
	"os"

	"github.com/toeirei/keylight/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "keylight: %v\n", err)
		os.Exit(1)
	}
}
