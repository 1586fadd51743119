// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

// Command keylight highlights authorized_keys and known_hosts files.
//
// Usage:
//
//	keylight [flags] [file]
//	keylight print --color=always ~/.ssh/authorized_keys
//	keylight tokens --format yaml ~/.ssh/known_hosts
package main

import (
	"os"

	"github.com/toeirei/keylight/internal/logging"
	"github.com/toeirei/keylight/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
