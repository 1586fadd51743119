// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the keylight command line with Cobra. It loads
// configuration, builds the classifier and theme from it and hands files to
// the printer or the interactive viewer.
package cli
