// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package highlight classifies the fields of authorized_keys and known_hosts
// lines and computes the collapsible middle of each key blob.
//
// Every function here is pure: it reads one line (or one span of it) and
// returns byte ranges. Nothing is cached between calls, so a caller that
// edits a line simply classifies it again.
package highlight
