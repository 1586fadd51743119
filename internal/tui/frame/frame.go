// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package frame holds layout helpers shared by the viewer: a header/body/
// footer pane and width-aware footer lines.
package frame

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var statusBarStyle = lipgloss.NewStyle().Reverse(true)

// Footer builds a one-line footer from left and right tokens, aligning the
// right token to the right edge of a line with the specified width. Widths
// are measured in terminal cells, so styled tokens are padded correctly.
// The left side is truncated when both do not fit.
func Footer(left, right string, width int) string {
	if width <= 0 {
		return left + " " + right
	}
	rl := lipgloss.Width(right)
	ll := lipgloss.Width(left)
	if ll+rl+1 <= width {
		return left + strings.Repeat(" ", width-ll-rl) + right
	}
	maxLeft := width - rl - 1
	if maxLeft <= 0 {
		return ansi.Truncate(right, width, "")
	}
	return ansi.Truncate(left, maxLeft, "") + " " + right
}

// StatusBar renders Footer in reverse video so it stands out as a bar.
func StatusBar(left, right string, width int) string {
	return statusBarStyle.Render(Footer(ansi.Strip(left), ansi.Strip(right), width))
}
