// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package render turns classified lines into styled terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keylight/internal/highlight"
)

// colorPalette defines the core colors.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorSpecial   = lipgloss.Color("208") // An orange for special attention
	colorError     = lipgloss.Color("196") // A bright red
	colorSuccess   = lipgloss.Color("40")  // A nice green
	colorKeyword   = lipgloss.Color("170") // Magenta
	colorHost      = lipgloss.Color("111") // Soft blue
)

// DefaultColors is the color of each category when the config does not
// override it.
var DefaultColors = map[highlight.Category]lipgloss.Color{
	highlight.CategoryKeyword:       colorKeyword,
	highlight.CategoryKeyType:       colorHighlight,
	highlight.CategoryKeyMaterial:   colorSuccess,
	highlight.CategoryComment:       colorSubtle,
	highlight.CategoryMarker:        colorSpecial,
	highlight.CategoryRevokedMarker: colorError,
	highlight.CategoryHostPattern:   colorHost,
	highlight.CategoryHashedHost:    colorSubtle,
	highlight.CategoryNegation:      colorError,
}

// ParseColors converts config overrides keyed by category name
// ("key-type", "comment", ...) into colors.
func ParseColors(overrides map[string]string) (map[highlight.Category]lipgloss.Color, error) {
	byName := make(map[string]highlight.Category, len(highlight.Categories))
	for _, c := range highlight.Categories {
		byName[c.String()] = c
	}
	out := make(map[highlight.Category]lipgloss.Color, len(overrides))
	for name, color := range overrides {
		c, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown theme category %q", name)
		}
		if strings.TrimSpace(color) == "" {
			continue
		}
		out[c] = lipgloss.Color(strings.TrimSpace(color))
	}
	return out, nil
}
