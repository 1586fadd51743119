// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keylight/internal/highlight"
)

// DefaultEllipsis replaces the hidden middle of an abbreviated key.
const DefaultEllipsis = "…"

// Options control a single rendering pass.
type Options struct {
	Abbreviate bool
}

// Theme styles each category. The zero Theme renders plain text.
type Theme struct {
	styles   map[highlight.Category]lipgloss.Style
	ellipsis lipgloss.Style
	Ellipsis string
}

// NewTheme builds a theme on renderer r, which decides the color profile.
// overrides replace entries of DefaultColors.
func NewTheme(r *lipgloss.Renderer, overrides map[highlight.Category]lipgloss.Color) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	t := Theme{
		styles:   make(map[highlight.Category]lipgloss.Style, len(DefaultColors)),
		ellipsis: r.NewStyle().Foreground(colorSubtle).Faint(true),
		Ellipsis: DefaultEllipsis,
	}
	for c, color := range DefaultColors {
		if o, ok := overrides[c]; ok {
			color = o
		}
		s := r.NewStyle().Foreground(color)
		switch c {
		case highlight.CategoryKeyType, highlight.CategoryMarker, highlight.CategoryRevokedMarker:
			s = s.Bold(true)
		case highlight.CategoryComment:
			s = s.Italic(true)
		}
		t.styles[c] = s
	}
	return t
}

// Plain returns a theme that emits no escape sequences.
func Plain() Theme {
	return Theme{Ellipsis: DefaultEllipsis}
}

func (t Theme) render(c highlight.Category, text string) string {
	if s, ok := t.styles[c]; ok && text != "" {
		return s.Render(text)
	}
	return text
}

func (t Theme) renderEllipsis() string {
	if t.styles == nil {
		return t.Ellipsis
	}
	return t.ellipsis.Render(t.Ellipsis)
}

// Line renders one classified line. Text outside spans is written as is.
// With opts.Abbreviate each fold range is replaced by the ellipsis.
func (t Theme) Line(l highlight.Line, opts Options) string {
	var b strings.Builder
	pos := 0
	for i, s := range l.Spans {
		if s.Start < pos || s.End > len(l.Text) {
			continue
		}
		b.WriteString(l.Text[pos:s.Start])
		if f, ok := l.Fold(i); ok && opts.Abbreviate {
			b.WriteString(t.render(s.Category, l.Text[s.Start:f.Start]))
			b.WriteString(t.renderEllipsis())
			b.WriteString(t.render(s.Category, l.Text[f.End:s.End]))
		} else {
			b.WriteString(t.render(s.Category, s.Text(l.Text)))
		}
		pos = s.End
	}
	b.WriteString(l.Text[pos:])
	return b.String()
}

// Document renders every line, joined by newlines.
func (t Theme) Document(lines []highlight.Line, opts Options) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = t.Line(l, opts)
	}
	return strings.Join(out, "\n")
}
