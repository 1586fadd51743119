// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

package frame

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// Pane composes a header, a viewport body and a footer, and sizes the body
// to whatever height the header and footer leave over.
type Pane struct {
	Width  int
	Height int

	Header      string
	FooterLeft  string
	FooterRight string

	Viewport *viewport.Model
}

// NewPane creates a pane around vp.
func NewPane(vp *viewport.Model) *Pane {
	return &Pane{Viewport: vp}
}

// SetHeader sets the header text (may include multiple lines).
func (p *Pane) SetHeader(h string) {
	p.Header = h
	p.SetSize(p.Width, p.Height)
}

// SetFooterTokens sets the left/right footer tokens.
func (p *Pane) SetFooterTokens(left, right string) {
	p.FooterLeft = left
	p.FooterRight = right
}

// BodyHeight is the number of rows left for the viewport.
func (p *Pane) BodyHeight() int {
	headerLines := 1 + strings.Count(p.Header, "\n")
	h := p.Height - headerLines - 1
	if h < 1 {
		h = 1
	}
	return h
}

// SetSize sets the pane's total size and resizes the viewport.
func (p *Pane) SetSize(width, height int) {
	p.Width = width
	p.Height = height
	if p.Viewport != nil {
		p.Viewport.Width = width
		p.Viewport.Height = p.BodyHeight()
	}
}

// View renders header, body and status bar.
func (p *Pane) View() string {
	var b strings.Builder
	b.WriteString(p.Header)
	b.WriteString("\n")
	if p.Viewport != nil {
		b.WriteString(p.Viewport.View())
	}
	b.WriteString("\n")
	b.WriteString(StatusBar(p.FooterLeft, p.FooterRight, p.Width))
	return b.String()
}
