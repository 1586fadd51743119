// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui is the interactive viewer: a scrollable, highlighted view of
// one authorized_keys or known_hosts file.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keylight/internal/highlight"
	"github.com/toeirei/keylight/internal/i18n"
	"github.com/toeirei/keylight/internal/logging"
	"github.com/toeirei/keylight/internal/render"
	"github.com/toeirei/keylight/internal/tui/frame"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

// copiedMsg reports the result of a clipboard write.
type copiedMsg struct {
	line int
	err  error
}

// Model is the bubbletea model of the viewer.
type Model struct {
	title      string
	kind       highlight.Kind
	lines      []highlight.Line
	theme      render.Theme
	abbreviate bool

	cursor   int
	viewport viewport.Model
	pane     *frame.Pane
	help     help.Model
	keys     keyMap
	status   string

	// copyText writes to the system clipboard; tests replace it.
	copyText func(string) error
}

// New builds a viewer over already classified lines.
func New(title string, kind highlight.Kind, lines []highlight.Line, theme render.Theme, abbreviate bool) *Model {
	m := &Model{
		title:      title,
		kind:       kind,
		lines:      lines,
		theme:      theme,
		abbreviate: abbreviate,
		viewport:   viewport.New(80, 20),
		help:       help.New(),
		keys:       newKeyMap(),
		copyText:   clipboard.WriteAll,
	}
	m.pane = frame.NewPane(&m.viewport)
	m.pane.SetHeader(m.header())
	m.pane.SetSize(80, 24)
	m.refresh()
	return m
}

// Run starts the viewer on the alternate screen and blocks until it quits.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.pane.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			logging.Warnf("clipboard write failed: %v", msg.err)
			m.status = i18n.T("tui.copy_failed", msg.err)
		} else {
			m.status = i18n.T("tui.copied", msg.line)
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.PageUp):
			m.moveCursor(-m.viewport.Height)
		case key.Matches(msg, m.keys.PageDown):
			m.moveCursor(m.viewport.Height)
		case key.Matches(msg, m.keys.Top):
			m.moveCursor(-len(m.lines))
		case key.Matches(msg, m.keys.Bottom):
			m.moveCursor(len(m.lines))
		case key.Matches(msg, m.keys.Abbreviate):
			m.abbreviate = !m.abbreviate
			m.pane.SetHeader(m.header())
			m.status = ""
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyCurrent()
		default:
			return m, nil
		}
		m.refresh()
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	return m.pane.View()
}

// Cursor returns the zero-based index of the selected line.
func (m *Model) Cursor() int { return m.cursor }

// Abbreviated reports whether key material is currently collapsed.
func (m *Model) Abbreviated() bool { return m.abbreviate }

func (m *Model) copyCurrent() tea.Cmd {
	if len(m.lines) == 0 {
		return nil
	}
	l := m.lines[m.cursor]
	write := m.copyText
	return func() tea.Msg {
		return copiedMsg{line: l.Number, err: write(l.Text)}
	}
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.lines) {
		m.cursor = len(m.lines) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.status = ""
}

func (m *Model) header() string {
	state := i18n.T("tui.abbreviate_off")
	if m.abbreviate {
		state = i18n.T("tui.abbreviate_on")
	}
	return titleStyle.Render(m.title) + " " + subtleStyle.Render(fmt.Sprintf("(%s, %s)", m.kind, state))
}

// refresh re-renders the body and keeps the cursor inside the viewport.
func (m *Model) refresh() {
	gutter := len(fmt.Sprint(len(m.lines)))
	rows := make([]string, len(m.lines))
	opts := render.Options{Abbreviate: m.abbreviate}
	for i, l := range m.lines {
		marker := "  "
		num := subtleStyle.Render(fmt.Sprintf("%*d ", gutter, l.Number))
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		rows[i] = marker + num + m.theme.Line(l, opts)
	}
	m.viewport.SetContent(strings.Join(rows, "\n"))

	h := m.viewport.Height
	switch {
	case m.cursor < m.viewport.YOffset:
		m.viewport.SetYOffset(m.cursor)
	case h > 0 && m.cursor >= m.viewport.YOffset+h:
		m.viewport.SetYOffset(m.cursor - h + 1)
	}

	right := m.status
	if right == "" && len(m.lines) > 0 {
		right = i18n.T("tui.position", m.cursor+1, len(m.lines))
	}
	m.pane.SetFooterTokens(m.help.ShortHelpView(m.keys.ShortHelp()), right)
}
