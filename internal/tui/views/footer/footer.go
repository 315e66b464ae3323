// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package footer renders the key help of the focused view together with
// the keys that work everywhere.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/rideroster/internal/tui/keyhelp"
	"github.com/toeirei/rideroster/internal/tui/util"
)

type Model struct {
	baseKeyMap help.KeyMap
	status     string
	width      int
	help       *keyhelp.Model
}

// New returns a footer that appends baseKeyMap to every announced key map
// and shows status right-aligned.
func New(baseKeyMap help.KeyMap, status string) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		status:     status,
		help:       keyhelp.New(),
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	}
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		// Leave room for the status.
		msg.Width = max(msg.Width-lipgloss.Width(m.status)-1, 0)
		return m.help.Update(msg)
	}
	return m.help.Update(msg)
}

func (m *Model) View() string {
	body := m.help.View()
	if !m.help.Expanded {
		body = util.AlignFooter(body, util.HelpStyle.Render(m.status), m.width)
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Width(max(m.width, 0)).
		Render(body)
}

// Height returns the number of lines View currently uses.
func (m *Model) Height() int {
	return lipgloss.Height(m.View())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }

func (m *Model) Blur() {}

var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

func (m *Model) Expanded() bool { return m.help.Expanded }
