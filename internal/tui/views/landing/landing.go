// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package landing is the screen shown after a successful login.
package landing

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/rideroster/internal/i18n"
	"github.com/toeirei/rideroster/internal/logging"
	"github.com/toeirei/rideroster/internal/login"
	"github.com/toeirei/rideroster/internal/tui/title"
	"github.com/toeirei/rideroster/internal/tui/util"
)

// Lookup reads one session value.
type Lookup func(key string) (string, bool)

type KeyMap struct {
	Copy key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Copy} }
func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Copy}} }

type Model struct {
	name   string
	userID string
	keys   KeyMap
	status string
	failed bool

	copyText func(string) error
}

// New reads the logged in identity from the session.
func New(lookup Lookup) *Model {
	name, _ := lookup(login.SessionKeyName)
	userID, _ := lookup(login.SessionKeyUserID)
	return &Model{
		name:   name,
		userID: userID,
		keys: KeyMap{
			Copy: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", i18n.T("help.copy"))),
		},
		copyText: clipboard.WriteAll,
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Copy) {
		if err := m.copyText(m.userID); err != nil {
			logging.Warnf("clipboard: %v", err)
			m.status, m.failed = i18n.T("landing.copy_failed", err), true
		} else {
			m.status, m.failed = i18n.T("landing.copied"), false
		}
	}
	return nil
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(util.TitleStyle.Render(i18n.T("landing.title", map[string]any{"Name": m.name})))
	b.WriteString("\n\n")
	b.WriteString(i18n.T("landing.userid", m.userID))
	if m.status != "" {
		b.WriteString("\n\n")
		if m.failed {
			b.WriteString(util.ErrorStyle.Render(m.status))
		} else {
			b.WriteString(util.SuccessStyle.Render(m.status))
		}
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return title.Set(m.name), m.keys
}

func (m *Model) Blur() {}

var _ util.Model = (*Model)(nil)
