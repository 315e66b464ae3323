// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package accounts is the account selection view: a search box over the
// roster with a paged dropdown of matching users.
package accounts

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/rideroster/internal/controller"
	"github.com/toeirei/rideroster/internal/i18n"
	"github.com/toeirei/rideroster/internal/model"
	"github.com/toeirei/rideroster/internal/tui/appmsg"
	"github.com/toeirei/rideroster/internal/tui/title"
	"github.com/toeirei/rideroster/internal/tui/util"
)

const (
	nameColumnWidth = 32
	roleColumnWidth = 8
)

type Model struct {
	ctrl    *controller.Controller
	keys    KeyMap
	input   textinput.Model
	table   table.Model
	size    util.Size
	loading bool
	loadErr error
}

func New(ctrl *controller.Controller) *Model {
	in := textinput.New()
	in.Placeholder = i18n.T("roster.search_placeholder")
	in.Prompt = "> "
	in.CharLimit = 64

	styles := table.DefaultStyles()
	styles.Selected = styles.Selected.Foreground(util.ColorHighlight).Bold(true)
	styles.Header = styles.Header.Foreground(util.ColorSubtle)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: i18n.T("roster.column_name"), Width: nameColumnWidth},
			{Title: i18n.T("roster.column_role"), Width: roleColumnWidth},
		}),
		table.WithStyles(styles),
	)

	m := &Model{
		ctrl:    ctrl,
		keys:    DefaultKeyMap(),
		input:   in,
		table:   t,
		loading: true,
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd { return textinput.Blink }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.input.Width = max(m.size.Width-lipgloss.Width(m.input.Prompt)-6, 10)
		return nil
	}

	switch msg := msg.(type) {
	case appmsg.RosterLoadedMsg:
		m.loading = false
		m.loadErr = msg.Err
		m.refresh()
		m.table.SetCursor(0)
		return nil
	case appmsg.LoginResolvedMsg:
		m.refresh()
		return nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
	case key.Matches(msg, m.keys.Select):
		m.selectCurrent()
	case key.Matches(msg, m.keys.NextPage):
		m.ctrl.NextPage()
		m.refresh()
		m.table.SetCursor(0)
	case key.Matches(msg, m.keys.PrevPage):
		m.ctrl.PrevPage()
		m.refresh()
		m.table.SetCursor(0)
	case key.Matches(msg, m.keys.Toggle):
		m.ctrl.ToggleDropDown()
	case key.Matches(msg, m.keys.Close):
		if m.ctrl.View().Search.IsOpen {
			m.ctrl.ToggleDropDown()
		}
	case key.Matches(msg, m.keys.Login):
		m.ctrl.OpenLogin(controller.LoginTemplate)
	default:
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if after := m.input.Value(); after != before {
			m.ctrl.EditQuery(after)
			m.refresh()
			m.table.SetCursor(0)
		}
		return cmd
	}
	return nil
}

// selectCurrent picks the highlighted user and opens the login form.
func (m *Model) selectCurrent() {
	v := m.ctrl.View()
	if !v.Search.IsOpen {
		return
	}
	visible := v.Roster.VisibleUsers
	cur := m.table.Cursor()
	if cur < 0 || cur >= len(visible) {
		return
	}
	m.ctrl.SelectUser(visible[cur])
	m.input.SetValue(m.ctrl.View().Search.Query)
	m.input.CursorEnd()
	m.refresh()
	m.ctrl.OpenLogin(controller.LoginTemplate)
}

// refresh copies the visible page from the controller into the table.
func (m *Model) refresh() {
	v := m.ctrl.View()
	rows := make([]table.Row, len(v.Roster.VisibleUsers))
	for i, u := range v.Roster.VisibleUsers {
		rows[i] = table.Row{u.FullName(), u.RoleLabel()}
	}
	m.table.SetRows(rows)
	m.table.SetHeight(max(v.Roster.PageSize, 1) + 1)
	// The table leaves the cursor at -1 while it has no rows.
	if c := m.table.Cursor(); len(rows) > 0 && (c < 0 || c >= len(rows)) {
		m.table.SetCursor(max(0, min(c, len(rows)-1)))
	}
}

func (m *Model) View() string {
	v := m.ctrl.View()
	var b strings.Builder
	b.WriteString(util.TitleStyle.Render(i18n.T("roster.title")))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(util.HelpStyle.Render(i18n.T("roster.loading")))
	case m.loadErr != nil:
		b.WriteString(util.ErrorStyle.Render(i18n.T("roster.load_error", m.loadErr)))
	case v.Search.IsOpen && len(v.Roster.VisibleUsers) == 0:
		b.WriteString(util.HelpStyle.Render(i18n.T("roster.empty")))
	case v.Search.IsOpen:
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(util.HelpStyle.Render(i18n.T("roster.page", v.Roster.CurrentPage, v.Roster.TotalPages)))
	case v.Search.Selected != nil:
		b.WriteString(i18n.T("roster.selected", v.Search.Selected.FullName()))
		b.WriteString(" ")
		b.WriteString(badge(*v.Search.Selected))
	default:
		b.WriteString(util.HelpStyle.Render(i18n.T("roster.none_selected")))
	}

	if v.Login.IsBanned {
		b.WriteString("\n\n")
		b.WriteString(util.ErrorStyle.Render(i18n.T("login.banned")))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func badge(u model.User) string {
	if u.IsDriver {
		return util.DriverBadgeStyle.Render(u.RoleLabel())
	}
	return util.RiderBadgeStyle.Render(u.RoleLabel())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.table.Focus()
	return tea.Batch(m.input.Focus(), title.Set(i18n.T("roster.title"))), m.keys
}

func (m *Model) Blur() {
	m.input.Blur()
	m.table.Blur()
}

var _ util.Model = (*Model)(nil)
