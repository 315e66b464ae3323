// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package loginform is the username and password popup.
package loginform

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/rideroster/internal/controller"
	"github.com/toeirei/rideroster/internal/i18n"
	"github.com/toeirei/rideroster/internal/login"
	"github.com/toeirei/rideroster/internal/tui/appmsg"
	"github.com/toeirei/rideroster/internal/tui/title"
	"github.com/toeirei/rideroster/internal/tui/util"
)

const (
	fieldUsername = iota
	fieldPassword
	fieldCount
)

const inputWidth = 32

type Model struct {
	ctx     context.Context
	ctrl    *controller.Controller
	keys    KeyMap
	inputs  [fieldCount]textinput.Model
	focus   int
	pending *login.Attempt
}

// New returns a form pre-filled with the flow's current username.
func New(ctx context.Context, ctrl *controller.Controller) *Model {
	user := textinput.New()
	user.Prompt = ""
	user.Width = inputWidth
	user.CharLimit = 128
	user.SetValue(ctrl.View().Login.Username)

	pass := textinput.New()
	pass.Prompt = ""
	pass.Width = inputWidth
	pass.CharLimit = 128
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	m := &Model{ctx: ctx, ctrl: ctrl, keys: DefaultKeyMap()}
	m.inputs[fieldUsername] = user
	m.inputs[fieldPassword] = pass
	if user.Value() != "" {
		m.focus = fieldPassword
	}
	return m
}

func (m *Model) Init() tea.Cmd { return textinput.Blink }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case appmsg.LoginResolvedMsg:
		if m.pending != nil && m.pending.Gen == msg.Attempt.Gen {
			m.pending = nil
		}
		return nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Next):
			return m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			return m.moveFocus(-1)
		case key.Matches(msg, m.keys.Cancel):
			m.ctrl.CloseLogin()
			return nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *Model) submit() tea.Cmd {
	a, err := m.ctrl.BeginLogin(m.inputs[fieldUsername].Value(), m.inputs[fieldPassword].Value())
	if err != nil {
		// The flow holds the validation result; View shows it.
		m.pending = nil
		return nil
	}
	m.pending = &a
	return appmsg.Authenticate(m.ctx, m.ctrl, a)
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	return m.inputs[m.focus].Focus()
}

// Submitting reports whether an attempt is waiting for the server.
func (m *Model) Submitting() bool { return m.pending != nil }

func (m *Model) View() string {
	s := m.ctrl.View().Login
	var b strings.Builder
	b.WriteString(util.TitleStyle.Render(i18n.T("login.title")))
	b.WriteString("\n\n")

	if s.IsBanned {
		b.WriteString(util.ErrorStyle.Render(i18n.T("login.banned")))
		return b.String()
	}

	m.field(&b, fieldUsername, i18n.T("login.username"), s.UsernameError, s.UserNotFoundError)
	m.field(&b, fieldPassword, i18n.T("login.password"), s.PasswordError)

	if s.TransportError != "" {
		b.WriteString(util.ErrorStyle.Render(login.Localize(s.TransportError)))
		b.WriteString("\n")
	}
	if m.pending != nil {
		b.WriteString(util.HelpStyle.Render(i18n.T("login.submitting")))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) field(b *strings.Builder, idx int, label string, errs ...string) {
	if idx == m.focus {
		label = util.FocusedLabelStyle.Render(label)
	}
	b.WriteString(label)
	b.WriteString("\n")
	b.WriteString(m.inputs[idx].View())
	b.WriteString("\n")
	for _, e := range errs {
		if e != "" {
			b.WriteString(util.ErrorStyle.Render(login.Localize(e)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return tea.Batch(m.inputs[m.focus].Focus(), title.Set(i18n.T("login.title"))), m.keys
}

func (m *Model) Blur() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

var _ util.Model = (*Model)(nil)
