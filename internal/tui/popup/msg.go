// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package popup

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/rideroster/internal/tui/util"
)

type openMsg struct {
	Model   *util.Model
	OnClose func(*util.Model) tea.Cmd
}

// closeMsg closes Model, or the newest popup when Model is nil.
type closeMsg struct {
	Model *util.Model
}

func Open(m *util.Model) tea.Cmd {
	return func() tea.Msg { return openMsg{Model: m} }
}

// OpenWithCallback opens m and runs cb once it is closed.
func OpenWithCallback(m *util.Model, cb func(*util.Model) tea.Cmd) tea.Cmd {
	return func() tea.Msg { return openMsg{Model: m, OnClose: cb} }
}

// Close closes the newest popup.
func Close() tea.Cmd {
	return func() tea.Msg { return closeMsg{} }
}

// CloseModel closes m wherever it sits in the popup stack.
func CloseModel(m *util.Model) tea.Cmd {
	return func() tea.Msg { return closeMsg{Model: m} }
}
