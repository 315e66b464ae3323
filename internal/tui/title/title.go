// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package title keeps the terminal window title in sync with the active view.
package title

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set asks the handler to show title after the base. An empty title shows
// the base alone.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}

type Handler struct {
	Base      string
	Delimiter string
	current   string
}

func NewHandler(base, delimiter string) *Handler {
	return &Handler{Base: base, Delimiter: delimiter}
}

// Title returns the full window title.
func (h *Handler) Title() string {
	if h.current == "" {
		return h.Base
	}
	return h.Base + h.Delimiter + h.current
}

func (h *Handler) Init() tea.Cmd {
	return tea.SetWindowTitle(h.Title())
}

// Handle consumes title messages. It returns nil for any other message and
// when the title did not change.
func (h *Handler) Handle(msg tea.Msg) (tea.Cmd, bool) {
	t, ok := msg.(titleMsg)
	if !ok {
		return nil, false
	}
	if h.current == string(t) {
		return nil, true
	}
	h.current = string(t)
	return tea.SetWindowTitle(h.Title()), true
}
