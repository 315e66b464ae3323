// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package loginform

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/rideroster/internal/i18n"
)

type KeyMap struct {
	Submit key.Binding
	Next   key.Binding
	Prev   key.Binding
	Cancel key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Next, k.Cancel}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Cancel}, {k.Next, k.Prev}}
}

var _ help.KeyMap = KeyMap{}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", i18n.T("help.submit"))),
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", i18n.T("help.focus"))),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", i18n.T("help.prev_item"))),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", i18n.T("help.cancel"))),
	}
}
