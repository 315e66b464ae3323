// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package accounts

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/rideroster/internal/i18n"
)

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Toggle   key.Binding
	Close    key.Binding
	Login    key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.NextPage, k.PrevPage, k.Toggle, k.Login}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.NextPage, k.PrevPage},
		{k.Toggle, k.Close, k.Login},
	}
}

var _ help.KeyMap = KeyMap{}

// DefaultKeyMap avoids plain letters, which go to the search box.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", i18n.T("help.prev_item"))),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", i18n.T("help.next_item"))),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", i18n.T("help.select"))),
		NextPage: key.NewBinding(key.WithKeys("pgdown", "ctrl+n"), key.WithHelp("pgdn", i18n.T("help.next_page"))),
		PrevPage: key.NewBinding(key.WithKeys("pgup", "ctrl+p"), key.WithHelp("pgup", i18n.T("help.prev_page"))),
		Toggle:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", i18n.T("help.toggle"))),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", i18n.T("help.close_list"))),
		Login:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", i18n.T("help.login"))),
	}
}
