// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package root

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/rideroster/internal/i18n"
)

// KeyMap holds the keys that work on every screen.
type KeyMap struct {
	Exit key.Binding
	Help key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Exit, km.Help}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Help, km.Exit}}
}

var _ help.KeyMap = KeyMap{}

// BaseKeyMap uses f1 for help since "?" belongs to the text inputs.
func BaseKeyMap() KeyMap {
	return KeyMap{
		Exit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", i18n.T("help.quit"))),
		Help: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", i18n.T("help.more"))),
	}
}
