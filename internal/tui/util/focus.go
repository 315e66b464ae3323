// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Focusable components report the key map they respond to when focused.
type Focusable interface {
	Focus() (tea.Cmd, help.KeyMap)
	Blur()
}

// AnnounceKeyMapMsg tells the footer which keys the focused component uses.
type AnnounceKeyMapMsg struct {
	KeyMap help.KeyMap
}

func AnnounceKeyMapCmd(k help.KeyMap) tea.Cmd {
	return func() tea.Msg {
		return AnnounceKeyMapMsg{KeyMap: k}
	}
}

func MergeKeyMaps(keymaps ...help.KeyMap) help.KeyMap {
	return MergedKeyMaps{KeyMaps: keymaps}
}

type MergedKeyMaps struct {
	KeyMaps []help.KeyMap
}

func (m MergedKeyMaps) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, k := range m.KeyMaps {
		if k != nil {
			out = slices.Concat(out, k.ShortHelp())
		}
	}
	return out
}

func (m MergedKeyMaps) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	for _, k := range m.KeyMaps {
		if k != nil {
			out = slices.Concat(out, k.FullHelp())
		}
	}
	return out
}

var _ help.KeyMap = (*MergedKeyMaps)(nil)
