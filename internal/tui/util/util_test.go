// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestAlignFooter(t *testing.T) {
	if got := AlignFooter("left", "right", 12); got != "left   right" {
		t.Fatalf("unexpected footer %q", got)
	}
	if got := AlignFooter("left", "right", 3); got != "left right" {
		t.Fatalf("narrow width should keep one space, got %q", got)
	}
}

func TestSize_Update(t *testing.T) {
	var s Size
	if s.Update(tea.KeyMsg{}) {
		t.Fatalf("key message is not a size message")
	}
	if !s.Update(tea.WindowSizeMsg{Width: 80, Height: 24}) || s.Width != 80 || s.Height != 24 {
		t.Fatalf("size not recorded: %+v", s)
	}
	if s.ToMsg() != (tea.WindowSizeMsg{Width: 80, Height: 24}) {
		t.Fatalf("ToMsg mismatch")
	}
}

type testKeyMap []key.Binding

func (k testKeyMap) ShortHelp() []key.Binding  { return k }
func (k testKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

var _ help.KeyMap = testKeyMap(nil)

func TestMergeKeyMaps_SkipsNil(t *testing.T) {
	a := testKeyMap{key.NewBinding(key.WithKeys("a"))}
	b := testKeyMap{key.NewBinding(key.WithKeys("b")), key.NewBinding(key.WithKeys("c"))}
	m := MergeKeyMaps(a, nil, b)
	if len(m.ShortHelp()) != 3 || len(m.FullHelp()) != 2 {
		t.Fatalf("unexpected merge: %d short, %d groups", len(m.ShortHelp()), len(m.FullHelp()))
	}
}
