// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tuitest helps tests drive TUI components without a running
// tea.Program.
package tuitest

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var cmdType = reflect.TypeOf((tea.Cmd)(nil))

// CmdTimeout bounds each command. Commands that take longer, such as cursor
// blink ticks, are dropped.
var CmdTimeout = 100 * time.Millisecond

func run(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(CmdTimeout):
		return nil
	}
}

// Drain runs cmd and feeds every resulting message into update, repeating
// until no commands are left. Batches and sequences are unpacked in order.
// Messages for which skip returns true are dropped; skip may be nil.
func Drain(update func(tea.Msg) tea.Cmd, cmd tea.Cmd, skip func(tea.Msg) bool) {
	if cmd == nil {
		return
	}
	msg := run(cmd)
	if msg == nil {
		return
	}
	if rv := reflect.ValueOf(msg); rv.Kind() == reflect.Slice && rv.Type().Elem() == cmdType {
		for i := range rv.Len() {
			Drain(update, rv.Index(i).Interface().(tea.Cmd), skip)
		}
		return
	}
	if skip != nil && skip(msg) {
		return
	}
	Drain(update, update(msg), skip)
}

// Collect runs cmd and returns the messages it produces, unpacking batches
// and sequences but not feeding anything back.
func Collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := run(cmd)
	if msg == nil {
		return nil
	}
	if rv := reflect.ValueOf(msg); rv.Kind() == reflect.Slice && rv.Type().Elem() == cmdType {
		var out []tea.Msg
		for i := range rv.Len() {
			out = append(out, Collect(rv.Index(i).Interface().(tea.Cmd))...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// Key builds a key press message for s, which is either a single rune or a
// named key such as "enter", "esc", "tab", "up" or "ctrl+c".
func Key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// Type returns one rune key message per character of s.
func Type(s string) []tea.Msg {
	out := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}
