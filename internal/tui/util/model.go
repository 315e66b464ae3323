// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package util holds the building blocks shared by all TUI components.
package util

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model is a component that updates in place. Unlike tea.Model, Update
// mutates the receiver and only returns a command.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Focusable
}

// ModelPointer boxes v so several owners can share and replace it.
func ModelPointer[T any, PT interface {
	*T
	Model
}](v PT) *Model {
	m := Model(v)
	return &m
}

// BorrowModelFunc calls fn with the concrete model behind m and stores the
// result back.
func BorrowModelFunc[T any, PT interface {
	*T
	Model
}](m *Model, fn func(PT)) {
	t := (*m).(PT)
	fn(t)
	*m = Model(t)
}
