// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/rideroster/internal/tui/util"
)

// InitMsg hands a freshly placed view the Control of its router.
type InitMsg struct {
	Control Control
}

type PushMsg struct {
	rid   int
	Model *util.Model
}

type PopMsg struct {
	rid   int
	Count int
}

type ChangeMsg struct {
	rid   int
	Model *util.Model
}

// Msg is implemented by every message addressed to a router.
type Msg interface {
	routerID() int
}

func (m InitMsg) routerID() int   { return m.Control.rid }
func (m PushMsg) routerID() int   { return m.rid }
func (m PopMsg) routerID() int    { return m.rid }
func (m ChangeMsg) routerID() int { return m.rid }

// Control issues commands to one router.
type Control struct {
	rid int
}

func (c Control) Push(m *util.Model) tea.Cmd {
	return func() tea.Msg { return PushMsg{rid: c.rid, Model: m} }
}

func (c Control) Pop(count int) tea.Cmd {
	return func() tea.Msg { return PopMsg{rid: c.rid, Count: count} }
}

func (c Control) Change(m *util.Model) tea.Cmd {
	return func() tea.Msg { return ChangeMsg{rid: c.rid, Model: m} }
}
