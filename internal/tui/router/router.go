// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package router switches between full-screen views. Views are kept on a
// stack: Push adds one, Pop returns to the previous one and Change replaces
// the top without keeping it.
package router

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/rideroster/internal/tui/util"
)

var lastRouterID atomic.Int64

type Router struct {
	id    int
	size  util.Size
	stack []*util.Model
}

// New returns a router showing initial and the Control that drives it.
func New(initial *util.Model) (*Router, Control) {
	id := int(lastRouterID.Add(1))
	return &Router{id: id, stack: []*util.Model{initial}}, Control{rid: id}
}

func (r *Router) Init() tea.Cmd {
	return tea.Batch(
		r.activeModelInit(),
		r.activeModelUpdate(InitMsg{Control: Control{rid: r.id}}),
	)
}

func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch {
	case r.size.Update(msg):
		return r.activeModelUpdate(msg)
	case r.isMsgOwner(msg):
		switch msg := msg.(type) {
		case PushMsg:
			return r.handlePush(msg)
		case PopMsg:
			return r.handlePop(msg)
		case ChangeMsg:
			return r.handleChange(msg)
		}
		return nil
	case IsRouterMsg(msg):
		// Init messages of a parent router stay with the parent.
		if _, ok := msg.(InitMsg); ok {
			return nil
		}
		return r.activeModelUpdate(msg)
	default:
		return r.activeModelUpdate(msg)
	}
}

func (r *Router) View() string {
	return (*r.activeModelGet()).View()
}

func (r *Router) Focus() (tea.Cmd, help.KeyMap) {
	return (*r.activeModelGet()).Focus()
}

func (r *Router) Blur() {
	(*r.activeModelGet()).Blur()
}

// Depth returns the number of views on the stack.
func (r *Router) Depth() int { return len(r.stack) }

// Active returns the view on top of the stack.
func (r *Router) Active() util.Model { return *r.activeModelGet() }

var _ util.Model = (*Router)(nil)

func (r *Router) isMsgOwner(msg tea.Msg) bool {
	rmsg, ok := msg.(Msg)
	return ok && rmsg.routerID() == r.id
}

// IsRouterMsg reports whether msg is addressed to some router.
func IsRouterMsg(msg tea.Msg) bool {
	_, ok := msg.(Msg)
	return ok
}

func (r *Router) handlePush(msg PushMsg) tea.Cmd {
	(*r.activeModelGet()).Blur()
	r.stack = append(r.stack, msg.Model)
	return r.activeModelStart()
}

func (r *Router) handlePop(msg PopMsg) tea.Cmd {
	for range msg.Count {
		if len(r.stack) <= 1 {
			break
		}
		(*r.activeModelPop()).Blur()
	}
	return r.activeModelFocus()
}

func (r *Router) handleChange(msg ChangeMsg) tea.Cmd {
	(*r.activeModelGet()).Blur()
	r.stack[len(r.stack)-1] = msg.Model
	return r.activeModelStart()
}

func (r *Router) activeModelGet() *util.Model {
	return r.stack[len(r.stack)-1]
}

func (r *Router) activeModelPop() *util.Model {
	model := r.activeModelGet()
	r.stack = r.stack[:len(r.stack)-1]
	return model
}

func (r *Router) activeModelUpdate(msg tea.Msg) tea.Cmd {
	return (*r.activeModelGet()).Update(msg)
}

func (r *Router) activeModelInit() tea.Cmd {
	return (*r.activeModelGet()).Init()
}

func (r *Router) activeModelFocus() tea.Cmd {
	cmd, keyMap := (*r.activeModelGet()).Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

// activeModelStart brings a freshly placed view up to date.
func (r *Router) activeModelStart() tea.Cmd {
	return tea.Sequence(
		r.activeModelInit(),
		r.activeModelUpdate(InitMsg{Control: Control{rid: r.id}}),
		r.activeModelUpdate(r.size.ToMsg()),
		r.activeModelFocus(),
	)
}
