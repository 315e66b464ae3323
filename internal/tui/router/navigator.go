// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/rideroster/internal/logging"
	"github.com/toeirei/rideroster/internal/tui/util"
)

// Navigator maps location paths to views. ReplaceLocation is called from
// inside an Update, so it only queues the change; Flush returns the queued
// commands for the caller to hand back to Bubble Tea.
type Navigator struct {
	ctl     *Control
	routes  map[string]func() *util.Model
	pending []tea.Cmd
}

// NewNavigator returns a navigator that is not yet bound to a router.
func NewNavigator() *Navigator {
	return &Navigator{routes: map[string]func() *util.Model{}}
}

// Bind directs navigation to the router behind ctl.
func (n *Navigator) Bind(ctl Control) {
	n.ctl = &ctl
}

// Handle registers the view factory for path.
func (n *Navigator) Handle(path string, factory func() *util.Model) {
	n.routes[path] = factory
}

// ReplaceLocation swaps the current view for the one registered at path.
func (n *Navigator) ReplaceLocation(path string) {
	factory, ok := n.routes[path]
	if !ok || n.ctl == nil {
		logging.Warnf("cannot navigate to %q: no view registered or no router bound", path)
		return
	}
	n.pending = append(n.pending, n.ctl.Change(factory()))
}

// Flush returns and clears the queued navigation commands.
func (n *Navigator) Flush() tea.Cmd {
	if len(n.pending) == 0 {
		return nil
	}
	cmds := n.pending
	n.pending = nil
	return tea.Sequence(cmds...)
}
