// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package popup

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/rideroster/internal/controller"
	"github.com/toeirei/rideroster/internal/logging"
	"github.com/toeirei/rideroster/internal/tui/util"
)

// Trigger opens popups by template name. Show and Close are called from
// inside an Update, so they only queue commands; Flush returns them.
type Trigger struct {
	templates map[string]func() *util.Model
	pending   []tea.Cmd
}

func NewTrigger() *Trigger {
	return &Trigger{templates: map[string]func() *util.Model{}}
}

// Register sets the factory used for template.
func (t *Trigger) Register(template string, factory func() *util.Model) {
	t.templates[template] = factory
}

// Show queues a new popup for template. Unknown templates yield a handle
// whose Close does nothing.
func (t *Trigger) Show(template string) controller.ModalRef {
	factory, ok := t.templates[template]
	if !ok {
		logging.Warnf("no popup registered for template %q", template)
		return &ref{}
	}
	m := factory()
	t.pending = append(t.pending, Open(m))
	return &ref{trigger: t, model: m}
}

// Flush returns and clears the queued popup commands.
func (t *Trigger) Flush() tea.Cmd {
	if len(t.pending) == 0 {
		return nil
	}
	cmds := t.pending
	t.pending = nil
	return tea.Sequence(cmds...)
}

type ref struct {
	trigger *Trigger
	model   *util.Model
	closed  bool
}

func (r *ref) Close() {
	if r.trigger == nil || r.closed {
		return
	}
	r.closed = true
	r.trigger.pending = append(r.trigger.pending, CloseModel(r.model))
}

var _ controller.ModalTrigger = (*Trigger)(nil)
