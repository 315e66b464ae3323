// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the interactive account selection screen.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/rideroster/internal/tui/appmsg"
	"github.com/toeirei/rideroster/internal/tui/views/root"
)

// NewProgram returns the program without starting it, so callers can Send
// messages such as Ban from other goroutines.
func NewProgram(ctx context.Context, opts root.Options, progOpts ...tea.ProgramOption) *tea.Program {
	progOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, progOpts...)
	return tea.NewProgram(root.New(ctx, opts), progOpts...)
}

// Ban locks the login flow of a running program.
func Ban(p *tea.Program) {
	p.Send(appmsg.BanMsg{})
}
