// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package appmsg holds the messages views exchange with the root model.
package appmsg

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/rideroster/internal/controller"
	"github.com/toeirei/rideroster/internal/login"
	"github.com/toeirei/rideroster/internal/model"
)

// RosterLoadedMsg carries the result of the initial roster fetch.
type RosterLoadedMsg struct {
	Users []model.User
	Err   error
}

// LoginResolvedMsg carries the server's answer to one login attempt.
type LoginResolvedMsg struct {
	Attempt login.Attempt
	Result  login.Result
	Err     error
}

// Both results concern the views under a popup too.
func (RosterLoadedMsg) Broadcast()  {}
func (LoginResolvedMsg) Broadcast() {}

// BanMsg locks the login flow for the rest of the session.
type BanMsg struct{}

// FetchRoster runs the roster fetch off the event loop. The root model
// hands the users to the controller when the message arrives.
func FetchRoster(ctx context.Context, ctrl *controller.Controller) tea.Cmd {
	return func() tea.Msg {
		users, err := ctrl.FetchRoster(ctx)
		return RosterLoadedMsg{Users: users, Err: err}
	}
}

// Authenticate runs the credential check for a off the event loop.
func Authenticate(ctx context.Context, ctrl *controller.Controller, a login.Attempt) tea.Cmd {
	return func() tea.Msg {
		res, err := ctrl.Authenticate(ctx, a)
		return LoginResolvedMsg{Attempt: a, Result: res, Err: err}
	}
}
