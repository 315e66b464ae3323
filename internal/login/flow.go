// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// package login implements the credential submission state machine: it
// validates the form, hands the credentials to an AuthGateway and turns the
// server's answer into error slots, a stored session and a navigation.
package login

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/toeirei/rideroster/internal/logging"
)

// Session keys written on a successful login.
const (
	SessionKeyName   = "name"
	SessionKeyUserID = "userid"
)

// DefaultLandingPath is where a successful login navigates to.
const DefaultLandingPath = "landingPage"

// AuthGateway checks credentials against the server.
type AuthGateway interface {
	CheckCredentials(ctx context.Context, username, password string) (Result, error)
}

// SessionStore keeps the identity of the logged in user.
type SessionStore interface {
	Set(key, value string) error
}

// Navigator replaces the current location without keeping a history entry.
type Navigator interface {
	ReplaceLocation(path string)
}

// Phase is the position of the flow in its state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseValidating:
		return "validating"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	}
	return "idle"
}

// Kind is a set of failure reasons. The checks on a result are independent,
// so one response can carry more than one.
type Kind uint8

const (
	KindPassword Kind = 1 << iota
	KindNotFound
	KindTransport
)

// Has reports whether k contains other.
func (k Kind) Has(other Kind) bool { return k&other != 0 }

// State is the form and outcome state. Empty error strings are absent slots.
type State struct {
	Username          string
	Password          string
	UsernameError     string
	PasswordError     string
	UserNotFoundError string
	TransportError    string
	IsBanned          bool

	Phase Phase
	Kind  Kind
}

// Attempt identifies one submission. Only the latest attempt may resolve.
type Attempt struct {
	Gen       uint64
	RequestID string
	Username  string
	Password  string
}

// Flow is the login state machine. It is not safe for concurrent use.
type Flow struct {
	state   State
	gen     uint64
	session SessionStore
	nav     Navigator
	landing string
}

// NewFlow returns an idle flow. An empty landing path uses DefaultLandingPath.
func NewFlow(session SessionStore, nav Navigator, landing string) *Flow {
	if landing == "" {
		landing = DefaultLandingPath
	}
	return &Flow{session: session, nav: nav, landing: landing}
}

// State returns a copy of the current state.
func (f *Flow) State() State { return f.state }

// SetUsername pre-fills the username field.
func (f *Flow) SetUsername(u string) {
	if !f.state.IsBanned {
		f.state.Username = u
	}
}

// Begin clears the previous outcome, validates the form and, if it passes,
// returns the token the response must be resolved with. Any attempt still in
// flight is superseded.
func (f *Flow) Begin(username, password string) (Attempt, error) {
	if f.state.IsBanned {
		return Attempt{}, ErrBanned
	}
	f.gen++
	f.state = State{Username: username, Password: password, Phase: PhaseValidating}

	if username == "" {
		f.state.UsernameError = MsgUsernameRequired
		f.state.Phase = PhaseIdle
		return Attempt{}, ErrUsernameRequired
	}
	if err := validatePassword(password); err != nil {
		f.state.PasswordError = err.Error()
		f.state.Phase = PhaseIdle
		return Attempt{}, err
	}

	f.state.Phase = PhaseSubmitting
	a := Attempt{Gen: f.gen, RequestID: uuid.NewString(), Username: username, Password: password}
	logging.Debugf("login attempt %s for %q", a.RequestID, username)
	return a, nil
}

// validatePassword is the hook for client-side password rules. There are none.
func validatePassword(string) error { return nil }

// Resolve applies the gateway's answer to attempt a. Stale attempts change
// nothing. The returned error joins one sentinel per failed check.
func (f *Flow) Resolve(a Attempt, res Result, err error) error {
	if a.Gen == 0 || a.Gen != f.gen || f.state.Phase != PhaseSubmitting {
		logging.Debugf("dropping response for stale login attempt %s", a.RequestID)
		return ErrStaleAttempt
	}

	if err != nil {
		logging.Warnf("login attempt %s failed: %v", a.RequestID, err)
		f.state.TransportError = MsgTransport
		f.state.Kind = KindTransport
		f.state.Phase = PhaseFailed
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	var (
		errs      []error
		succeeded bool
	)
	if res.PasswordRejected() {
		f.state.PasswordError = res.PasswordMessage()
		f.state.Kind |= KindPassword
		errs = append(errs, ErrPasswordRejected)
	}
	if res.Authenticated() {
		if err := f.establish(*res.Name, res.UserID.String()); err != nil {
			logging.Errorf("could not store session for attempt %s: %v", a.RequestID, err)
			f.state.TransportError = MsgTransport
			f.state.Kind |= KindTransport
			errs = append(errs, fmt.Errorf("%w: store session: %w", ErrTransport, err))
		} else {
			succeeded = true
		}
	}
	if res.NotFound() {
		f.state.UserNotFoundError = first(res.UserNotFound)
		f.state.Kind |= KindNotFound
		errs = append(errs, ErrAccountNotFound)
	}

	switch {
	case succeeded:
		f.state.Phase = PhaseSucceeded
		logging.Infof("login attempt %s succeeded for %q", a.RequestID, a.Username)
	case f.state.Kind != 0:
		f.state.Phase = PhaseFailed
	default:
		logging.Warnf("login attempt %s: response carried no recognised fields", a.RequestID)
		f.state.Phase = PhaseIdle
	}
	return errors.Join(errs...)
}

func (f *Flow) establish(name, userID string) error {
	if err := f.session.Set(SessionKeyName, name); err != nil {
		return err
	}
	if err := f.session.Set(SessionKeyUserID, userID); err != nil {
		return err
	}
	f.nav.ReplaceLocation(f.landing)
	return nil
}

// Submit runs a whole attempt synchronously.
func (f *Flow) Submit(ctx context.Context, gw AuthGateway, username, password string) error {
	a, err := f.Begin(username, password)
	if err != nil {
		return err
	}
	res, err := a.Check(ctx, gw)
	return f.Resolve(a, res, err)
}

// Ban locks the flow. Every later Begin fails with ErrBanned and a response
// still in flight is dropped.
func (f *Flow) Ban() {
	f.gen++
	f.state.Username = ""
	f.state.IsBanned = true
	f.state.Phase = PhaseIdle
	logging.Warnf("login banned")
}
