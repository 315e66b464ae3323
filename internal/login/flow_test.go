// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package login

import (
	"context"
	"errors"
	"testing"
)

type fakeSession struct {
	values map[string]string
	err    error
}

func (s *fakeSession) Set(key, value string) error {
	if s.err != nil {
		return s.err
	}
	if s.values == nil {
		s.values = map[string]string{}
	}
	s.values[key] = value
	return nil
}

type fakeNav struct{ paths []string }

func (n *fakeNav) ReplaceLocation(path string) { n.paths = append(n.paths, path) }

type fakeGateway struct {
	calls     int
	requestID string
	res       Result
	err       error
}

func (g *fakeGateway) CheckCredentials(ctx context.Context, _, _ string) (Result, error) {
	g.calls++
	g.requestID = RequestIDFrom(ctx)
	return g.res, g.err
}

func newTestFlow() (*Flow, *fakeSession, *fakeNav) {
	s, n := &fakeSession{}, &fakeNav{}
	return NewFlow(s, n, ""), s, n
}

func TestSubmit_EmptyUsername(t *testing.T) {
	f, s, n := newTestFlow()
	gw := &fakeGateway{}

	err := f.Submit(context.Background(), gw, "", "secret")
	if !errors.Is(err, ErrUsernameRequired) {
		t.Fatalf("expected ErrUsernameRequired, got %v", err)
	}
	if gw.calls != 0 {
		t.Fatalf("gateway must not be called, got %d calls", gw.calls)
	}
	st := f.State()
	if st.UsernameError != MsgUsernameRequired {
		t.Fatalf("unexpected username error %q", st.UsernameError)
	}
	if st.Phase != PhaseIdle || len(s.values) != 0 || len(n.paths) != 0 {
		t.Fatalf("unexpected side effects: %+v %v %v", st, s.values, n.paths)
	}
}

func TestSubmit_Success(t *testing.T) {
	f, s, n := newTestFlow()
	gw := &fakeGateway{res: Result{Name: StrPtr("Ada"), UserID: NewID("42")}}

	if err := f.Submit(context.Background(), gw, "ada", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.values[SessionKeyName] != "Ada" || s.values[SessionKeyUserID] != "42" {
		t.Fatalf("session not stored: %v", s.values)
	}
	if len(n.paths) != 1 || n.paths[0] != DefaultLandingPath {
		t.Fatalf("expected one navigation to landing, got %v", n.paths)
	}
	st := f.State()
	if st.Phase != PhaseSucceeded || st.PasswordError != "" || st.UserNotFoundError != "" || st.TransportError != "" {
		t.Fatalf("unexpected state: %+v", st)
	}
}

func TestSubmit_UserNotFound(t *testing.T) {
	f, s, n := newTestFlow()
	gw := &fakeGateway{res: Result{UserNotFound: []string{"No such user"}}}

	err := f.Submit(context.Background(), gw, "ghost", "pw")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	st := f.State()
	if st.UserNotFoundError != "No such user" || st.Phase != PhaseFailed || !st.Kind.Has(KindNotFound) {
		t.Fatalf("unexpected state: %+v", st)
	}
	if len(s.values) != 0 || len(n.paths) != 0 {
		t.Fatalf("no session or navigation expected")
	}
}

func TestSubmit_TransportFailure(t *testing.T) {
	f, s, n := newTestFlow()
	boom := errors.New("connection refused")
	gw := &fakeGateway{err: boom}

	err := f.Submit(context.Background(), gw, "ada", "pw")
	if !errors.Is(err, ErrTransport) || !errors.Is(err, boom) {
		t.Fatalf("expected transport error wrapping cause, got %v", err)
	}
	st := f.State()
	if st.TransportError != MsgTransport || !st.Kind.Has(KindTransport) || st.Phase != PhaseFailed {
		t.Fatalf("unexpected state: %+v", st)
	}
	if len(s.values) != 0 || len(n.paths) != 0 {
		t.Fatalf("no session or navigation expected")
	}
}

func TestResolve_PasswordMessageSources(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want string
	}{
		{"password field wins", Result{PassWord: []string{"bad"}, PwdError: []string{"Wrong password"}}, "bad"},
		{"pwdError when password field empty", Result{PassWord: []string{}, PwdError: []string{"Wrong password"}}, "Wrong password"},
		{"password field", Result{PassWord: []string{"Password incorrect"}}, "Password incorrect"},
		{"empty list still present", Result{PassWord: []string{}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _, _ := newTestFlow()
			err := f.Submit(context.Background(), &fakeGateway{res: tt.res}, "ada", "pw")
			if !errors.Is(err, ErrPasswordRejected) {
				t.Fatalf("expected ErrPasswordRejected, got %v", err)
			}
			st := f.State()
			if st.PasswordError != tt.want || !st.Kind.Has(KindPassword) || st.Phase != PhaseFailed {
				t.Fatalf("unexpected state: %+v", st)
			}
		})
	}
}

func TestResolve_ChecksAreIndependent(t *testing.T) {
	f, s, n := newTestFlow()
	res := Result{
		PassWord:     []string{"expired"},
		UserNotFound: []string{"gone"},
		Name:         StrPtr("Ada"),
		UserID:       NewID("7"),
	}
	err := f.Submit(context.Background(), &fakeGateway{res: res}, "ada", "pw")
	if !errors.Is(err, ErrPasswordRejected) || !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected both sentinels, got %v", err)
	}
	st := f.State()
	if st.PasswordError != "expired" || st.UserNotFoundError != "gone" {
		t.Fatalf("error slots not set: %+v", st)
	}
	if st.Phase != PhaseSucceeded || s.values[SessionKeyUserID] != "7" || len(n.paths) != 1 {
		t.Fatalf("session should still be established: %+v %v %v", st, s.values, n.paths)
	}
}

func TestResolve_EmptyResultIsIdle(t *testing.T) {
	f, _, n := newTestFlow()
	if err := f.Submit(context.Background(), &fakeGateway{}, "ada", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.State().Phase != PhaseIdle || len(n.paths) != 0 {
		t.Fatalf("unexpected state: %+v", f.State())
	}
}

func TestResolve_SessionStoreFailure(t *testing.T) {
	s, n := &fakeSession{err: errors.New("disk full")}, &fakeNav{}
	f := NewFlow(s, n, "home")
	res := Result{Name: StrPtr("Ada"), UserID: NewID("1")}

	err := f.Submit(context.Background(), &fakeGateway{res: res}, "ada", "pw")
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if len(n.paths) != 0 {
		t.Fatalf("must not navigate without a session, got %v", n.paths)
	}
	if st := f.State(); st.TransportError != MsgTransport || st.Phase != PhaseFailed {
		t.Fatalf("unexpected state: %+v", st)
	}
}

func TestBegin_ClearsPreviousErrors(t *testing.T) {
	f, _, _ := newTestFlow()
	_ = f.Submit(context.Background(), &fakeGateway{err: errors.New("x")}, "ada", "pw")
	if f.State().TransportError == "" {
		t.Fatalf("setup: expected transport error")
	}
	if _, err := f.Begin("ada", "pw"); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	st := f.State()
	if st.TransportError != "" || st.Kind != 0 || st.Phase != PhaseSubmitting {
		t.Fatalf("errors not cleared: %+v", st)
	}
}

func TestResolve_StaleAttemptIgnored(t *testing.T) {
	f, s, n := newTestFlow()
	first, err := f.Begin("ada", "pw")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	second, err := f.Begin("alan", "pw2")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if first.RequestID == second.RequestID {
		t.Fatalf("request ids must differ")
	}

	ok := Result{Name: StrPtr("Ada"), UserID: NewID("1")}
	if err := f.Resolve(first, ok, nil); !errors.Is(err, ErrStaleAttempt) {
		t.Fatalf("expected ErrStaleAttempt, got %v", err)
	}
	if len(s.values) != 0 || len(n.paths) != 0 || f.State().Phase != PhaseSubmitting {
		t.Fatalf("stale response changed state")
	}

	if err := f.Resolve(second, Result{UserNotFound: []string{"nope"}}, nil); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("latest attempt should resolve, got %v", err)
	}
	// A resolved attempt cannot resolve twice.
	if err := f.Resolve(second, ok, nil); !errors.Is(err, ErrStaleAttempt) {
		t.Fatalf("expected ErrStaleAttempt on replay, got %v", err)
	}
	if err := f.Resolve(Attempt{}, ok, nil); !errors.Is(err, ErrStaleAttempt) {
		t.Fatalf("zero attempt must be stale, got %v", err)
	}
}

func TestBan_LocksOut(t *testing.T) {
	f, s, n := newTestFlow()
	inflight, err := f.Begin("ada", "pw")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	f.Ban()
	st := f.State()
	if !st.IsBanned || st.Username != "" {
		t.Fatalf("ban did not apply: %+v", st)
	}

	if err := f.Resolve(inflight, Result{Name: StrPtr("Ada"), UserID: NewID("1")}, nil); !errors.Is(err, ErrStaleAttempt) {
		t.Fatalf("in-flight response must be dropped after ban, got %v", err)
	}
	gw := &fakeGateway{}
	if err := f.Submit(context.Background(), gw, "ada", "pw"); !errors.Is(err, ErrBanned) {
		t.Fatalf("expected ErrBanned, got %v", err)
	}
	f.SetUsername("ada")
	if gw.calls != 0 || len(s.values) != 0 || len(n.paths) != 0 || f.State().Username != "" {
		t.Fatalf("banned flow must stay inert")
	}
}

func TestPhaseString(t *testing.T) {
	for p, want := range map[Phase]string{
		PhaseIdle: "idle", PhaseValidating: "validating", PhaseSubmitting: "submitting",
		PhaseSucceeded: "succeeded", PhaseFailed: "failed",
	} {
		if p.String() != want {
			t.Fatalf("Phase(%d).String() = %q, want %q", p, p.String(), want)
		}
	}
}
