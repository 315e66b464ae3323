// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/toeirei/rideroster/internal/config"
	"github.com/toeirei/rideroster/internal/controller"
	"github.com/toeirei/rideroster/internal/db"
	"github.com/toeirei/rideroster/internal/login"
	"github.com/toeirei/rideroster/internal/remote"
	"github.com/toeirei/rideroster/internal/roster"
	"github.com/toeirei/rideroster/internal/session"
	"github.com/toeirei/rideroster/internal/snapshot"
	"github.com/toeirei/rideroster/internal/tui/views/landing"
)

// errNoDatabase is returned by commands that need the database when the
// configuration does not use one.
var errNoDatabase = errors.New("this command needs session.backend=db or roster.source=db")

// openStore opens the configured database once per command.
func (a *app) openStore() (*db.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	s, err := db.Open(a.cfg.Database.Type, a.cfg.Database.Dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}
	a.store = s
	return s, nil
}

// rosterService builds the RosterService named by roster.source.
func (a *app) rosterService() (controller.RosterService, error) {
	switch a.cfg.Roster.Source {
	case config.SourceFile:
		return snapshot.Source{Path: a.cfg.Roster.File}, nil
	case config.SourceDB:
		return a.openStore()
	default:
		return remote.NewRosterClient(a.cfg.Endpoints.UsersURI, a.cfg.HTTP.Timeout)
	}
}

// remoteRoster always talks to the users endpoint, whatever roster.source says.
func (a *app) remoteRoster() (controller.RosterService, error) {
	return remote.NewRosterClient(a.cfg.Endpoints.UsersURI, a.cfg.HTTP.Timeout)
}

func (a *app) authGateway() (login.AuthGateway, error) {
	return remote.NewAuthClient(a.cfg.Endpoints.LoginURI, a.cfg.HTTP.Timeout)
}

// sessionStore returns the SessionStore named by session.backend and a
// reader for the landing view.
func (a *app) sessionStore(ctx context.Context) (login.SessionStore, landing.Lookup, error) {
	if a.cfg.Session.Backend != config.BackendDB {
		m := session.NewMemory()
		return m, m.Get, nil
	}
	s, err := a.openStore()
	if err != nil {
		return nil, nil, err
	}
	lookup := func(key string) (string, bool) {
		v, err := s.Get(ctx, key)
		return v, err == nil
	}
	return s, lookup, nil
}

// rosterOptions maps the roster policies from the configuration.
func (a *app) rosterOptions() []roster.Option {
	return []roster.Option{
		roster.WithPagePolicy(roster.ParsePagePolicy(a.cfg.Roster.PagePolicy)),
		roster.WithQueryPolicy(roster.ParseQueryPolicy(a.cfg.Roster.QueryPolicy)),
	}
}

// deps builds the controller collaborators, leaving navigation and modals to
// the caller.
func (a *app) deps(ctx context.Context) (controller.Deps, landing.Lookup, error) {
	rs, err := a.rosterService()
	if err != nil {
		return controller.Deps{}, nil, err
	}
	auth, err := a.authGateway()
	if err != nil {
		return controller.Deps{}, nil, err
	}
	store, lookup, err := a.sessionStore(ctx)
	if err != nil {
		return controller.Deps{}, nil, err
	}
	return controller.Deps{
		Roster:      rs,
		Auth:        auth,
		Session:     store,
		LandingPath: a.cfg.LandingPath,
	}, lookup, nil
}
