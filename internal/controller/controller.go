// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// package controller is the account selection screen without its
// presentation: the roster cache, the search dropdown, the pager and the
// login flow, wired to their collaborators. Both the TUI and the headless
// CLI commands drive it.
package controller

import (
	"context"
	"fmt"

	"github.com/toeirei/rideroster/internal/logging"
	"github.com/toeirei/rideroster/internal/login"
	"github.com/toeirei/rideroster/internal/model"
	"github.com/toeirei/rideroster/internal/roster"
)

// LoginTemplate names the login form for ModalTrigger.Show.
const LoginTemplate = "login"

// RosterService provides the full user list.
type RosterService interface {
	FetchAll(ctx context.Context) ([]model.User, error)
}

// ModalRef is a handle to an open modal.
type ModalRef interface {
	Close()
}

// ModalTrigger opens a modal showing the named template.
type ModalTrigger interface {
	Show(template string) ModalRef
}

// Deps are the collaborators of a Controller.
type Deps struct {
	Roster      RosterService
	Auth        login.AuthGateway
	Session     login.SessionStore
	Nav         login.Navigator
	Modals      ModalTrigger
	LandingPath string
}

// SearchState is the state of the search box and its dropdown.
type SearchState struct {
	Query    string
	IsOpen   bool
	Selected *model.User
}

// View is a snapshot of everything the screen shows.
type View struct {
	Roster    roster.State
	Search    SearchState
	Login     login.State
	LoginOpen bool
}

// Controller is not safe for concurrent use; drive it from one goroutine.
type Controller struct {
	deps   Deps
	cache  *roster.Cache
	flow   *login.Flow
	search SearchState
	modal  ModalRef
}

// New builds a controller. opts configure the roster cache.
func New(deps Deps, opts ...roster.Option) *Controller {
	return &Controller{
		deps:  deps,
		cache: roster.New(opts...),
		flow:  login.NewFlow(deps.Session, deps.Nav, deps.LandingPath),
	}
}

// Init fetches the roster once and shows its first page. On error the
// roster stays empty.
func (c *Controller) Init(ctx context.Context) error {
	users, err := c.FetchRoster(ctx)
	if err != nil {
		return err
	}
	c.LoadRoster(users)
	return nil
}

// FetchRoster asks the roster service for every user. It touches no
// controller state and may run off the event loop.
func (c *Controller) FetchRoster(ctx context.Context) ([]model.User, error) {
	users, err := c.deps.Roster.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}
	return users, nil
}

// LoadRoster replaces the cached roster and shows its first page.
func (c *Controller) LoadRoster(users []model.User) {
	c.cache.Load(users)
	logging.Debugf("roster loaded: %d users, %d pages", len(users), c.cache.TotalPages())
}

// SelectUser picks u from the dropdown.
func (c *Controller) SelectUser(u model.User) {
	c.search.IsOpen = false
	c.cache.ShowAll()
	c.search.Query = u.DisplayLabel()
	c.search.Selected = &u
	if u.UserName != "" {
		c.flow.SetUsername(u.UserName)
	}
}

// EditQuery opens the dropdown and filters the roster by q.
func (c *Controller) EditQuery(q string) {
	c.search.IsOpen = true
	c.search.Query = q
	c.cache.Search(q)
}

// ToggleDropDown opens or closes the dropdown.
func (c *Controller) ToggleDropDown() {
	c.search.IsOpen = !c.search.IsOpen
}

// NextPage moves the roster one page forward.
func (c *Controller) NextPage() { c.cache.Next() }

// PrevPage moves the roster one page back.
func (c *Controller) PrevPage() { c.cache.Prev() }

// OpenLogin shows the login form. A form that is already open is replaced.
func (c *Controller) OpenLogin(template string) ModalRef {
	c.CloseLogin()
	c.modal = c.deps.Modals.Show(template)
	return c.modal
}

// CloseLogin closes the login form if it is open.
func (c *Controller) CloseLogin() {
	if c.modal != nil {
		c.modal.Close()
		c.modal = nil
	}
}

// BeginLogin validates the form and starts an attempt.
func (c *Controller) BeginLogin(username, password string) (login.Attempt, error) {
	return c.flow.Begin(username, password)
}

// Authenticate sends attempt a to the gateway. It touches no controller
// state and may run off the event loop.
func (c *Controller) Authenticate(ctx context.Context, a login.Attempt) (login.Result, error) {
	return a.Check(ctx, c.deps.Auth)
}

// ResolveLogin applies the answer to attempt a.
func (c *Controller) ResolveLogin(a login.Attempt, res login.Result, err error) error {
	err = c.flow.Resolve(a, res, err)
	c.afterLogin()
	return err
}

// SubmitLogin runs a whole attempt synchronously.
func (c *Controller) SubmitLogin(ctx context.Context, username, password string) error {
	err := c.flow.Submit(ctx, c.deps.Auth, username, password)
	c.afterLogin()
	return err
}

func (c *Controller) afterLogin() {
	if c.flow.State().Phase == login.PhaseSucceeded {
		c.CloseLogin()
	}
}

// BanLogin locks the login flow for the rest of the session.
func (c *Controller) BanLogin() { c.flow.Ban() }

// View returns a snapshot of the screen state.
func (c *Controller) View() View {
	s := c.search
	if s.Selected != nil {
		u := *s.Selected
		s.Selected = &u
	}
	return View{
		Roster:    c.cache.State(),
		Search:    s,
		Login:     c.flow.State(),
		LoginOpen: c.modal != nil,
	}
}
