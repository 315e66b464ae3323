// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root composes the TUI: a header, the router with the popup
// injector on top, and the key help footer. It owns the controller and is
// the only place where asynchronous results are applied to it.
package root

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/rideroster/internal/controller"
	"github.com/toeirei/rideroster/internal/i18n"
	"github.com/toeirei/rideroster/internal/logging"
	"github.com/toeirei/rideroster/internal/login"
	"github.com/toeirei/rideroster/internal/roster"
	"github.com/toeirei/rideroster/internal/tui/appmsg"
	"github.com/toeirei/rideroster/internal/tui/popup"
	"github.com/toeirei/rideroster/internal/tui/router"
	"github.com/toeirei/rideroster/internal/tui/title"
	"github.com/toeirei/rideroster/internal/tui/util"
	"github.com/toeirei/rideroster/internal/tui/views/accounts"
	"github.com/toeirei/rideroster/internal/tui/views/footer"
	"github.com/toeirei/rideroster/internal/tui/views/landing"
	"github.com/toeirei/rideroster/internal/tui/views/loginform"
)

const headerHeight = 1

// Options configure the TUI. Deps.Nav and Deps.Modals are supplied by the
// TUI itself and ignored when set.
type Options struct {
	Deps       controller.Deps
	RosterOpts []roster.Option
	// Lookup reads the session for the landing view.
	Lookup  landing.Lookup
	Version string
}

type Model struct {
	ctx          context.Context
	ctrl         *controller.Controller
	keys         KeyMap
	router       *router.Router
	nav          *router.Navigator
	popups       *popup.Trigger
	injector     *popup.Injector
	footer       *footer.Model
	titleHandler *title.Handler
	size         util.Size
}

func New(ctx context.Context, opts Options) *Model {
	nav := router.NewNavigator()
	popups := popup.NewTrigger()

	deps := opts.Deps
	deps.Nav = nav
	deps.Modals = popups
	if deps.LandingPath == "" {
		deps.LandingPath = login.DefaultLandingPath
	}
	ctrl := controller.New(deps, opts.RosterOpts...)

	rt, ctl := router.New(util.ModelPointer(accounts.New(ctrl)))
	nav.Bind(ctl)
	nav.Handle(deps.LandingPath, func() *util.Model {
		return util.ModelPointer(landing.New(opts.Lookup))
	})
	popups.Register(controller.LoginTemplate, func() *util.Model {
		return util.ModelPointer(loginform.New(ctx, ctrl))
	})

	version := opts.Version
	if version == "" {
		version = "dev"
	}
	keys := BaseKeyMap()
	return &Model{
		ctx:          ctx,
		ctrl:         ctrl,
		keys:         keys,
		router:       rt,
		nav:          nav,
		popups:       popups,
		injector:     popup.NewInjector(util.ModelPointer(rt)),
		footer:       footer.New(keys, i18n.T("app.version", version)),
		titleHandler: title.NewHandler(i18n.T("app.title"), " | "),
	}
}

// Controller returns the controller the views drive.
func (m *Model) Controller() *controller.Controller { return m.ctrl }

func (m *Model) Init() tea.Cmd {
	focusCmd, keyMap := m.injector.Focus()
	return tea.Batch(
		tea.Sequence(
			m.titleHandler.Init(),
			m.injector.Init(),
			focusCmd,
			util.AnnounceKeyMapCmd(keyMap),
		),
		appmsg.FetchRoster(m.ctx, m.ctrl),
	)
}

// Update applies msg and then hands out the navigation and popup commands
// the controller queued while handling it.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, tea.Batch(cmd, tea.Sequence(m.popups.Flush(), m.nav.Flush()))
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return m.resize()
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Exit):
			return tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.footer.ToggleExpanded()
			return m.resize()
		}
	case appmsg.RosterLoadedMsg:
		if msg.Err != nil {
			logging.Errorf("%v", msg.Err)
		} else {
			m.ctrl.LoadRoster(msg.Users)
		}
	case appmsg.LoginResolvedMsg:
		// Errors are already reflected in the login state and logged.
		_ = m.ctrl.ResolveLogin(msg.Attempt, msg.Result, msg.Err)
	case appmsg.BanMsg:
		m.ctrl.BanLogin()
		return nil
	case util.AnnounceKeyMapMsg:
		return m.footer.Update(msg)
	}

	if cmd, ok := m.titleHandler.Handle(msg); ok {
		return cmd
	}
	return m.injector.Update(msg)
}

// resize splits the window between header, body and footer.
func (m *Model) resize() tea.Cmd {
	footerCmd := m.footer.Update(m.size.ToMsg())
	return tea.Batch(footerCmd, m.injector.Update(tea.WindowSizeMsg{
		Width:  m.size.Width,
		Height: m.bodyHeight(),
	}))
}

func (m *Model) bodyHeight() int {
	return max(m.size.Height-headerHeight-m.footer.Height(), 0)
}

func (m *Model) View() string {
	header := util.StatusMessageStyle.Render(i18n.T("app.title"))
	body := m.injector.View()
	if m.size.Height > 0 {
		h := m.bodyHeight()
		body = lipgloss.NewStyle().Height(h).MaxHeight(h).Render(body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.footer.View())
}

var _ tea.Model = (*Model)(nil)
