// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/rideroster/internal/controller"
	"github.com/toeirei/rideroster/internal/i18n"
	"github.com/toeirei/rideroster/internal/login"
	"golang.org/x/term"
)

// printNavigator reports navigation on the command line instead of
// switching views.
type printNavigator struct {
	w    io.Writer
	last string
}

func (n *printNavigator) ReplaceLocation(path string) {
	n.last = path
	_, _ = fmt.Fprintln(n.w, i18n.T("cli.navigated", path))
}

func newLoginCmd(a *app) *cobra.Command {
	var user, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in without the TUI",
		Long: `Submits the credentials once, stores the session on success and prints
the outcome. The password is prompted for without echo when omitted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !cmd.Flags().Changed("password") {
				p, err := readPassword(cmd.InOrStdin(), out)
				if err != nil {
					return fmt.Errorf("could not read password: %w", err)
				}
				password = p
			}

			deps, lookup, err := a.deps(cmd.Context())
			if err != nil {
				return err
			}
			deps.Nav = &printNavigator{w: out}
			ctrl := controller.New(deps, a.rosterOptions()...)

			err = ctrl.SubmitLogin(cmd.Context(), user, password)
			state := ctrl.View().Login
			if state.Phase == login.PhaseSucceeded {
				name, _ := lookup(login.SessionKeyName)
				id, _ := lookup(login.SessionKeyUserID)
				_, _ = fmt.Fprintln(out, i18n.T("cli.login_success", name, id))
				return nil
			}
			if msg := failureText(state); msg != "" {
				_, _ = fmt.Fprintln(out, i18n.T("cli.login_failed", msg))
			}
			if err == nil {
				err = fmt.Errorf("login did not complete (phase %s)", state.Phase)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&user, "user", "u", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password; prompted for when omitted")
	return cmd
}

// failureText joins the filled error slots of s.
func failureText(s login.State) string {
	var parts []string
	for _, e := range []string{s.UsernameError, s.PasswordError, s.UserNotFoundError, s.TransportError} {
		if e != "" {
			parts = append(parts, login.Localize(e))
		}
	}
	return strings.Join(parts, "; ")
}

// readPassword reads without echo from a terminal and reads one line
// otherwise, so the password can be piped in.
func readPassword(in io.Reader, out io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(out, i18n.T("cli.password_prompt"))
		b, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(out)
		return string(b), err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
