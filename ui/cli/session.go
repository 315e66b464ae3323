// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/toeirei/rideroster/internal/config"
	"github.com/toeirei/rideroster/internal/db"
	"github.com/toeirei/rideroster/internal/i18n"
)

// persistentSession opens the database session store, or explains on w why
// there is none.
func (a *app) persistentSession(w io.Writer) (*db.Store, error) {
	if a.cfg.Session.Backend != config.BackendDB {
		_, _ = fmt.Fprintln(w, i18n.T("cli.session_requires_db"))
		return nil, errNoDatabase
	}
	return a.openStore()
}

func newSessionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect the stored login session",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the stored session values",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := a.persistentSession(cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				entries, err := store.Entries(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					_, _ = fmt.Fprintln(out, i18n.T("cli.session_empty"))
					return nil
				}
				for _, e := range entries {
					_, _ = fmt.Fprintf(out, "%s=%s\t(%s)\n", e.Key, e.Value, e.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the stored session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := a.persistentSession(cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.session_cleared"))
				return nil
			},
		},
	)
	return cmd
}
