// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/toeirei/rideroster/internal/controller"
	"github.com/toeirei/rideroster/internal/i18n"
	"github.com/toeirei/rideroster/internal/model"
	"github.com/toeirei/rideroster/internal/snapshot"
)

func newUsersCmd(a *app) *cobra.Command {
	var (
		query string
		page  int
	)
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Print one page of the roster",
		Long: `Loads the roster from the configured source and prints one page of it,
optionally narrowed by the same search the TUI uses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := a.rosterService()
			if err != nil {
				return err
			}
			ctrl := controller.New(controller.Deps{Roster: rs}, a.rosterOptions()...)
			if err := ctrl.Init(cmd.Context()); err != nil {
				return err
			}
			if query != "" {
				ctrl.EditQuery(query)
			}
			for range page - 1 {
				ctrl.NextPage()
			}
			printPage(cmd.OutOrStdout(), ctrl.View())
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Search the roster")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page to print (1-based)")

	cmd.AddCommand(newUsersExportCmd(a), newUsersImportCmd(a))
	return cmd
}

func printPage(w io.Writer, v controller.View) {
	if len(v.Roster.VisibleUsers) == 0 {
		_, _ = fmt.Fprintln(w, i18n.T("cli.no_users"))
	} else {
		_, _ = fmt.Fprintln(w, renderUsers(v.Roster.VisibleUsers))
	}
	if v.Roster.Filtering {
		_, _ = fmt.Fprintln(w, i18n.T("roster.page", v.Roster.CurrentPage, v.Roster.TotalPages))
		return
	}
	_, _ = fmt.Fprintln(w, i18n.T("cli.users_page", v.Roster.CurrentPage, v.Roster.TotalPages, len(v.Roster.AllUsers)))
}

// renderUsers draws users as a plain, unfocused table.
func renderUsers(users []model.User) string {
	rows := make([]table.Row, len(users))
	for i, u := range users {
		rows[i] = table.Row{strconv.Itoa(u.ID), u.FullName(), u.RoleLabel(), u.UserName}
	}
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 6},
			{Title: i18n.T("roster.column_name"), Width: 32},
			{Title: i18n.T("roster.column_role"), Width: 8},
			{Title: i18n.T("login.username"), Width: 16},
		}),
		table.WithRows(rows),
		table.WithStyles(styles),
		table.WithHeight(len(rows)+1),
	)
	return t.View()
}

func newUsersExportCmd(a *app) *cobra.Command {
	var fromRemote bool
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the roster to a snapshot file",
		Long: `Writes the roster as a JSON snapshot. File names ending in .zst are
zstd compressed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := a.rosterService()
			if fromRemote {
				rs, err = a.remoteRoster()
			}
			if err != nil {
				return err
			}
			users, err := rs.FetchAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch roster: %w", err)
			}
			if err := snapshot.WriteFile(args[0], users); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.export_success", len(users), args[0]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromRemote, "from-remote", false, "Read from the users endpoint regardless of roster.source")
	return cmd
}

func newUsersImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the database roster with a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := snapshot.ReadFile(args[0])
			if err != nil {
				return err
			}
			store, err := a.openStore()
			if err != nil {
				return err
			}
			if err := store.ReplaceAll(cmd.Context(), snap.Users); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.import_success", len(snap.Users), args[0]))
			return nil
		},
	}
}
