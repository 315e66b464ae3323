// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/rideroster/internal/config"
	"github.com/toeirei/rideroster/internal/i18n"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var (
		path   string
		system bool
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to a file",
		Long: `Writes the configuration currently in effect (defaults, files,
environment and flags combined) as YAML, to the user config path unless
--output or --system is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := config.WriteConfigFile(&a.cfg, path, system)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.config_written", written))
			return nil
		},
	}
	initCmd.Flags().StringVarP(&path, "output", "o", "", "Write to this file")
	initCmd.Flags().BoolVar(&system, "system", false, "Write to the system config path")

	cmd.AddCommand(initCmd)
	return cmd
}
