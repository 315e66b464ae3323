// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/toeirei/rideroster/buildvars"
	"github.com/toeirei/rideroster/internal/config"
	"github.com/toeirei/rideroster/internal/db"
	"github.com/toeirei/rideroster/internal/i18n"
	"github.com/toeirei/rideroster/internal/logging"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

const modulePath = "github.com/toeirei/rideroster"

// app carries what the commands share once the configuration is loaded.
type app struct {
	cfg     config.Config
	verbose bool

	logCloser io.Closer
	store     *db.Store
}

// Execute runs the CLI entrypoint. The main package calls it and handles
// process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree. Tests call it once per case.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "rideroster",
		Short: "Rideroster picks a rideshare account and logs in to it.",
		Long: `Rideroster loads the rideshare roster, lets you search and page through
it, and logs in to the account you pick.

Running without a subcommand will launch the interactive TUI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context())
		},
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	defaults := config.Defaults()
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.String("config", "", "config file")
	flags.String("language", defaults["language"].(string), `UI language ("en", "de")`)
	flags.String("log.level", defaults["log.level"].(string), "Log level (debug, info, warn, error)")
	flags.String("log.file", defaults["log.file"].(string), `Log file; "-" discards logs`)
	flags.String("roster.source", defaults["roster.source"].(string), "Roster source (http, file, db)")
	flags.String("roster.file", defaults["roster.file"].(string), "Roster snapshot for roster.source=file")
	flags.String("session.backend", defaults["session.backend"].(string), "Session store (memory, db)")
	flags.String("endpoints.login_uri", defaults["endpoints.login_uri"].(string), "Login endpoint")
	flags.String("endpoints.users_uri", defaults["endpoints.users_uri"].(string), "Users endpoint")
	flags.String("database.type", defaults["database.type"].(string), "Database type (sqlite, postgres, mysql)")
	flags.String("database.dsn", defaults["database.dsn"].(string), "Database connection string (DSN)")

	cmd.AddCommand(
		newUsersCmd(a),
		newLoginCmd(a),
		newSessionCmd(a),
		newConfigCmd(a),
		newDBCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// setup loads the configuration and brings up logging and i18n.
func (a *app) setup(cmd *cobra.Command) error {
	path, err := configPathFromFlags(cmd)
	if err != nil {
		return err
	}
	c, err := config.LoadConfig[config.Config](cmd, config.Defaults(), path)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = c

	closer, err := logging.Setup(c.Log.Level, c.Log.File)
	if err != nil {
		return err
	}
	a.logCloser = closer
	if a.verbose {
		logging.SetDebug(true)
		db.SetDebug(true)
	}
	i18n.Init(c.Language)
	logging.Debugf("configuration loaded: roster from %s, session in %s", c.Roster.Source, c.Session.Backend)
	return nil
}

// close releases the database and the log file.
func (a *app) close() error {
	var errs []error
	if a.store != nil {
		errs = append(errs, a.store.Close())
		a.store = nil
	}
	if a.logCloser != nil {
		errs = append(errs, a.logCloser.Close())
		a.logCloser = nil
	}
	return errors.Join(errs...)
}

func configPathFromFlags(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// A missing explicit file is an error rather than a silent fallback.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		// No configuration needed.
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "version: %s\n", v)
			_, _ = fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				_, _ = fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion(v, c, d string) string {
	out := v
	if c != "" && c != "dev" {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		if resolvedVersion == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}
