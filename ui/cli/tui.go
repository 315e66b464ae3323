// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/toeirei/rideroster/internal/logging"
	"github.com/toeirei/rideroster/internal/tui"
	"github.com/toeirei/rideroster/internal/tui/views/root"
)

func (a *app) runTUI(ctx context.Context) error {
	// The TUI owns the terminal, so logs go to a file.
	if a.cfg.Log.File == "" {
		if path, ok := tuiLogPath(); ok {
			if closer, err := logging.Setup(a.cfg.Log.Level, path); err == nil {
				if a.logCloser != nil {
					_ = a.logCloser.Close()
				}
				a.logCloser = closer
				if a.verbose {
					logging.SetDebug(true)
				}
			}
		}
	}

	deps, lookup, err := a.deps(ctx)
	if err != nil {
		return err
	}
	p := tui.NewProgram(ctx, root.Options{
		Deps:       deps,
		RosterOpts: a.rosterOptions(),
		Lookup:     lookup,
		Version:    resolveVersionOnly(),
	})

	stop := onSignals(banSignals, func(sig os.Signal) {
		logging.Warnf("received %s, locking login", sig)
		tui.Ban(p)
	})
	defer stop()

	_, err = p.Run()
	return err
}

func resolveVersionOnly() string {
	v, _, _ := resolveBuildVersion(nil)
	return v
}

// tuiLogPath returns the default log file used while the TUI runs.
func tuiLogPath() (string, bool) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, "rideroster", "rideroster.log"), true
}

// onSignals calls fn for every signal in sigs until stop is called.
func onSignals(sigs []os.Signal, fn func(os.Signal)) (stop func()) {
	if len(sigs) == 0 {
		return func() {}
	}
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(ch, sigs...)
	go func() {
		for {
			select {
			case sig := <-ch:
				fn(sig)
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}
