// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// package logging wraps charmbracelet/log for the whole application.
// The TUI owns the terminal while it runs, so Setup can send log output
// to a file instead of stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	clog "github.com/charmbracelet/log"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup configures L with the given level ("debug", "info", "warn", "error")
// and destination. An empty path logs to stderr; "-" discards all output.
// The returned closer releases the log file, if one was opened.
func Setup(level, path string) (io.Closer, error) {
	lvl, err := clog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = clog.InfoLevel
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	switch path {
	case "":
	case "-":
		w = io.Discard
	default:
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("could not create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("could not open log file %s: %w", path, err)
		}
		w, closer = f, f
	}

	L = clog.NewWithOptions(w, clog.Options{
		Prefix:          "rideroster",
		Level:           lvl,
		ReportTimestamp: path != "",
	})
	return closer, nil
}

// SetDebug toggles debug output on the current logger.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
		return
	}
	L.SetLevel(clog.InfoLevel)
}
