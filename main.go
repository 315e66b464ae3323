// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Rideroster.
//
// Usage:
//
//	go run . [flags]
//	./rideroster [flags]
//
// Without a subcommand this launches the account picker TUI. See --help for
// the headless commands.
package main

import (
	"os"

	"github.com/toeirei/rideroster/ui/cli"
)

func main() {
	// cobra has already printed the error.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
