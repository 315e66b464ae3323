// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

//go:build !windows

package cli

import (
	"os"
	"syscall"
)

// banSignals lock the login flow of a running TUI.
var banSignals = []os.Signal{syscall.SIGUSR1}
