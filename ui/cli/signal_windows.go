// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

//go:build windows

package cli

import "os"

// Windows has no user signals; the ban can only come from inside the app.
var banSignals []os.Signal
