// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Rideroster using
// Cobra. It loads the configuration, builds the roster, login and session
// collaborators from it and hands them to the TUI or to the headless
// commands. Business logic stays in the controller and its packages.
package cli
