// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package login

import "github.com/toeirei/rideroster/internal/i18n"

// Localize maps the flow's built-in messages to the active language.
// Server-provided messages are returned as sent.
func Localize(msg string) string {
	switch msg {
	case MsgUsernameRequired:
		return i18n.T("login.error.username_required")
	case MsgTransport:
		return i18n.T("login.error.transport")
	}
	return msg
}
