// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package login

import "errors"

// Messages shown in the login error slots.
const (
	MsgUsernameRequired = "Username field required"
	MsgTransport        = "Cannot login at this time. Please try again later."
)

var (
	// ErrUsernameRequired is returned when a login is attempted without a username.
	ErrUsernameRequired = errors.New("username required")
	// ErrPasswordRejected is returned when the server flagged the password.
	ErrPasswordRejected = errors.New("password rejected")
	// ErrAccountNotFound is returned when the server does not know the account.
	ErrAccountNotFound = errors.New("account not found")
	// ErrTransport wraps every failure to reach or understand the server.
	ErrTransport = errors.New("login transport failure")
	// ErrBanned is returned for any attempt after the flow was banned.
	ErrBanned = errors.New("login banned")
	// ErrStaleAttempt is returned when a response arrives for an attempt
	// that has since been superseded.
	ErrStaleAttempt = errors.New("stale login attempt")
)
