// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package login

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// Result is the server's answer to a credential check. A field is present
// when it is non-nil; an empty list still counts as present.
type Result struct {
	PassWord     []string `json:"passWord,omitempty"`
	PwdError     []string `json:"pwdError,omitempty"`
	UserNotFound []string `json:"userNotFound,omitempty"`
	Name         *string  `json:"name,omitempty"`
	UserID       *ID      `json:"userid,omitempty"`
}

// PasswordRejected reports whether the password field is present.
func (r Result) PasswordRejected() bool { return r.PassWord != nil }

// PasswordMessage is the message for the password slot: the first entry of
// the password field, or of pwdError when the password field is empty.
func (r Result) PasswordMessage() string {
	if len(r.PassWord) > 0 {
		return r.PassWord[0]
	}
	return first(r.PwdError)
}

// Authenticated reports whether both session fields are present.
func (r Result) Authenticated() bool { return r.Name != nil && r.UserID != nil }

// NotFound reports whether the userNotFound field is present.
func (r Result) NotFound() bool { return r.UserNotFound != nil }

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// ID is a user id that the server may send as a JSON string or number.
type ID string

// UnmarshalJSON accepts "42" and 42 alike.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(b), 64); err != nil {
		return fmt.Errorf("userid is neither string nor number: %s", b)
	}
	*id = ID(b)
	return nil
}

func (id ID) String() string { return string(id) }

// NewID is a convenience for building results in code.
func NewID(s string) *ID {
	id := ID(s)
	return &id
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string { return &s }
