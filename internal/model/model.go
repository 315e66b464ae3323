// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the core data structures used throughout Rideroster.
package model

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// Role labels shown next to a user's name.
const (
	RoleDriver = "Driver"
	RoleRider  = "Rider"
)

// User is one entry of the roster. It is never mutated once loaded.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsDriver  bool   `json:"isDriver"`
	// UserName is the login handle, when the roster service provides one.
	UserName string `json:"userName,omitempty"`
}

// RoleLabel returns "Driver" or "Rider".
func (u User) RoleLabel() string {
	if u.IsDriver {
		return RoleDriver
	}
	return RoleRider
}

// FullName returns "first last".
func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// DisplayLabel returns "first last: Role", the text shown once a user is chosen.
func (u User) DisplayLabel() string {
	return fmt.Sprintf("%s: %s", u.FullName(), u.RoleLabel())
}

// String implements fmt.Stringer.
func (u User) String() string {
	return u.DisplayLabel()
}

// userWire mirrors the roster payload. Older payloads carry the role as
// "driver" instead of "isDriver", and some send the id as a string.
type userWire struct {
	ID        json.RawMessage `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	IsDriver  *bool           `json:"isDriver"`
	Driver    *bool           `json:"driver"`
	UserName  string          `json:"userName"`
}

// UnmarshalJSON accepts both role keys and a string or numeric id.
func (u *User) UnmarshalJSON(data []byte) error {
	var w userWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	id, err := parseID(w.ID)
	if err != nil {
		return err
	}
	*u = User{
		ID:        id,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		UserName:  w.UserName,
	}
	switch {
	case w.IsDriver != nil:
		u.IsDriver = *w.IsDriver
	case w.Driver != nil:
		u.IsDriver = *w.Driver
	}
	return nil
}

func parseID(raw json.RawMessage) (int, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("user id: %w", err)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("user id %q: %w", s, err)
	}
	return n, nil
}
