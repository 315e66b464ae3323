// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package roster

import (
	"strings"

	"github.com/toeirei/rideroster/internal/model"
)

// Filter returns the users matching query. An empty query returns users
// unchanged. Matching is a case-insensitive prefix test against the first
// name, the last name, the full name and the display label; order is kept.
func Filter(users []model.User, query string) []model.User {
	if query == "" {
		return users
	}
	q := strings.ToLower(query)
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if Matches(u, q) {
			out = append(out, u)
		}
	}
	return out
}

// Matches reports whether u matches the already lower-cased query.
func Matches(u model.User, lowerQuery string) bool {
	for _, candidate := range [...]string{u.FirstName, u.LastName, u.FullName(), u.DisplayLabel()} {
		if strings.HasPrefix(strings.ToLower(candidate), lowerQuery) {
			return true
		}
	}
	return false
}
