// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package remote

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/toeirei/rideroster/internal/model"
)

// RosterClient fetches the user list from the users endpoint, which
// answers with a JSON array.
type RosterClient struct {
	endpoint *url.URL
	http     *http.Client
}

// NewRosterClient returns a client for usersURI.
func NewRosterClient(usersURI string, timeout time.Duration) (*RosterClient, error) {
	u, err := parseEndpoint(usersURI)
	if err != nil {
		return nil, err
	}
	return &RosterClient{endpoint: u, http: newHTTPClient(timeout)}, nil
}

// FetchAll returns every user.
func (c *RosterClient) FetchAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := getJSON(ctx, c.http, c.endpoint, "", &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}
