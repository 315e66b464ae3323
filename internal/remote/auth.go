// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package remote

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/toeirei/rideroster/internal/login"
)

// AuthClient checks credentials with GET loginURI?userName=..&passWord=..
type AuthClient struct {
	endpoint *url.URL
	http     *http.Client
}

// NewAuthClient returns a client for loginURI.
func NewAuthClient(loginURI string, timeout time.Duration) (*AuthClient, error) {
	u, err := parseEndpoint(loginURI)
	if err != nil {
		return nil, err
	}
	return &AuthClient{endpoint: u, http: newHTTPClient(timeout)}, nil
}

// CheckCredentials implements login.AuthGateway. The request id comes from
// login.WithRequestID when set. Every error it returns is a transport failure
// from the flow's point of view.
func (c *AuthClient) CheckCredentials(ctx context.Context, username, password string) (login.Result, error) {
	u := *c.endpoint
	q := u.Query()
	q.Set("userName", username)
	q.Set("passWord", password)
	u.RawQuery = q.Encode()

	var res login.Result
	if err := getJSON(ctx, c.http, &u, login.RequestIDFrom(ctx), &res); err != nil {
		return login.Result{}, err
	}
	return res, nil
}
