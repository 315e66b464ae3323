// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// package remote talks to the rideshare backend over HTTP: the users
// endpoint that serves the roster and the login endpoint that checks
// credentials.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/toeirei/rideroster/internal/logging"
)

// RequestIDHeader carries a per-request id for log correlation.
const RequestIDHeader = "X-Request-Id"

// DefaultTimeout bounds a request when no timeout is configured.
const DefaultTimeout = 15 * time.Second

// ErrStatus is returned for any non-2xx response.
var ErrStatus = errors.New("unexpected http status")

// maxBody caps how much of a response is read.
const maxBody = 4 << 20

// newHTTPClient returns a pooled client with the given timeout.
func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := cleanhttp.DefaultPooledClient()
	c.Timeout = timeout
	return c
}

// getJSON performs a GET on u and decodes the body into out. requestID may
// be empty, in which case a fresh one is generated.
func getJSON(ctx context.Context, hc *http.Client, u *url.URL, requestID string, out any) error {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", u.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()
	logging.Debugf("GET %s -> %d in %s (request %s)", u.Path, resp.StatusCode, time.Since(start), requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseEndpoint(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.New("endpoint not configured")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid endpoint %q: scheme must be http or https", raw)
	}
	return u, nil
}
