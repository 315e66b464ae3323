// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package login

import "context"

type requestIDKey struct{}

// WithRequestID returns ctx carrying id, so gateways can tag the outgoing
// request with the attempt's id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the id stored by WithRequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Check sends a to gw with the attempt's request id on the context.
func (a Attempt) Check(ctx context.Context, gw AuthGateway) (Result, error) {
	return gw.CheckCredentials(WithRequestID(ctx, a.RequestID), a.Username, a.Password)
}
