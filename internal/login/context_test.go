// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package login

import (
	"context"
	"testing"
)

func TestRequestIDFrom_Empty(t *testing.T) {
	if got := RequestIDFrom(context.Background()); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
}

func TestSubmit_PassesAttemptRequestID(t *testing.T) {
	f, _, _ := newTestFlow()
	gw := &fakeGateway{res: Result{PassWord: []string{"wrong"}}}
	_ = f.Submit(context.Background(), gw, "ada", "pw")
	if gw.requestID == "" {
		t.Fatalf("gateway saw no request id")
	}
}
