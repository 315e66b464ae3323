// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

//go:build !windows

package cli

import (
	"os"
	"syscall"
	"testing"
	"time"
)

func TestOnSignals_DeliversBanSignal(t *testing.T) {
	got := make(chan os.Signal, 1)
	stop := onSignals(banSignals, func(sig os.Signal) { got <- sig })
	defer stop()

	if err := syscall.Kill(os.Getpid(), syscall.SIGUSR1); err != nil {
		t.Fatalf("kill: %v", err)
	}
	select {
	case sig := <-got:
		if sig != syscall.SIGUSR1 {
			t.Fatalf("got %v", sig)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("signal not delivered")
	}
}
