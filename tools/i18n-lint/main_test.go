// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLint_ReportsEachProblem(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "internal/views/a.go"), `package views
func f() { _ = i18n.T("roster.title"); _ = i18n.T("roster.gone", 1) }`)
	writeFile(t, filepath.Join(root, "internal/views/a_test.go"), `package views
func g() { _ = i18n.T("only.in_test") }`)
	writeFile(t, filepath.Join(root, "_examples/x.go"), `package x
func h() { _ = i18n.T("ignored.key") }`)
	writeFile(t, filepath.Join(root, localesDir, "en.yaml"), "roster.title: Title\nroster.unused: x\nlogin:\n  submit: Go\n")
	writeFile(t, filepath.Join(root, localesDir, "de.yaml"), "roster.title: Titel\nroster.unused: x\n")

	r, err := lint(root)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if r.Used != 2 {
		t.Fatalf("expected 2 used keys, got %d", r.Used)
	}
	if !slices.Equal(r.Undefined, []string{"roster.gone"}) {
		t.Fatalf("undefined = %v", r.Undefined)
	}
	if !slices.Equal(r.Orphaned, []string{"login.submit", "roster.unused"}) {
		t.Fatalf("orphaned = %v", r.Orphaned)
	}
	if !slices.Equal(r.Missing["de.yaml"], []string{"login.submit"}) {
		t.Fatalf("missing = %v", r.Missing)
	}
	if !r.failed() {
		t.Fatalf("expected failure")
	}

	var out bytes.Buffer
	r.print(&out)
	for _, want := range []string{"undefined: roster.gone", "missing in de.yaml: login.submit", "orphaned: roster.unused"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("missing %q in:\n%s", want, out.String())
		}
	}
}

func TestLint_Repository(t *testing.T) {
	r, err := lint(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if r.failed() {
		var out bytes.Buffer
		r.print(&out)
		t.Fatalf("locales inconsistent:\n%s", out.String())
	}
}
