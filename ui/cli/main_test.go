// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/toeirei/rideroster/internal/model"
	"github.com/toeirei/rideroster/internal/snapshot"
)

// isolate keeps the commands away from any real config, .env or log file.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg"))
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)
	return tmp
}

// execute runs a fresh command tree and returns what it wrote to stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--log.file=-", "--language=en"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeRoster(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "roster.json")
	users := []model.User{
		{ID: 1, FirstName: "Ada", LastName: "Lovelace", IsDriver: true, UserName: "ada"},
		{ID: 2, FirstName: "Dan", LastName: "Brown", UserName: "dan"},
		{ID: 3, FirstName: "Dora", LastName: "Explorer", IsDriver: true, UserName: "dora"},
	}
	if err := snapshot.WriteFile(path, users); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	return path
}

func loginServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestConfigPathFromFlags(t *testing.T) {
	tmp := t.TempDir()
	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file")

	p, err := configPathFromFlags(cmd)
	if err != nil || p != nil {
		t.Fatalf("expected no path when flag not set, got %v, %v", p, err)
	}

	file := filepath.Join(tmp, "rideroster.yaml")
	if err := os.WriteFile(file, []byte("language: de\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_ = cmd.Flags().Set("config", file)
	p, err = configPathFromFlags(cmd)
	if err != nil || p == nil || *p != file {
		t.Fatalf("expected %s, got %v, %v", file, p, err)
	}

	_ = cmd.Flags().Set("config", filepath.Join(tmp, "missing.yaml"))
	if _, err := configPathFromFlags(cmd); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	isolate(t)
	_, err := execute(t, "", "users", "--roster.source", "ftp")
	if err == nil || !strings.Contains(err.Error(), "roster.source") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUsersCmd_FileSource(t *testing.T) {
	tmp := isolate(t)
	roster := writeRoster(t, tmp)

	out, err := execute(t, "", "users", "--roster.source", "file", "--roster.file", roster)
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	for _, want := range []string{"Ada Lovelace", "Dan Brown", "Dora Explorer", "Page 1 of 1 (3 users)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestUsersCmd_Query(t *testing.T) {
	tmp := isolate(t)
	roster := writeRoster(t, tmp)

	out, err := execute(t, "", "users", "--roster.source", "file", "--roster.file", roster, "-q", "d")
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if !strings.Contains(out, "Dan Brown") || !strings.Contains(out, "Dora Explorer") {
		t.Fatalf("expected both matches:\n%s", out)
	}
	if strings.Contains(out, "Ada Lovelace") {
		t.Fatalf("Ada should be filtered out:\n%s", out)
	}

	out, err = execute(t, "", "users", "--roster.source", "file", "--roster.file", roster, "-q", "zz")
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if !strings.Contains(out, "No users found.") {
		t.Fatalf("expected empty notice:\n%s", out)
	}
}

func TestUsersExportImport_SQLite(t *testing.T) {
	tmp := isolate(t)
	roster := writeRoster(t, tmp)
	exported := filepath.Join(tmp, "export.json.zst")
	dsn := filepath.Join(tmp, "rideroster.db")

	out, err := execute(t, "", "users", "export", exported, "--roster.source", "file", "--roster.file", roster)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "Wrote 3 users") {
		t.Fatalf("unexpected export output: %s", out)
	}
	if !snapshot.IsCompressed(exported) {
		t.Fatalf("expected a compressed snapshot name")
	}

	if _, err := execute(t, "", "users", "import", exported, "--database.dsn", dsn); err != nil {
		t.Fatalf("import: %v", err)
	}

	out, err = execute(t, "", "users", "--roster.source", "db", "--database.dsn", dsn)
	if err != nil {
		t.Fatalf("users from db: %v", err)
	}
	if !strings.Contains(out, "Dora Explorer") || !strings.Contains(out, "(3 users)") {
		t.Fatalf("db roster incomplete:\n%s", out)
	}
}

func TestLoginCmd_Success(t *testing.T) {
	isolate(t)
	srv := loginServer(t, `{"name":"Ada","userid":7}`)

	out, err := execute(t, "", "login", "-u", "ada", "--password", "pw", "--endpoints.login_uri", srv.URL)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out, "Continuing at landingPage") {
		t.Fatalf("expected navigation notice:\n%s", out)
	}
	if !strings.Contains(out, "Logged in as Ada (user id 7)") {
		t.Fatalf("expected success line:\n%s", out)
	}
}

func TestLoginCmd_PasswordFromStdin(t *testing.T) {
	isolate(t)
	var gotPass string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPass = r.URL.Query().Get("passWord")
		_, _ = w.Write([]byte(`{"userNotFound":["No such account"]}`))
	}))
	defer srv.Close()

	out, err := execute(t, "s3cret\n", "login", "-u", "ghost", "--endpoints.login_uri", srv.URL)
	if err == nil {
		t.Fatalf("expected login error")
	}
	if gotPass != "s3cret" {
		t.Fatalf("password not read from stdin, got %q", gotPass)
	}
	if !strings.Contains(out, "Login failed: No such account") {
		t.Fatalf("expected failure line:\n%s", out)
	}
}

func TestLoginCmd_UsernameRequired(t *testing.T) {
	isolate(t)
	srv := loginServer(t, `{}`)
	out, err := execute(t, "", "login", "--password", "pw", "--endpoints.login_uri", srv.URL)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(out, "Username field required") {
		t.Fatalf("expected username slot:\n%s", out)
	}
}

func TestLoginCmd_LocalizedFailure(t *testing.T) {
	isolate(t)
	srv := loginServer(t, `{}`)
	out, err := execute(t, "", "--language=de", "login", "--password", "pw", "--endpoints.login_uri", srv.URL)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(out, "Benutzername erforderlich") {
		t.Fatalf("expected German username message:\n%s", out)
	}
}

func TestSessionCmd_RequiresDB(t *testing.T) {
	isolate(t)
	_, err := execute(t, "", "session", "show")
	if !errors.Is(err, errNoDatabase) {
		t.Fatalf("expected errNoDatabase, got %v", err)
	}
}

func TestSessionCmd_PersistsLogin(t *testing.T) {
	tmp := isolate(t)
	dsn := filepath.Join(tmp, "session.db")
	srv := loginServer(t, `{"name":"Dora","userid":"d-3"}`)
	common := []string{"--session.backend", "db", "--database.dsn", dsn}

	if _, err := execute(t, "", append([]string{"login", "-u", "dora", "--password", "pw", "--endpoints.login_uri", srv.URL}, common...)...); err != nil {
		t.Fatalf("login: %v", err)
	}

	out, err := execute(t, "", append([]string{"session", "show"}, common...)...)
	if err != nil {
		t.Fatalf("session show: %v", err)
	}
	if !strings.Contains(out, "name=Dora") || !strings.Contains(out, "userid=d-3") {
		t.Fatalf("session not stored:\n%s", out)
	}

	if _, err := execute(t, "", append([]string{"session", "clear"}, common...)...); err != nil {
		t.Fatalf("session clear: %v", err)
	}
	out, err = execute(t, "", append([]string{"session", "show"}, common...)...)
	if err != nil {
		t.Fatalf("session show: %v", err)
	}
	if !strings.Contains(out, "No session stored.") {
		t.Fatalf("expected empty session:\n%s", out)
	}
}

func TestConfigInitCmd(t *testing.T) {
	tmp := isolate(t)
	path := filepath.Join(tmp, "out", "rideroster.yaml")

	out, err := execute(t, "", "config", "init", "-o", path, "--roster.source", "file", "--roster.file", "/srv/roster.json")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Fatalf("expected written path in output: %s", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "/srv/roster.json") {
		t.Fatalf("flag value not written:\n%s", data)
	}

	// The written file loads back through --config.
	out, err = execute(t, "", "--config", path, "config", "init", "-o", filepath.Join(tmp, "again.yaml"))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	again, _ := os.ReadFile(filepath.Join(tmp, "again.yaml"))
	if !strings.Contains(string(again), "/srv/roster.json") {
		t.Fatalf("value lost on reload:\n%s\n%s", again, out)
	}
}

func TestDBMaintainCmd(t *testing.T) {
	isolate(t)
	orig := maintain
	defer func() { maintain = orig }()

	var gotType, gotDSN string
	var hadDeadline bool
	maintain = func(ctx context.Context, dbType, dsn string) error {
		gotType, gotDSN = dbType, dsn
		_, hadDeadline = ctx.Deadline()
		return nil
	}

	out, err := execute(t, "", "db", "maintain", "--database.type", "postgres", "--database.dsn", "postgres://x@/y", "--timeout", "5s")
	if err != nil {
		t.Fatalf("db maintain: %v", err)
	}
	if gotType != "postgres" || gotDSN != "postgres://x@/y" || !hadDeadline {
		t.Fatalf("unexpected call: %s %s deadline=%v", gotType, gotDSN, hadDeadline)
	}
	if !strings.Contains(out, "Database maintenance finished.") {
		t.Fatalf("unexpected output: %s", out)
	}

	maintain = func(context.Context, string, string) error { return errors.New("locked") }
	if _, err := execute(t, "", "db", "maintain"); err == nil || !strings.Contains(err.Error(), "locked") {
		t.Fatalf("expected wrapped maintenance error, got %v", err)
	}
}

func TestVersionCmd(t *testing.T) {
	isolate(t)
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "version: ") || !strings.Contains(out, "commit: ") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestReadPassword_Pipe(t *testing.T) {
	var out bytes.Buffer
	got, err := readPassword(strings.NewReader("hunter2\r\nignored\n"), &out)
	if err != nil || got != "hunter2" {
		t.Fatalf("got %q, %v", got, err)
	}
	if out.Len() != 0 {
		t.Fatalf("no prompt expected for piped input, got %q", out.String())
	}
	// A missing trailing newline is fine.
	if got, _ := readPassword(strings.NewReader("last"), &out); got != "last" {
		t.Fatalf("got %q", got)
	}
}

func TestOnSignals_NoSignals(t *testing.T) {
	stop := onSignals(nil, func(os.Signal) { t.Fatal("unexpected call") })
	stop()
}
