// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-lint checks that every i18n.T key used in the Go sources exists in
// the primary locale, that every other locale carries the same keys, and
// lists primary keys nothing uses.
//
// Usage:
//
//	go run ./tools/i18n-lint [root]
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
)

var keyCall = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

// report is the outcome of one lint run. Missing maps a locale file to the
// primary keys it lacks.
type report struct {
	Used      int
	Undefined []string
	Orphaned  []string
	Missing   map[string][]string
}

func (r report) failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

func main() {
	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	r, err := lint(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-lint: %v\n", err)
		os.Exit(2)
	}
	r.print(os.Stdout)
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root string) (report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return report{}, fmt.Errorf("scan sources: %w", err)
	}
	dir := filepath.Join(root, localesDir)
	primary, err := loadKeys(filepath.Join(dir, primaryLocale))
	if err != nil {
		return report{}, fmt.Errorf("load %s: %w", primaryLocale, err)
	}

	r := report{Used: len(used), Missing: map[string][]string{}}
	for k := range used {
		if _, ok := primary[k]; !ok {
			r.Undefined = append(r.Undefined, k)
		}
	}
	for k := range primary {
		if _, ok := used[k]; !ok {
			r.Orphaned = append(r.Orphaned, k)
		}
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return report{}, err
	}
	for _, f := range files {
		if filepath.Base(f) == primaryLocale {
			continue
		}
		keys, err := loadKeys(f)
		if err != nil {
			return report{}, fmt.Errorf("load %s: %w", filepath.Base(f), err)
		}
		var missing []string
		for k := range primary {
			if _, ok := keys[k]; !ok {
				missing = append(missing, k)
			}
		}
		if len(missing) > 0 {
			slices.Sort(missing)
			r.Missing[filepath.Base(f)] = missing
		}
	}
	slices.Sort(r.Undefined)
	slices.Sort(r.Orphaned)
	return r, nil
}

func (r report) print(w io.Writer) {
	_, _ = fmt.Fprintf(w, "%d keys used in source\n", r.Used)
	for _, k := range r.Undefined {
		_, _ = fmt.Fprintf(w, "undefined: %s\n", k)
	}
	locales := make([]string, 0, len(r.Missing))
	for f := range r.Missing {
		locales = append(locales, f)
	}
	slices.Sort(locales)
	for _, f := range locales {
		for _, k := range r.Missing[f] {
			_, _ = fmt.Fprintf(w, "missing in %s: %s\n", f, k)
		}
	}
	for _, k := range r.Orphaned {
		_, _ = fmt.Fprintf(w, "orphaned: %s\n", k)
	}
	if !r.failed() && len(r.Orphaned) == 0 {
		_, _ = fmt.Fprintln(w, "all locales consistent")
	}
}

// findUsedKeys collects the literal keys passed to i18n.T outside tests,
// tools and the underscore-prefixed directories the go tool ignores.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || name == "testdata" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range keyCall.FindAllStringSubmatch(string(src), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeys returns the dotted keys of a locale file. Nested maps are
// flattened so both "a.b: x" and "a: {b: x}" yield "a.b".
func loadKeys(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flatten("", data, keys)
	return keys, nil
}

func flatten(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, v := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		flatten(k, v, keys)
	}
}
