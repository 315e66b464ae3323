// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// package snapshot reads and writes roster snapshots: a JSON document with
// the full user list, optionally zstd-compressed. A snapshot file can serve
// as the roster source when the users endpoint is not reachable.
package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/rideroster/internal/model"
)

// SchemaVersion is written into every snapshot.
const SchemaVersion = 1

// CompressedExt marks a zstd-compressed snapshot file.
const CompressedExt = ".zst"

// Snapshot is the on-disk document.
type Snapshot struct {
	SchemaVersion int          `json:"schemaVersion"`
	ExportedAt    time.Time    `json:"exportedAt"`
	Users         []model.User `json:"users"`
}

// Write encodes users to w, compressing with zstd when compressed is set.
func Write(w io.Writer, users []model.User, compressed bool) error {
	snap := Snapshot{SchemaVersion: SchemaVersion, ExportedAt: time.Now().UTC(), Users: users}
	if snap.Users == nil {
		snap.Users = []model.User{}
	}
	if !compressed {
		return encode(w, &snap)
	}
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create zstd writer: %w", err)
	}
	if err := encode(zw, &snap); err != nil {
		_ = zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("flush zstd writer: %w", err)
	}
	return nil
}

func encode(w io.Writer, snap *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Read decodes a snapshot from r. A bare JSON array of users, as served by
// the users endpoint, is accepted too.
func Read(r io.Reader, compressed bool) (*Snapshot, error) {
	if compressed {
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("create zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '[' {
		var users []model.User
		if err := json.Unmarshal(data, &users); err != nil {
			return nil, fmt.Errorf("decode user list: %w", err)
		}
		return &Snapshot{SchemaVersion: SchemaVersion, Users: users}, nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.SchemaVersion > SchemaVersion {
		return nil, fmt.Errorf("snapshot schema version %d is newer than supported version %d", snap.SchemaVersion, SchemaVersion)
	}
	return &snap, nil
}

// IsCompressed reports whether path names a zstd snapshot.
func IsCompressed(path string) bool {
	return strings.HasSuffix(path, CompressedExt)
}

// WriteFile writes users to path, compressed when path ends in .zst.
func WriteFile(path string, users []model.User) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	if err := Write(f, users, IsCompressed(path)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ReadFile reads the snapshot at path.
func ReadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Read(f, IsCompressed(path))
}

// Source serves the roster from a snapshot file.
type Source struct {
	Path string
}

// FetchAll reads the snapshot file on every call.
func (s Source) FetchAll(ctx context.Context) ([]model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap, err := ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	return snap.Users, nil
}
