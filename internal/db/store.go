// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/toeirei/rideroster/internal/model"
	"github.com/uptrace/bun"
)

const (
	usersTable   = "users"
	sessionTable = "session_entries"
)

// opTimeout bounds calls that come without a context, like Set.
const opTimeout = 10 * time.Second

type userRow struct {
	bun.BaseModel `bun:"table:users"`
	ID            int    `bun:"id,pk"`
	FirstName     string `bun:"first_name,notnull"`
	LastName      string `bun:"last_name,notnull"`
	IsDriver      bool   `bun:"is_driver,notnull"`
	UserName      string `bun:"user_name"`
}

func toRow(u model.User) userRow {
	return userRow{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, IsDriver: u.IsDriver, UserName: u.UserName}
}

func (r userRow) toModel() model.User {
	return model.User{ID: r.ID, FirstName: r.FirstName, LastName: r.LastName, IsDriver: r.IsDriver, UserName: r.UserName}
}

// SessionEntry is one stored session value.
type SessionEntry struct {
	bun.BaseModel `bun:"table:session_entries"`
	Key           string    `bun:"entry_key,pk"`
	Value         string    `bun:"entry_value,notnull"`
	UpdatedAt     time.Time `bun:"updated_at,notnull"`
}

// Store serves the roster and the session from a database.
type Store struct {
	bun    *bun.DB
	dbType string
}

func newStore(sqlDB *sql.DB, dbType string) *Store {
	return &Store{bun: createBunDB(sqlDB, dbType), dbType: dbType}
}

func (s *Store) ensureSchema(ctx context.Context) error {
	for _, m := range []any{(*userRow)(nil), (*SessionEntry)(nil)} {
		if _, err := s.bun.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return MapDBError(err)
		}
	}
	return nil
}

// Type returns the database type the store was opened with.
func (s *Store) Type() string { return s.dbType }

// Close closes the underlying connection pool.
func (s *Store) Close() error { return s.bun.Close() }

// FetchAll returns the stored roster ordered by id.
func (s *Store) FetchAll(ctx context.Context) ([]model.User, error) {
	var rows []userRow
	if err := s.bun.NewSelect().Model(&rows).Order("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("load roster: %w", MapDBError(err))
	}
	users := make([]model.User, len(rows))
	for i, r := range rows {
		users[i] = r.toModel()
	}
	return users, nil
}

// ReplaceAll swaps the stored roster for users in one transaction.
func (s *Store) ReplaceAll(ctx context.Context, users []model.User) error {
	return s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*userRow)(nil)).Where("1 = 1").Exec(ctx); err != nil {
			return fmt.Errorf("clear roster: %w", MapDBError(err))
		}
		if len(users) == 0 {
			return nil
		}
		rows := make([]userRow, len(users))
		for i, u := range users {
			rows[i] = toRow(u)
		}
		if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return fmt.Errorf("insert roster: %w", MapDBError(err))
		}
		return nil
	})
}

// Set stores a session value, overwriting any existing one.
func (s *Store) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return s.SetContext(ctx, key, value)
}

// SetContext is Set with a caller-supplied context.
func (s *Store) SetContext(ctx context.Context, key, value string) error {
	entry := &SessionEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*SessionEntry)(nil)).Where("entry_key = ?", key).Exec(ctx); err != nil {
			return fmt.Errorf("replace session %q: %w", key, MapDBError(err))
		}
		if _, err := tx.NewInsert().Model(entry).Exec(ctx); err != nil {
			return fmt.Errorf("store session %q: %w", key, MapDBError(err))
		}
		return nil
	})
}

// Get returns the session value for key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var entry SessionEntry
	err := s.bun.NewSelect().Model(&entry).Where("entry_key = ?", key).Limit(1).Scan(ctx)
	if err != nil {
		return "", MapDBError(err)
	}
	return entry.Value, nil
}

// Entries returns every session entry ordered by key.
func (s *Store) Entries(ctx context.Context) ([]SessionEntry, error) {
	var entries []SessionEntry
	if err := s.bun.NewSelect().Model(&entries).Order("entry_key ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list session: %w", MapDBError(err))
	}
	return entries, nil
}

// Clear removes every session entry.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.bun.NewDelete().Model((*SessionEntry)(nil)).Where("1 = 1").Exec(ctx); err != nil {
		return fmt.Errorf("clear session: %w", MapDBError(err))
	}
	return nil
}
