package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/joyshift/internal/db"
)

// SQLiteStore keeps each key as a row of the kv_store table.
type SQLiteStore struct {
	db db.DBTX
}

// NewSQLiteStore creates a store on a *sql.DB or a *sql.Tx.
func NewSQLiteStore(conn db.DBTX) *SQLiteStore {
	return &SQLiteStore{db: conn}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}

// SQLiteBackend pairs a store on the shared connection with a unit of work
// that hands out transaction-scoped stores.
type SQLiteBackend struct {
	*SQLiteStore
	uow db.UnitOfWork
}

// NewSQLiteBackend wires a Backend over an open database.
func NewSQLiteBackend(database *sql.DB) *SQLiteBackend {
	return &SQLiteBackend{
		SQLiteStore: NewSQLiteStore(database),
		uow:         db.NewSQLiteUnitOfWork(database),
	}
}

func (b *SQLiteBackend) WithinTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	return b.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, NewSQLiteStore(tx))
	})
}
