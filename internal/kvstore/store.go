// Package kvstore is the string-keyed, string-valued persistence layer the
// shift ledger and roster serialize into.
package kvstore

import (
	"context"
	"errors"
)

// Well-known keys.
const (
	KeyShiftLogs = "joyshift_logs_v1"
	KeyUsers     = "joyshift_users_v1"
	KeyTheme     = "theme"
)

// ErrCorruptFile is returned when a file-backed store can't be decoded.
var ErrCorruptFile = errors.New("kv file is corrupt")

// Store reads and writes whole values by key.
type Store interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// UnitOfWork runs fn against a Store whose writes become visible together
// when fn returns nil and are discarded otherwise.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}

// Backend is a Store that can also scope work to a transaction.
type Backend interface {
	Store
	UnitOfWork
}
