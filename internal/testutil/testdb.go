package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/joyshift/internal/db"
	"github.com/alexanderramin/joyshift/internal/kvstore"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestBackend returns a kv backend over a fresh in-memory database.
func NewTestBackend(t *testing.T) *kvstore.SQLiteBackend {
	t.Helper()
	return kvstore.NewSQLiteBackend(NewTestDB(t))
}

// NewTestFileBackend returns a file-backed kv store in a temp dir.
func NewTestFileBackend(t *testing.T) *kvstore.FileStore {
	t.Helper()
	fs, err := kvstore.NewFileStore(filepath.Join(t.TempDir(), "joyshift.json"))
	if err != nil {
		t.Fatalf("failed to create file store: %v", err)
	}
	return fs
}
