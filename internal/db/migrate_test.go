package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func columnNames(t *testing.T, db *sql.DB, table string) []string {
	t.Helper()
	rows, err := db.Query(`PRAGMA table_info(` + table + `)`)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var cid int
		var name, typ string
		var notNull, pk int
		var dflt sql.NullString
		require.NoError(t, rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	return names
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesKVStore(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='kv_store'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv_store", name)

	assert.Equal(t, []string{"key", "value", "updated_at"}, columnNames(t, db, "kv_store"))
}

func TestMigrate_KeyIsPrimary(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO kv_store (key, value, updated_at) VALUES ('k', 'v', '')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO kv_store (key, value, updated_at) VALUES ('k', 'v2', '')`)
	assert.Error(t, err, "duplicate key should violate primary key")
}

func TestMigrate_InMemoryJournalMode(t *testing.T) {
	// WAL only applies to file databases; in-memory reports "memory".
	db := openTestDB(t)

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "memory", mode)
}
