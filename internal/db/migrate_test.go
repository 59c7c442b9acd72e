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

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time — should succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	// Third time for good measure.
	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesLedgerTable(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, "ledger_entries").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "ledger_entries", name)
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_ledger_entries_description",
		"idx_ledger_entries_entered",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
		assert.Equal(t, idx, name)
	}
}

func TestMigrate_EnforcesConstraints(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO ledger_entries (id, entered_at_ms, spent_ms, description, created_at)
		VALUES ('e1', 0, 1000, '', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "empty description rejected")

	_, err = db.Exec(`INSERT INTO ledger_entries (id, entered_at_ms, spent_ms, description, created_at, source)
		VALUES ('e2', 0, 1000, 'docs', '2026-01-01T00:00:00Z', 'bogus')`)
	assert.Error(t, err, "unknown source rejected")

	_, err = db.Exec(`INSERT INTO ledger_entries (id, entered_at_ms, spent_ms, description, created_at)
		VALUES ('e3', 0, 1000, 'docs', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	var source string
	require.NoError(t, db.QueryRow(`SELECT source FROM ledger_entries WHERE id = 'e3'`).Scan(&source))
	assert.Equal(t, "manual", source)
}
