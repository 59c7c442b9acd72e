package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS ledger_entries (
		id            TEXT PRIMARY KEY,
		entered_at_ms INTEGER NOT NULL CHECK(entered_at_ms >= 0),
		spent_ms      INTEGER NOT NULL CHECK(spent_ms >= 0),
		description   TEXT NOT NULL CHECK(description <> ''),
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_ledger_entries_description ON ledger_entries(description)`,
	`CREATE INDEX IF NOT EXISTS idx_ledger_entries_entered ON ledger_entries(entered_at_ms)`,

	`ALTER TABLE ledger_entries ADD COLUMN source TEXT NOT NULL DEFAULT 'manual'
		CHECK(source IN ('tracked','manual','import'))`,
}
