package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema statements are restricted to DDL both sqlite3 and postgres accept.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS narrators (
		narrator_id  TEXT PRIMARY KEY,
		full_name    TEXT NOT NULL,
		volume       INTEGER NOT NULL,
		page         INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS judgements (
		narrator_id  TEXT NOT NULL,
		category     TEXT NOT NULL,
		statement    TEXT NOT NULL DEFAULT '',
		exact_text   TEXT NOT NULL,
		evaluated_by TEXT NOT NULL DEFAULT '',
		position     INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS relations (
		narrator_id  TEXT NOT NULL,
		kind         TEXT NOT NULL,
		name         TEXT NOT NULL,
		position     INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_judgements_narrator ON judgements (narrator_id)`,
	`CREATE INDEX IF NOT EXISTS idx_relations_narrator ON relations (narrator_id)`,
}

// Migrate creates the extraction tables if they do not exist.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
