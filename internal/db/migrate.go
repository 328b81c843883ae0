package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list can be replayed on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS observations (
		id         TEXT PRIMARY KEY,
		date       TEXT NOT NULL,
		minutes    REAL NOT NULL DEFAULT 0,
		fetched_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_observations_date ON observations(date)`,
	`CREATE TABLE IF NOT EXISTS monthly_goals (
		id           TEXT PRIMARY KEY,
		year         INTEGER NOT NULL,
		month        INTEGER NOT NULL,
		goal_minutes REAL NOT NULL DEFAULT 0,
		fetched_at   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS fetch_log (
		id          TEXT PRIMARY KEY,
		database_id TEXT NOT NULL,
		pages       INTEGER NOT NULL,
		records     INTEGER NOT NULL,
		fetched_at  TEXT NOT NULL
	)`,
}
