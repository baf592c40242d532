package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
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
	`CREATE TABLE IF NOT EXISTS activities (
		id TEXT PRIMARY KEY,
		destination TEXT NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL CHECK (category IN (
			'beach','historical','religious','nature',
			'adventure','entertainment','market','other')),
		tier TEXT NOT NULL CHECK (tier IN ('free','budget','mid_range','luxury')),
		rating REAL NOT NULL DEFAULT 0,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_destination
		ON activities(destination)`,

	`CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		destination TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL CHECK (category IN (
			'beach','historical','religious','nature',
			'adventure','entertainment','market','other')),
		price INTEGER NOT NULL DEFAULT 0,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		approved INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_destination_start
		ON events(destination, start_time)`,
}
