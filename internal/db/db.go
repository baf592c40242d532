package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// startupPragmas run on every connection before migrations. WAL keeps reads
// cheap while a plan is being seeded; foreign keys back the event/activity
// destination references.
var startupPragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA foreign_keys = ON",
}

// DefaultPath resolves where the planner keeps its database: the YATRI_DB
// environment variable when set, otherwise ~/.yatri/yatri.db.
func DefaultPath() (string, error) {
	if p := os.Getenv("YATRI_DB"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".yatri", "yatri.db"), nil
}

// OpenDB opens the SQLite store at path, creating the parent directory when
// needed, and brings the schema up to date. ":memory:" yields a throwaway
// in-memory store.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	for _, pragma := range startupPragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}

	if err := Migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return conn, nil
}
