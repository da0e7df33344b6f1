package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DBPath returns the default path of the local database
func DBPath() string {
	return filepath.Join("data", "weather-terminal.db")
}

// Open opens (creating if needed) the SQLite database at dbPath and makes
// sure the schema exists.
func Open(dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Single writer; avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	// Tuning only; the database works without them
	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA synchronous=NORMAL"} {
		if _, err := db.Exec(pragma); err != nil {
			slog.Warn("sqlite pragma failed", "pragma", pragma, "path", dbPath, "err", err)
		}
	}

	if err := EnsureSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema creates the tables used by the app. Safe to call repeatedly.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS location_history (
			query TEXT PRIMARY KEY,
			display_name TEXT NOT NULL DEFAULT '',
			hits INTEGER NOT NULL DEFAULT 0,
			last_used_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_location_history_last_used ON location_history(last_used_at);
	`)
	if err != nil {
		return fmt.Errorf("creating location_history table: %w", err)
	}

	return nil
}
