// ABOUTME: Local snapshot cache connection management
// ABOUTME: Opens the SQLite database in WAL mode and initializes the schema
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Open prepares the snapshot database at path. The cache only ever holds the
// last successfully loaded server state; the backend stays authoritative.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// Single connection avoids database-locked errors with SQLite.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS property_snapshot (
		position INTEGER NOT NULL,
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		property_type TEXT NOT NULL DEFAULT '',
		property_status TEXT NOT NULL DEFAULT '',
		lat REAL NOT NULL DEFAULT 0,
		lng REAL NOT NULL DEFAULT 0,
		matricula TEXT NOT NULL DEFAULT '',
		current_tenant TEXT NOT NULL DEFAULT '',
		current_rent_value TEXT NOT NULL DEFAULT '',
		current_contract_end TEXT NOT NULL DEFAULT '',
		current_contract_status TEXT NOT NULL DEFAULT '',
		iptu_status TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS snapshot_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	return nil
}
