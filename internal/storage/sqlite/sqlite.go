// Package sqlite opens the SQLite backend of the household store.
package sqlite

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/housesplit/internal/storage/sqlstore"
)

// New opens the database at dbPath, creating parent directories and
// running migrations first.
func New(dbPath string) (*sqlstore.Store, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqlstore.New(db, sqlstore.SQLite), nil
}

// dsn applies the per-connection pragmas. database/sql pools connections,
// so a one-off PRAGMA statement would only reach one of them.
//
// Transactions begin IMMEDIATE: writes like Assign read before they write,
// and a deferred transaction cannot upgrade to a write lock once another
// writer has committed in WAL mode. It fails with SQLITE_BUSY without
// waiting on busy_timeout.
func dsn(dbPath string) string {
	params := url.Values{}
	params.Set("_txlock", "immediate")
	params.Add("_pragma", "foreign_keys(1)")
	params.Add("_pragma", "busy_timeout(5000)")
	params.Add("_pragma", "journal_mode(WAL)")
	return "file:" + dbPath + "?" + params.Encode()
}
