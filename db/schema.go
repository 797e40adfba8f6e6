// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/year-review/cliparse"
)

// Database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects using the driver named by cfg.DatabaseType and verifies the connection
func Open(cfg cliparse.Config) (*sql.DB, error) {
	var driver string
	switch cfg.DatabaseType {
	case TypeSQLite:
		driver = "sqlite"
	case TypePostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.DatabaseType == TypeSQLite {
		// SQLite allows a single writer
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Portable between SQLite and PostgreSQL: no server-side defaults
const schema = `
CREATE TABLE IF NOT EXISTS kv_entry (
    entry_key TEXT PRIMARY KEY,
    entry_value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`
