// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open picks the driver from Config.DatabaseType:

  - sqlite: modernc.org/sqlite, DATABASE_URL like "file:yearreview.db"
  - postgres: github.com/lib/pq, DATABASE_URL like "postgres://..."

	conn, err := db.Open(cfg)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - kv_entry: persisted key-value entries (entry_key, entry_value, updated_at)

Drafts are stored as encoded payload tokens under "<storage key>:<draft id>".
*/
package db
