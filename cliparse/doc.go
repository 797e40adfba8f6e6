// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: connection string (default for sqlite: file:yearreview.db)
  - EditKeySalt: Secret for draft edit keys (required)
  - BaseURL: Public URL share links point at (default: http://localhost:<port>/)
  - CatalogPath: YAML question catalog (default: built-in)
  - StorageKey: Key prefix for stored drafts (default: yearReview2025)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	--base-url    Public base URL
	--catalog     Catalog file
	--storage-key Draft key prefix
	--edit-salt   Edit key salt

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	PUBLIC_BASE_URL → --base-url
	CATALOG_PATH    → --catalog
	STORAGE_KEY     → --storage-key
	EDIT_KEY_SALT   → --edit-salt

CLI flags take precedence over environment variables. main loads a .env file
into the environment before parsing, if one exists.

# Validation

ParseFlags returns an error if:

  - EDIT_KEY_SALT is missing
  - DATABASE_URL is missing for postgres
  - the database type is not sqlite or postgres
*/
package cliparse
