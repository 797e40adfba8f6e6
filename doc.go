// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Year in Review API server.

Year in Review is a short end-of-year questionnaire. A user fills in a
draft, then shares the finished answers as a single link whose data
query parameter carries the whole payload. Nothing about a shared link
is stored server-side; anyone holding the link can render it.

# Starting the Server

With no configuration beyond the edit salt, the server uses a local
SQLite file and the built-in question catalog:

	EDIT_KEY_SALT=dev go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -edit-salt dev

A .env file in the working directory is loaded first, if present.

# Configuration

Required settings:

  - EDIT_KEY_SALT (-edit-salt): Secret for draft edit key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:yearreview.db for sqlite)
  - PUBLIC_BASE_URL (-base-url): Page share links point at
  - CATALOG_PATH (-catalog): YAML question catalog
  - STORAGE_KEY (-storage-key): Key prefix for stored drafts (default: yearReview2025)

# Architecture

  - sharecodec: Share token encoding and decoding
  - review: Answer editing, resume position, results view
  - catalog: Question catalog (built-in or YAML)
  - handlers: HTTP request handlers (drafts, view)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - store: Key-value persistence for drafts
  - models: Request/response and payload types
  - auth: Draft IDs and edit keys
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
