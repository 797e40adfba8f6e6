// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the persisted string key-value store drafts live in.

	s := store.NewSQLStore(conn)
	err := s.Set(ctx, "yearReview2025:"+draftID, token)
	token, err := s.Get(ctx, "yearReview2025:"+draftID)

Get returns ErrNotFound for unknown keys. Set overwrites. The SQL
implementation runs on SQLite and PostgreSQL alike.
*/
package store
