// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Year in Review API.

# Handler Types

  - DraftHandler: private drafts, one per user, kept in the key-value store
  - ViewHandler: the question catalog and read-only shared links

	draftHandler := handlers.NewDraftHandler(store.NewSQLStore(db), catalog.Default(), cfg)
	viewHandler := handlers.NewViewHandler(catalog.Default())

# Draft Flow

	POST   /drafts              → CreateDraft (returns draft_id, edit_key)
	GET    /drafts/{id}         → GetDraft (payload + where to resume)
	PUT    /drafts/{id}         → SaveDraft (replace answers and custom entries)
	POST   /drafts/{id}/answers → SetAnswer (one slot)
	POST   /drafts/{id}/next    → Next (records "-" if the question was left empty)
	POST   /drafts/{id}/custom  → AddCustom
	POST   /drafts/{id}/share   → Share (token + share_url)
	DELETE /drafts/{id}         → DeleteDraft

Draft operations require the X-Edit-Key header. A draft is stored as an
encoded payload token, the same format share links carry, with the current
catalog embedded.

# Shared Links

	GET /view?data=<token> → View

No key is needed. Links without an embedded catalog are shown against the
server's catalog. A token that fails to decode is a 400 naming the failure
category; a stored draft that fails to decode is a 422.
*/
package handlers
