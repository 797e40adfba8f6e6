// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Year in Review API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, catalog.Default(), cfg)

# Endpoints

Health:

	GET /health

Catalog and shared links (public):

	GET /questions        - Active question catalog
	GET /view?data=TOKEN  - Decode a share link into a results view

Drafts (X-Edit-Key required after creation):

	POST   /drafts              - Start a draft
	GET    /drafts/{id}         - Load draft and resume position
	PUT    /drafts/{id}         - Replace the whole payload
	DELETE /drafts/{id}         - Start over
	POST   /drafts/{id}/answers - Fill one answer slot
	POST   /drafts/{id}/next    - Leave a question, marking it skipped if empty
	POST   /drafts/{id}/custom  - Add a custom question
	POST   /drafts/{id}/share   - Build the share link

# Handler Initialization

	draftHandler := handlers.NewDraftHandler(store.NewSQLStore(db), questions, cfg)
	viewHandler := handlers.NewViewHandler(questions)

The view handler needs no storage: everything it renders comes from the link.
*/
package router
