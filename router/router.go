// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/year-review/catalog"
	"github.com/danielhkuo/year-review/cliparse"
	"github.com/danielhkuo/year-review/handlers"
	"github.com/danielhkuo/year-review/middleware"
	"github.com/danielhkuo/year-review/store"
)

func NewRouter(db *sql.DB, questions *catalog.Catalog, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	draftHandler := handlers.NewDraftHandler(store.NewSQLStore(db), questions, cfg)
	viewHandler := handlers.NewViewHandler(questions)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Catalog and shared links (public)
	mux.HandleFunc("GET /questions", middleware.WithLogging(viewHandler.GetQuestions))
	mux.HandleFunc("GET /view", middleware.WithLogging(viewHandler.View))

	// Drafts (X-Edit-Key required except on create)
	mux.HandleFunc("POST /drafts", middleware.WithLogging(draftHandler.CreateDraft))
	mux.HandleFunc("GET /drafts/{id}", middleware.WithLogging(draftHandler.GetDraft))
	mux.HandleFunc("PUT /drafts/{id}", middleware.WithLogging(draftHandler.SaveDraft))
	mux.HandleFunc("DELETE /drafts/{id}", middleware.WithLogging(draftHandler.DeleteDraft))
	mux.HandleFunc("POST /drafts/{id}/answers", middleware.WithLogging(draftHandler.SetAnswer))
	mux.HandleFunc("POST /drafts/{id}/next", middleware.WithLogging(draftHandler.Next))
	mux.HandleFunc("POST /drafts/{id}/custom", middleware.WithLogging(draftHandler.AddCustom))
	mux.HandleFunc("POST /drafts/{id}/share", middleware.WithLogging(draftHandler.Share))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("year-review API v1"))
	})

	return mux
}
