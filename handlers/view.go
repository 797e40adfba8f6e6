// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/year-review/catalog"
	"github.com/danielhkuo/year-review/middleware"
	"github.com/danielhkuo/year-review/models"
	"github.com/danielhkuo/year-review/review"
	"github.com/danielhkuo/year-review/sharecodec"
)

type ViewHandler struct {
	catalog *catalog.Catalog
}

func NewViewHandler(c *catalog.Catalog) *ViewHandler {
	return &ViewHandler{catalog: c}
}

// GetQuestions handles GET /questions
func (h *ViewHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.catalog)
}

// View handles GET /view?data=<token>
// Read-only and public: the link carries everything.
func (h *ViewHandler) View(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("data")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "data parameter is required")
		return
	}

	payload, err := sharecodec.Decode(token)
	if err != nil {
		slog.Warn("rejected share link", "category", sharecodec.Category(err), "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid share link: "+sharecodec.Category(err).Error())
		return
	}

	legacy := sharecodec.ShapeOf(payload) == sharecodec.ShapeLegacy
	slog.Info("share link viewed", "shape", sharecodec.ShapeOf(payload), "answers", len(payload.Answers))

	middleware.JSONResponse(w, http.StatusOK, models.ViewResponse{
		UserName:  payload.UserName,
		Legacy:    legacy,
		Questions: review.QuestionsFor(payload, h.catalog),
		Results:   review.Results(payload, h.catalog),
		Custom:    payload.Custom,
	})
}
