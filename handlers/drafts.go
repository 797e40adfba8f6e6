// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/year-review/auth"
	"github.com/danielhkuo/year-review/catalog"
	"github.com/danielhkuo/year-review/cliparse"
	"github.com/danielhkuo/year-review/middleware"
	"github.com/danielhkuo/year-review/models"
	"github.com/danielhkuo/year-review/review"
	"github.com/danielhkuo/year-review/sharecodec"
	"github.com/danielhkuo/year-review/store"
)

type DraftHandler struct {
	store   store.Store
	catalog *catalog.Catalog
	cfg     cliparse.Config
}

func NewDraftHandler(s store.Store, c *catalog.Catalog, cfg cliparse.Config) *DraftHandler {
	return &DraftHandler{store: s, catalog: c, cfg: cfg}
}

func (h *DraftHandler) key(draftID string) string {
	return h.cfg.StorageKey + ":" + draftID
}

// CreateDraft handles POST /drafts
func (h *DraftHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDraftRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	draftID := auth.NewDraftID()
	payload := models.Payload{
		UserName: strings.TrimSpace(req.UserName),
		Answers:  models.AnswerSet{},
		Custom:   []models.CustomEntry{},
	}

	if err := h.save(r.Context(), draftID, payload); err != nil {
		slog.Error("failed to store draft", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create draft")
		return
	}

	slog.Info("draft created", "draft_id", draftID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateDraftResponse{
		DraftID: draftID,
		EditKey: auth.GenerateEditKey(draftID, h.cfg.EditKeySalt),
	})
}

// GetDraft handles GET /drafts/{id}
func (h *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	draftID, payload, ok := h.open(w, r)
	if !ok {
		return
	}
	h.respond(w, http.StatusOK, draftID, payload)
}

// SaveDraft handles PUT /drafts/{id}
func (h *DraftHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	draftID, _, ok := h.open(w, r)
	if !ok {
		return
	}

	var req models.SaveDraftRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.validateAnswers(req.Answers); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	for i, entry := range req.Custom {
		if strings.TrimSpace(entry.Question) == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("custom entry %d has no question", i))
			return
		}
	}

	payload := models.Payload{
		UserName: strings.TrimSpace(req.UserName),
		Answers:  req.Answers,
		Custom:   req.Custom,
	}
	if payload.Answers == nil {
		payload.Answers = models.AnswerSet{}
	}

	h.commit(w, r, draftID, payload)
}

// SetAnswer handles POST /drafts/{id}/answers
func (h *DraftHandler) SetAnswer(w http.ResponseWriter, r *http.Request) {
	draftID, payload, ok := h.open(w, r)
	if !ok {
		return
	}

	var req models.SetAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	q, err := h.catalog.Lookup(req.QuestionID)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	answers, err := review.SetAnswer(payload.Answers, q, req.Index, req.Value)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	payload.Answers = answers

	h.commit(w, r, draftID, payload)
}

// Next handles POST /drafts/{id}/next
// Leaving a question with nothing filled in records it as skipped.
func (h *DraftHandler) Next(w http.ResponseWriter, r *http.Request) {
	draftID, payload, ok := h.open(w, r)
	if !ok {
		return
	}

	var req models.NextRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if _, err := h.catalog.Lookup(req.QuestionID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	payload.Answers = review.MarkSkipped(payload.Answers, req.QuestionID)

	h.commit(w, r, draftID, payload)
}

// AddCustom handles POST /drafts/{id}/custom
func (h *DraftHandler) AddCustom(w http.ResponseWriter, r *http.Request) {
	draftID, payload, ok := h.open(w, r)
	if !ok {
		return
	}

	var req models.AddCustomRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	custom, err := review.AddCustom(payload.Custom, req.Question, req.Answer)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	payload.Custom = custom

	h.commit(w, r, draftID, payload)
}

// Share handles POST /drafts/{id}/share
func (h *DraftHandler) Share(w http.ResponseWriter, r *http.Request) {
	draftID, payload, ok := h.open(w, r)
	if !ok {
		return
	}

	payload.Questions = h.catalog.Snapshot()
	token, err := sharecodec.Encode(payload)
	if err != nil {
		slog.Error("failed to encode share token", "draft_id", draftID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build share link")
		return
	}

	shareURL, err := review.ShareURL(h.cfg.BaseURL, token)
	if err != nil {
		slog.Error("failed to build share URL", "base_url", h.cfg.BaseURL, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build share link")
		return
	}

	size := humanize.Bytes(uint64(len(token)))
	slog.Info("share link issued", "draft_id", draftID, "size", size)

	middleware.JSONResponse(w, http.StatusOK, models.ShareResponse{
		Token:     token,
		ShareURL:  shareURL,
		TokenSize: size,
	})
}

// DeleteDraft handles DELETE /drafts/{id}
func (h *DraftHandler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	draftID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), h.key(draftID)); err != nil {
		slog.Error("failed to delete draft", "draft_id", draftID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete draft")
		return
	}

	slog.Info("draft deleted", "draft_id", draftID)
	w.WriteHeader(http.StatusNoContent)
}

// authorize checks the path id and the X-Edit-Key header
func (h *DraftHandler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	draftID, err := auth.ParseDraftID(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Draft not found")
		return "", false
	}

	editKey := r.Header.Get("X-Edit-Key")
	if err := auth.ValidateEditKey(draftID, editKey, h.cfg.EditKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid edit key")
		return "", false
	}

	return draftID, true
}

// open authorizes the request and loads the stored payload
func (h *DraftHandler) open(w http.ResponseWriter, r *http.Request) (string, models.Payload, bool) {
	draftID, ok := h.authorize(w, r)
	if !ok {
		return "", models.Payload{}, false
	}

	token, err := h.store.Get(r.Context(), h.key(draftID))
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Draft not found")
		return "", models.Payload{}, false
	}
	if err != nil {
		slog.Error("failed to read draft", "draft_id", draftID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return "", models.Payload{}, false
	}

	payload, err := sharecodec.Decode(token)
	if err != nil {
		slog.Error("stored draft is unreadable", "draft_id", draftID, "category", sharecodec.Category(err), "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Stored draft is unreadable: "+sharecodec.Category(err).Error())
		return "", models.Payload{}, false
	}

	return draftID, payload, true
}

// commit saves the payload and answers with the updated draft
func (h *DraftHandler) commit(w http.ResponseWriter, r *http.Request, draftID string, payload models.Payload) {
	if err := h.save(r.Context(), draftID, payload); err != nil {
		slog.Error("failed to store draft", "draft_id", draftID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save draft")
		return
	}

	slog.Info("draft saved", "draft_id", draftID, "answers", len(payload.Answers), "custom", len(payload.Custom))
	h.respond(w, http.StatusOK, draftID, payload)
}

func (h *DraftHandler) save(ctx context.Context, draftID string, payload models.Payload) error {
	payload.Questions = h.catalog.Snapshot()
	token, err := sharecodec.Encode(payload)
	if err != nil {
		return err
	}
	return h.store.Set(ctx, h.key(draftID), token)
}

func (h *DraftHandler) respond(w http.ResponseWriter, status int, draftID string, payload models.Payload) {
	payload.Questions = review.QuestionsFor(payload, h.catalog)
	middleware.JSONResponse(w, status, models.DraftResponse{
		DraftID: draftID,
		Payload: payload,
		Resume:  review.Resume(payload, h.catalog),
	})
}

// validateAnswers rejects ids the catalog does not know and overfilled questions
func (h *DraftHandler) validateAnswers(answers models.AnswerSet) error {
	for id, values := range answers {
		q, err := h.catalog.Lookup(id)
		if err != nil {
			return err
		}
		if slots := q.Slots(); slots > 0 && len(values) > slots {
			return fmt.Errorf("question %d takes at most %d answers", id, slots)
		}
	}
	return nil
}
