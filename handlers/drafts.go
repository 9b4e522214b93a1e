// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/michallipa-df/ai-medical-form/draft"
	"github.com/michallipa-df/ai-medical-form/middleware"
	"github.com/michallipa-df/ai-medical-form/models"
	"github.com/michallipa-df/ai-medical-form/session"
)

type DraftHandler struct {
	registry *session.Registry
	drafts   draft.Store
}

func NewDraftHandler(registry *session.Registry, drafts draft.Store) *DraftHandler {
	return &DraftHandler{registry: registry, drafts: drafts}
}

// SaveDraft handles POST /sessions/{token}/draft
func (h *DraftHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := lookupSession(h.registry, w, r)
	if !ok {
		return
	}

	sess.Lock()
	data, err := sess.Ctrl.MarshalDraft()
	sess.Unlock()
	if err != nil {
		slog.Error("failed to marshal draft", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save draft")
		return
	}

	if err := h.drafts.Save(r.Context(), sess.ClientKey, data); err != nil {
		slog.Error("failed to save draft", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save draft")
		return
	}

	slog.Info("draft saved", "client_key", sess.ClientKey, "bytes", len(data))
	middleware.JSONResponse(w, http.StatusOK, models.DraftResponse{Saved: true})
}

// LoadDraft handles POST /sessions/{token}/draft/load
func (h *DraftHandler) LoadDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := lookupSession(h.registry, w, r)
	if !ok {
		return
	}

	data, err := h.drafts.Load(r.Context(), sess.ClientKey)
	if errors.Is(err, draft.ErrNoDraft) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No saved draft")
		return
	}
	if err != nil {
		slog.Error("failed to load draft", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load draft")
		return
	}

	sess.Lock()
	defer sess.Unlock()
	if err := sess.Ctrl.RestoreDraft(data); err != nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	slog.Info("draft restored", "client_key", sess.ClientKey, "step", sess.Ctrl.Step())
	middleware.JSONResponse(w, http.StatusOK, sess.Ctrl.Render())
}

// ClearDraft handles DELETE /sessions/{token}/draft. Clearing is the
// "start fresh" action: the slot is deleted and the session returns to
// step 1 with an empty answer map.
func (h *DraftHandler) ClearDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := lookupSession(h.registry, w, r)
	if !ok {
		return
	}

	if err := h.drafts.Delete(r.Context(), sess.ClientKey); err != nil {
		slog.Error("failed to clear draft", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to clear draft")
		return
	}

	sess.Lock()
	sess.Ctrl.Reset()
	sess.Unlock()

	slog.Info("draft cleared", "client_key", sess.ClientKey)
	w.WriteHeader(http.StatusNoContent)
}
