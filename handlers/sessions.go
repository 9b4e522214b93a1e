// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/michallipa-df/ai-medical-form/middleware"
	"github.com/michallipa-df/ai-medical-form/models"
	"github.com/michallipa-df/ai-medical-form/oracle"
	"github.com/michallipa-df/ai-medical-form/schema"
	"github.com/michallipa-df/ai-medical-form/session"
	"github.com/michallipa-df/ai-medical-form/wizard"
)

type SessionHandler struct {
	registry *session.Registry
	schema   *schema.Schema
	oracle   *oracle.Client
}

func NewSessionHandler(registry *session.Registry, s *schema.Schema, client *oracle.Client) *SessionHandler {
	return &SessionHandler{registry: registry, schema: s, oracle: client}
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ClientKey == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "client_key is required")
		return
	}

	ctrl := wizard.New(h.schema, h.oracle)
	sess, err := h.registry.Create(req.ClientKey, ctrl)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("session created", "client_key", req.ClientKey)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionToken: sess.Token,
		Step:         ctrl.Step(),
		Steps:        ctrl.Steps(),
	})
}

// DeleteSession handles DELETE /sessions/{token}
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if _, err := h.registry.Get(token); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	h.registry.Delete(token)
	w.WriteHeader(http.StatusNoContent)
}

// lookupSession resolves the {token} path value to a live session,
// writing the 404 itself when missing.
func lookupSession(registry *session.Registry, w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := registry.Get(r.PathValue("token"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return sess, true
}
