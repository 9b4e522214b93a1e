// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/michallipa-df/ai-medical-form/answers"
	"github.com/michallipa-df/ai-medical-form/middleware"
	"github.com/michallipa-df/ai-medical-form/models"
	"github.com/michallipa-df/ai-medical-form/schema"
	"github.com/michallipa-df/ai-medical-form/session"
	"github.com/michallipa-df/ai-medical-form/validate"
	"github.com/michallipa-df/ai-medical-form/wizard"
)

type WizardHandler struct {
	registry *session.Registry
}

func NewWizardHandler(registry *session.Registry) *WizardHandler {
	return &WizardHandler{registry: registry}
}

// GetStep handles GET /sessions/{token}/step
func (h *WizardHandler) GetStep(w http.ResponseWriter, r *http.Request) {
	sess, ok := lookupSession(h.registry, w, r)
	if !ok {
		return
	}

	sess.Lock()
	state := sess.Ctrl.Render()
	sess.Unlock()

	middleware.JSONResponse(w, http.StatusOK, state)
}

// SetAnswers handles PUT /sessions/{token}/answers
func (h *WizardHandler) SetAnswers(w http.ResponseWriter, r *http.Request) {
	sess, ok := lookupSession(h.registry, w, r)
	if !ok {
		return
	}

	var req models.SetAnswersRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	// Check the whole batch before applying any of it, so a bad entry
	// never leaves the session with a partial update.
	parsed := make(map[schema.FieldID]answers.Value, len(req.Answers))
	for key, raw := range req.Answers {
		var v answers.Value
		if err := v.UnmarshalJSON(raw); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "invalid value for "+key)
			return
		}
		if _, ok := sess.Ctrl.Schema().ByID(schema.FieldID(key)); !ok {
			middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown field %q", key))
			return
		}
		parsed[schema.FieldID(key)] = v
	}
	for id, v := range parsed {
		if err := sess.Ctrl.SetAnswer(id, v); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	middleware.JSONResponse(w, http.StatusOK, sess.Ctrl.Render())
}

// Validate handles POST /sessions/{token}/validate
func (h *WizardHandler) Validate(w http.ResponseWriter, r *http.Request) {
	sess, ok := lookupSession(h.registry, w, r)
	if !ok {
		return
	}

	sess.Lock()
	res := sess.Ctrl.ValidateStep(r.Context())
	sess.Unlock()

	resp := models.ValidateResponse{OK: res.OK()}
	if res.Blocking != nil {
		resp.Blocking = res.Blocking.Message
		resp.Field = string(res.Blocking.Field)
	}
	if res.Verdict != nil {
		resp.Verdict = res.Verdict.Status
		resp.Hint = res.Verdict.Hint
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Advance handles POST /sessions/{token}/advance
func (h *WizardHandler) Advance(w http.ResponseWriter, r *http.Request) {
	sess, ok := lookupSession(h.registry, w, r)
	if !ok {
		return
	}

	sess.Lock()
	defer sess.Unlock()
	if err := sess.Ctrl.Advance(); err != nil {
		status := http.StatusConflict
		if errors.Is(err, wizard.ErrLastStep) {
			status = http.StatusUnprocessableEntity
		}
		middleware.ErrorResponse(w, status, err.Error())
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sess.Ctrl.Render())
}

// ForceAdvance handles POST /sessions/{token}/force-advance
func (h *WizardHandler) ForceAdvance(w http.ResponseWriter, r *http.Request) {
	sess, ok := lookupSession(h.registry, w, r)
	if !ok {
		return
	}

	sess.Lock()
	defer sess.Unlock()
	if err := sess.Ctrl.ForceAdvance(); err != nil {
		var blocking *validate.BlockingError
		if errors.As(err, &blocking) {
			middleware.ErrorResponse(w, http.StatusUnprocessableEntity, blocking.Message)
			return
		}
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sess.Ctrl.Render())
}

// Back handles POST /sessions/{token}/back
func (h *WizardHandler) Back(w http.ResponseWriter, r *http.Request) {
	sess, ok := lookupSession(h.registry, w, r)
	if !ok {
		return
	}

	sess.Lock()
	defer sess.Unlock()
	if err := sess.Ctrl.GoBack(); err != nil {
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sess.Ctrl.Render())
}
