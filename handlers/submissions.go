// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/michallipa-df/ai-medical-form/middleware"
	"github.com/michallipa-df/ai-medical-form/models"
	"github.com/michallipa-df/ai-medical-form/session"
	"github.com/michallipa-df/ai-medical-form/submit"
	"github.com/michallipa-df/ai-medical-form/wizard"
)

// submissionJob tracks one in-flight or finished submission attempt.
type submissionJob struct {
	CaseID string
	Status string
	Result json.RawMessage
	Err    string
}

type SubmissionHandler struct {
	registry *session.Registry
	pipeline *submit.Pipeline

	mu   sync.Mutex
	jobs map[string]*submissionJob // session token -> latest job
}

func NewSubmissionHandler(registry *session.Registry, pipeline *submit.Pipeline) *SubmissionHandler {
	return &SubmissionHandler{
		registry: registry,
		pipeline: pipeline,
		jobs:     make(map[string]*submissionJob),
	}
}

// StartSubmission handles POST /sessions/{token}/submit. The exchange is
// asynchronous: this returns 202 with the case id once the envelope is
// built; the upload and result poll run in the background and are
// observed through GetSubmission.
func (h *SubmissionHandler) StartSubmission(w http.ResponseWriter, r *http.Request) {
	sess, ok := lookupSession(h.registry, w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	if job, running := h.jobs[sess.Token]; running && job.Status == models.SubmissionPending {
		h.mu.Unlock()
		middleware.ErrorResponse(w, http.StatusConflict, "A submission is already in progress")
		return
	}
	h.mu.Unlock()

	sess.Lock()
	if err := sess.Ctrl.SubmissionReady(time.Now()); err != nil {
		sess.Unlock()
		if errors.Is(err, wizard.ErrAuditRequired) {
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
			return
		}
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	snapshot := sess.Ctrl.Answers()
	sch := sess.Ctrl.Schema()
	sess.Unlock()

	caseID, err := submit.NewCaseID()
	if err != nil {
		slog.Error("failed to generate case id", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start submission")
		return
	}
	env := submit.BuildEnvelope(sch, snapshot, caseID)

	job := &submissionJob{CaseID: caseID, Status: models.SubmissionPending}
	h.mu.Lock()
	h.jobs[sess.Token] = job
	h.mu.Unlock()

	go h.run(job, env)

	slog.Info("submission started", "case_id", caseID, "client_key", sess.ClientKey)
	middleware.JSONResponse(w, http.StatusAccepted, models.SubmitResponse{
		CaseID: caseID,
		Status: models.SubmissionPending,
	})
}

// run drives the upload-then-poll pipeline and records the outcome. The
// request context is long gone by the time polling finishes, so the job
// runs on its own context bounded by the pipeline's own deadline.
func (h *SubmissionHandler) run(job *submissionJob, env submit.Envelope) {
	result, err := h.pipeline.Run(context.Background(), env)

	h.mu.Lock()
	defer h.mu.Unlock()
	if err != nil {
		job.Status = models.SubmissionFailed
		job.Err = submissionErrMessage(err)
		slog.Error("submission failed", "case_id", env.CaseID, "error", err)
		return
	}
	job.Status = models.SubmissionComplete
	job.Result = result
}

// submissionErrMessage maps pipeline sentinels to stable user-facing
// messages; each failure mode reads differently so the client can tell
// a lost upload from a slow backend.
func submissionErrMessage(err error) string {
	switch {
	case errors.Is(err, submit.ErrUpload):
		return "The submission could not be uploaded. Nothing was sent; please try again."
	case errors.Is(err, submit.ErrPollTimeout):
		return "The submission was uploaded but no result arrived in time. Check back later using your case id."
	case errors.Is(err, submit.ErrPoll):
		return "The submission was uploaded but checking for the result failed."
	default:
		return err.Error()
	}
}

// GetSubmission handles GET /sessions/{token}/submission
func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	sess, ok := lookupSession(h.registry, w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	job := h.jobs[sess.Token]
	h.mu.Unlock()
	if job == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "No submission for this session")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubmitResponse{
		CaseID: job.CaseID,
		Status: job.Status,
		Result: job.Result,
		Error:  job.Err,
	})
}

// Export handles GET /sessions/{token}/export: the envelope for the
// current answers as a downloadable document, without submitting.
func (h *SubmissionHandler) Export(w http.ResponseWriter, r *http.Request) {
	sess, ok := lookupSession(h.registry, w, r)
	if !ok {
		return
	}

	caseID, err := submit.NewCaseID()
	if err != nil {
		slog.Error("failed to generate case id", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export")
		return
	}

	sess.Lock()
	env := submit.BuildEnvelope(sess.Ctrl.Schema(), sess.Ctrl.Answers(), caseID)
	sess.Unlock()

	body, err := json.Marshal(env)
	if err != nil {
		slog.Error("failed to marshal envelope", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+caseID+`.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
