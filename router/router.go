// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/michallipa-df/ai-medical-form/draft"
	"github.com/michallipa-df/ai-medical-form/handlers"
	"github.com/michallipa-df/ai-medical-form/middleware"
	"github.com/michallipa-df/ai-medical-form/oracle"
	"github.com/michallipa-df/ai-medical-form/schema"
	"github.com/michallipa-df/ai-medical-form/session"
	"github.com/michallipa-df/ai-medical-form/submit"
)

func NewRouter(s *schema.Schema, client *oracle.Client, drafts draft.Store, pipeline *submit.Pipeline) *http.ServeMux {
	mux := http.NewServeMux()

	registry := session.NewRegistry()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(registry, s, client)
	wizardHandler := handlers.NewWizardHandler(registry)
	draftHandler := handlers.NewDraftHandler(registry, drafts)
	submissionHandler := handlers.NewSubmissionHandler(registry, pipeline)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session lifecycle
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("DELETE /sessions/{token}", middleware.WithLogging(sessionHandler.DeleteSession))

	// Wizard navigation
	mux.HandleFunc("GET /sessions/{token}/step", middleware.WithLogging(wizardHandler.GetStep))
	mux.HandleFunc("PUT /sessions/{token}/answers", middleware.WithLogging(wizardHandler.SetAnswers))
	mux.HandleFunc("POST /sessions/{token}/validate", middleware.WithLogging(wizardHandler.Validate))
	mux.HandleFunc("POST /sessions/{token}/advance", middleware.WithLogging(wizardHandler.Advance))
	mux.HandleFunc("POST /sessions/{token}/force-advance", middleware.WithLogging(wizardHandler.ForceAdvance))
	mux.HandleFunc("POST /sessions/{token}/back", middleware.WithLogging(wizardHandler.Back))

	// Drafts
	mux.HandleFunc("POST /sessions/{token}/draft", middleware.WithLogging(draftHandler.SaveDraft))
	mux.HandleFunc("POST /sessions/{token}/draft/load", middleware.WithLogging(draftHandler.LoadDraft))
	mux.HandleFunc("DELETE /sessions/{token}/draft", middleware.WithLogging(draftHandler.ClearDraft))

	// Submission
	mux.HandleFunc("POST /sessions/{token}/submit", middleware.WithLogging(submissionHandler.StartSubmission))
	mux.HandleFunc("GET /sessions/{token}/submission", middleware.WithLogging(submissionHandler.GetSubmission))
	mux.HandleFunc("GET /sessions/{token}/export", middleware.WithLogging(submissionHandler.Export))

	return mux
}
