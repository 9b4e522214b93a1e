package models

import "encoding/json"

// Submission status constants
const (
	SubmissionPending  = "pending"
	SubmissionComplete = "complete"
	SubmissionFailed   = "failed"
)

// Request types

type CreateSessionRequest struct {
	ClientKey string `json:"client_key"`
}

type SetAnswersRequest struct {
	Answers map[string]json.RawMessage `json:"answers"`
}

// Response types

type CreateSessionResponse struct {
	SessionToken string `json:"session_token"`
	Step         int    `json:"step"`
	Steps        int    `json:"steps"`
}

type ValidateResponse struct {
	OK       bool   `json:"ok"`
	Blocking string `json:"blocking,omitempty"`
	Field    string `json:"field,omitempty"`
	Verdict  string `json:"verdict,omitempty"`
	Hint     string `json:"hint,omitempty"`
}

type DraftResponse struct {
	Saved bool `json:"saved"`
}

type SubmitResponse struct {
	CaseID string          `json:"case_id"`
	Status string          `json:"status"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
