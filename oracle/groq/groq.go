// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package groq implements the consistency-check oracle against Groq's
// OpenAI-compatible chat completions API, the provider the original
// auditor used.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/michallipa-df/ai-medical-form/oracle"
)

// DefaultURL is Groq's OpenAI-compatible completions endpoint.
const DefaultURL = "https://api.groq.com/openai/v1/chat/completions"

// DefaultModel matches the original auditor configuration.
const DefaultModel = "llama-3.3-70b-versatile"

type Engine struct {
	URL    string
	APIKey string
	Model  string
	httpc  *http.Client
}

func New(url, apiKey, model string) *Engine {
	if url == "" {
		url = DefaultURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Engine{
		URL:    url,
		APIKey: apiKey,
		Model:  model,
		httpc:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (e *Engine) Name() string { return "groq" }

func (e *Engine) Check(ctx context.Context, req oracle.CheckRequest) (oracle.Result, error) {
	if e.APIKey == "" {
		return oracle.Result{}, errors.New("GROQ_API_KEY is empty")
	}

	body := map[string]any{
		"model": e.Model,
		"messages": []any{
			map[string]any{"role": "system", "content": oracle.SystemPrompt},
			map[string]any{"role": "user", "content": oracle.UserPayload(req)},
		},
		"temperature":     0,
		"response_format": map[string]any{"type": "json_object"},
	}
	payload, _ := json.Marshal(body)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", e.URL, bytes.NewReader(payload))
	if err != nil {
		return oracle.Result{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.httpc.Do(httpReq)
	if err != nil {
		return oracle.Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return oracle.Result{}, fmt.Errorf("groq %d: %s", resp.StatusCode, string(b))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return oracle.Result{}, fmt.Errorf("groq response decode: %w", err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return oracle.Result{}, errors.New("groq: empty completion")
	}

	return oracle.ParseVerdict(out.Choices[0].Message.Content), nil
}
