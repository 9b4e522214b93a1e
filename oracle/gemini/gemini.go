// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package gemini implements the consistency-check oracle on Google Gemini
// via the generative-ai-go SDK, constrained to JSON output.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/michallipa-df/ai-medical-form/oracle"
)

// DefaultModel is a sensible low-latency default for audit checks.
const DefaultModel = "gemini-2.5-flash"

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	if model == "" {
		model = DefaultModel
	}
	return &Engine{APIKey: strings.TrimSpace(apiKey), Model: model}
}

func (e *Engine) Name() string { return "gemini" }

func (e *Engine) Check(ctx context.Context, req oracle.CheckRequest) (oracle.Result, error) {
	if e.APIKey == "" {
		return oracle.Result{}, errors.New("GEMINI_API_KEY is empty")
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return oracle.Result{}, err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(oracle.SystemPrompt)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(oracle.UserPayload(req)))
	if err != nil {
		return oracle.Result{}, err
	}
	txt := firstText(resp)
	if txt == "" {
		return oracle.Result{}, fmt.Errorf("gemini: empty response")
	}

	return oracle.ParseVerdict(txt), nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok && strings.TrimSpace(string(t)) != "" {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
