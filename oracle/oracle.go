// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package oracle defines the semantic consistency check: an external reasoning
service that judges a section's answers against a free-text policy and
returns PASS, or FAIL with a human-readable hint.

The transport contract is strict JSON: {"status": "PASS"|"FAIL", "hint": "..."}.
Engines (oracle/groq, oracle/gemini) talk to a concrete provider; Client
wraps an Engine and guarantees that nothing escapes the boundary: transport
failures, non-200 responses, and undecodable output all normalize to a FAIL
whose hint explains the degraded confidence. Semantic findings are therefore
always advisory from the caller's perspective, never exceptions.
*/
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
)

// Statuses an engine may report.
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// Item is one field of the answer snapshot sent to the oracle, in schema
// order.
type Item struct {
	Key      string
	Question string
	Answer   any
}

// CheckRequest carries one consistency check: the section under review,
// the free-text policy to enforce, and the ordered answer snapshot.
type CheckRequest struct {
	Section string
	Rules   string
	Data    []Item
}

// Result is the normalized oracle verdict.
type Result struct {
	Status string `json:"status"`
	Hint   string `json:"hint"`
}

// Pass reports whether the verdict allows advancing without a hint.
func (r Result) Pass() bool { return r.Status == StatusPass }

// Engine performs a consistency check against one provider. Engines may
// return transport or decode errors; Client normalizes them.
type Engine interface {
	Name() string
	Check(ctx context.Context, req CheckRequest) (Result, error)
}

// Client wraps an Engine and seals the error boundary: every failure mode
// becomes a FAIL verdict with a descriptive hint.
type Client struct {
	engine Engine
}

func NewClient(engine Engine) *Client {
	return &Client{engine: engine}
}

// Check runs the consistency check. It never returns an error: on engine
// failure the result is FAIL with a connectivity hint so the wizard can
// surface it as an advisory finding rather than deadlock on an outage.
func (c *Client) Check(ctx context.Context, req CheckRequest) Result {
	res, err := c.engine.Check(ctx, req)
	if err != nil {
		slog.Error("oracle check failed", "engine", c.engine.Name(), "section", req.Section, "error", err)
		return Result{
			Status: StatusFail,
			Hint:   "The consistency check could not be completed (" + err.Error() + "). Review this section manually or retry.",
		}
	}
	return res
}

// SystemPrompt is the instruction shared by all engines. Derived from the
// original auditor prompt: reconciliation only, no summaries, strict JSON.
const SystemPrompt = `You are a medical claims data auditor performing strict data reconciliation.
You are given a form section name, a list of audit rules, and the applicant's answers.
Cross-check the answers against the rules and against each other. Flag contradictions,
counts that do not match narrative text, symptoms described but not selected, and
vague or empty descriptions where detail is required. Do not summarize, do not
editorialize, and do not invent findings.

Respond with STRICT JSON and nothing else:
{"status": "PASS", "hint": ""} when the answers are consistent, or
{"status": "FAIL", "hint": "<one short sentence naming the specific problem>"} otherwise.`

// UserPayload renders the request as the user-turn text: section, rules,
// then the answer snapshot as a JSON object whose keys keep schema order.
func UserPayload(req CheckRequest) string {
	var b strings.Builder
	b.WriteString("SECTION: ")
	b.WriteString(req.Section)
	b.WriteString("\n\nRULES:\n")
	b.WriteString(req.Rules)
	b.WriteString("\n\nANSWERS:\n")
	b.Write(encodeData(req.Data))
	return b.String()
}

// encodeData marshals the snapshot as an ordered JSON object by hand;
// encoding/json would sort map keys and lose the schema ordering.
func encodeData(items []Item) []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, it := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(it.Key)
		question, _ := json.Marshal(it.Question)
		answer, _ := json.Marshal(it.Answer)
		buf.Write(key)
		buf.WriteString(`:{"question":`)
		buf.Write(question)
		buf.WriteString(`,"answer":`)
		buf.Write(answer)
		buf.WriteString("}")
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// ParseVerdict decodes an engine's raw text into a Result. Output that is
// not the expected JSON is treated as FAIL with the raw text surfaced as
// the hint, per the tolerance contract.
func ParseVerdict(raw string) Result {
	text := StripCodeFences(strings.TrimSpace(raw))
	var res Result
	if err := json.Unmarshal([]byte(text), &res); err != nil {
		return Result{Status: StatusFail, Hint: text}
	}
	res.Status = strings.ToUpper(strings.TrimSpace(res.Status))
	if res.Status != StatusPass && res.Status != StatusFail {
		return Result{Status: StatusFail, Hint: text}
	}
	return res
}

// StripCodeFences removes a surrounding markdown code fence if present.
// Models occasionally wrap JSON output despite instructions.
func StripCodeFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
