// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submit

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/michallipa-df/ai-medical-form/answers"
	"github.com/michallipa-df/ai-medical-form/schema"
)

// Entry is one field of the envelope: the question label and the
// normalized answer (null when hidden or unanswered).
type Entry struct {
	FieldID  schema.FieldID
	Question string
	Answer   answers.Value
}

// Envelope is the final tagged, ordered document uploaded for processing:
//
//	{"caseID": "...", "DBQType": "...", "DPA": {<field>: {"Question": ..., "Answer": ...}, ...}}
//
// DPA keys are emitted in exact FieldSchema order, every field present
// regardless of visibility, so the downstream consumer always sees the
// same document shape.
type Envelope struct {
	CaseID  string
	DBQType string
	DPA     []Entry
}

// NewCaseID generates a fresh 6-digit numeric case identifier. Collisions
// are not checked; the downstream store is namespaced per submission
// attempt.
func NewCaseID() (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("failed to generate case id: %w", err)
	}
	n := binary.BigEndian.Uint64(b[:]) % 1000000
	return fmt.Sprintf("%06d", n), nil
}

// BuildEnvelope assembles the submission document for the given answers.
// Fields hidden by their visibility predicates are emitted with a null
// answer even when a stale value is still stored for them.
func BuildEnvelope(s *schema.Schema, m answers.Map, caseID string) Envelope {
	env := Envelope{
		CaseID:  caseID,
		DBQType: s.Name(),
		DPA:     make([]Entry, 0, len(s.Fields())),
	}
	for _, f := range s.Fields() {
		answer := answers.Unanswered
		if answers.Visible(f, m) {
			answer = m.Get(f.ID)
		}
		env.DPA = append(env.DPA, Entry{FieldID: f.ID, Question: f.Label, Answer: answer})
	}
	return env
}

// MarshalJSON writes the DPA object by hand: encoding/json sorts map keys,
// and the export contract requires FieldSchema order.
func (e Envelope) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"caseID":`)
	writeJSON(&buf, e.CaseID)
	buf.WriteString(`,"DBQType":`)
	writeJSON(&buf, e.DBQType)
	buf.WriteString(`,"DPA":{`)
	for i, entry := range e.DPA {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSON(&buf, string(entry.FieldID))
		buf.WriteString(`:{"Question":`)
		writeJSON(&buf, entry.Question)
		buf.WriteString(`,"Answer":`)
		writeJSON(&buf, entry.Answer)
		buf.WriteString("}")
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		// Only reachable for values that cannot marshal; the envelope
		// holds strings and answers.Value, both always marshalable.
		b = []byte("null")
	}
	buf.Write(b)
}
