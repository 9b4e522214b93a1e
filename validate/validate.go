// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate implements the deterministic, oracle-free validation rules.

Step validation is a pure function of the answer map: fields are checked in
schema order and the first violated constraint wins, so error messages are
reproducible for a given input. Constraint classes:

  - required-selection: a visible required field must carry a real answer
    (sentinel placeholders were already canonicalized to Unanswered)
  - cross-field count consistency: the medication and surgery count
    selectors make exactly that many detail rows visible and required, so
    a count of "2" with one name filled in fails on row #2's name
  - fixed-format strings: surgery dates match MM/YYYY, full dates match
    MM/DD/YYYY, and the submission date must equal the current calendar
    date at validation time
  - non-gibberish heuristics: a value consisting solely of digits is
    rejected where prose is expected (dosage, frequency), and narrative
    fields must carry a minimum amount of trimmed text

Deterministic failures are hard blockers. They are never bypassable and are
resolved only by correcting the data.
*/
package validate

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/michallipa-df/ai-medical-form/answers"
	"github.com/michallipa-df/ai-medical-form/schema"
)

// BlockingError is a deterministic rule violation. It cites the first
// violated constraint and the field that triggered it.
type BlockingError struct {
	Field   schema.FieldID
	Message string
}

func (e *BlockingError) Error() string { return e.Message }

var (
	patternCacheMu sync.Mutex
	patternCache   = map[string]*regexp.Regexp{}

	digitsOnly = regexp.MustCompile(`^[0-9]+$`)
)

func compiled(pattern string) *regexp.Regexp {
	patternCacheMu.Lock()
	defer patternCacheMu.Unlock()
	re, ok := patternCache[pattern]
	if !ok {
		re = regexp.MustCompile(pattern)
		patternCache[pattern] = re
	}
	return re
}

// Step checks the visible fields of one step in schema order and returns
// the first violation, or nil when the step passes. now supplies the
// calendar date for pinned date fields.
func Step(s *schema.Schema, step int, m answers.Map, now time.Time) *BlockingError {
	for _, f := range answers.VisibleFields(s, step, m) {
		if err := checkField(f, m.Get(f.ID), now); err != nil {
			return err
		}
	}
	return nil
}

// WholeForm checks every step. Used as the final gate before submission.
func WholeForm(s *schema.Schema, m answers.Map, now time.Time) *BlockingError {
	for step := 1; step <= s.Steps(); step++ {
		if err := Step(s, step, m, now); err != nil {
			return err
		}
	}
	return nil
}

func checkField(f schema.Field, v answers.Value, now time.Time) *BlockingError {
	if !v.IsAnswered() {
		if f.Required {
			return &BlockingError{Field: f.ID, Message: f.Label + " is required"}
		}
		return nil
	}

	if f.Pattern != "" {
		if !compiled(f.Pattern).MatchString(v.Text()) {
			return &BlockingError{Field: f.ID, Message: f.Label + " must match the format " + f.PatternHint}
		}
	}
	if f.PinnedToToday {
		if v.Text() != now.Format("01/02/2006") {
			return &BlockingError{Field: f.ID, Message: f.Label + " must be today's date (" + now.Format("01/02/2006") + ")"}
		}
	}
	if f.NoDigitsOnly && digitsOnly.MatchString(v.Text()) {
		return &BlockingError{Field: f.ID, Message: f.Label + " cannot be only digits"}
	}
	if f.MinLength > 0 && len(strings.TrimSpace(v.Text())) < f.MinLength {
		return &BlockingError{Field: f.ID, Message: f.Label + " needs more detail"}
	}
	if len(f.Options) > 0 {
		if err := checkOptions(f, v); err != nil {
			return err
		}
	}
	return nil
}

func checkOptions(f schema.Field, v answers.Value) *BlockingError {
	allowed := make(map[string]bool, len(f.Options))
	for _, o := range f.Options {
		allowed[o] = true
	}
	if f.Kind == schema.KindMultiSelect {
		for _, it := range v.List() {
			if !allowed[it] {
				return &BlockingError{Field: f.ID, Message: f.Label + " has an unrecognized selection: " + it}
			}
		}
		return nil
	}
	if !allowed[v.Text()] {
		return &BlockingError{Field: f.ID, Message: f.Label + " has an unrecognized selection: " + v.Text()}
	}
	return nil
}
