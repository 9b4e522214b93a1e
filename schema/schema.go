// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import "fmt"

// FieldID identifies a single question in the form.
type FieldID string

// Field kinds
const (
	KindSelect      = "select"
	KindRadio       = "radio"
	KindText        = "text"
	KindTextArea    = "textarea"
	KindMultiSelect = "multiselect"
	KindDate        = "date"
)

// Condition gates a field's visibility on another field's value.
// Exactly one of AnyOf or Contains is set: AnyOf matches a single-valued
// answer against a set, Contains matches an item of a multi-valued answer.
type Condition struct {
	Field    FieldID
	AnyOf    []string
	Contains string
}

// Field describes one question: its identity, label, step assignment,
// visibility conditions and deterministic constraints.
type Field struct {
	ID      FieldID
	Label   string
	Step    int
	Kind    string
	Options []string

	// Visibility: the field renders only when every condition holds.
	// An empty slice means always visible.
	DependsOn []Condition

	// Deterministic constraints, enforced only while the field is visible.
	Required      bool
	Pattern       string // regexp the answer must match (date formats)
	PatternHint   string // human-readable form of Pattern for error messages
	NoDigitsOnly  bool   // reject answers consisting solely of digits
	PinnedToToday bool   // date must equal the current calendar date
	MinLength     int    // minimum trimmed length for narrative text
}

// Schema is an immutable ordered field list with per-step groupings.
type Schema struct {
	name     string
	fields   []Field
	byID     map[FieldID]int
	steps    int
	sections map[int]string
}

// New builds a Schema from an ordered field list. Field ids must be unique
// and step numbers contiguous from 1.
func New(name string, sections map[int]string, fields []Field) (*Schema, error) {
	s := &Schema{
		name:     name,
		fields:   fields,
		byID:     make(map[FieldID]int, len(fields)),
		sections: sections,
	}
	for i, f := range fields {
		if _, dup := s.byID[f.ID]; dup {
			return nil, fmt.Errorf("duplicate field id %q", f.ID)
		}
		if f.Step < 1 {
			return nil, fmt.Errorf("field %q has invalid step %d", f.ID, f.Step)
		}
		s.byID[f.ID] = i
		if f.Step > s.steps {
			s.steps = f.Step
		}
	}
	for _, f := range fields {
		for _, c := range f.DependsOn {
			if _, ok := s.byID[c.Field]; !ok {
				return nil, fmt.Errorf("field %q depends on unknown field %q", f.ID, c.Field)
			}
		}
	}
	return s, nil
}

// Name returns the schema's form type tag (e.g. the DBQ name).
func (s *Schema) Name() string { return s.name }

// Steps returns the number of wizard steps.
func (s *Schema) Steps() int { return s.steps }

// Section returns the human-readable section name for a step.
func (s *Schema) Section(step int) string { return s.sections[step] }

// Fields returns all fields in canonical order.
func (s *Schema) Fields() []Field { return s.fields }

// StepFields returns the fields of one step in canonical order.
func (s *Schema) StepFields(step int) []Field {
	var out []Field
	for _, f := range s.fields {
		if f.Step == step {
			out = append(out, f)
		}
	}
	return out
}

// FieldsThrough returns the fields of steps 1..step in canonical order.
func (s *Schema) FieldsThrough(step int) []Field {
	var out []Field
	for _, f := range s.fields {
		if f.Step <= step {
			out = append(out, f)
		}
	}
	return out
}

// ByID looks up a field by id.
func (s *Schema) ByID(id FieldID) (Field, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Label returns the label for a field id, or the id itself when unknown.
func (s *Schema) Label(id FieldID) string {
	if f, ok := s.ByID(id); ok {
		return f.Label
	}
	return string(id)
}
