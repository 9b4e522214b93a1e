// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"strings"
	"testing"
)

func TestSinusitisSchemaIsWellFormed(t *testing.T) {
	s := Sinusitis()

	if s.Name() != DBQType {
		t.Errorf("Expected name %q, got %q", DBQType, s.Name())
	}
	if s.Steps() != 5 {
		t.Errorf("Expected 5 steps, got %d", s.Steps())
	}

	// Every step must have at least one field and a section title
	for step := 1; step <= s.Steps(); step++ {
		if len(s.StepFields(step)) == 0 {
			t.Errorf("Step %d has no fields", step)
		}
		if s.Section(step) == "" {
			t.Errorf("Step %d has no section title", step)
		}
	}
}

func TestFieldsThroughIsCumulative(t *testing.T) {
	s := Sinusitis()

	prev := 0
	for step := 1; step <= s.Steps(); step++ {
		n := len(s.FieldsThrough(step))
		if n <= prev {
			t.Errorf("FieldsThrough(%d) returned %d fields, want more than %d", step, n, prev)
		}
		prev = n
	}
	if prev != len(s.Fields()) {
		t.Errorf("FieldsThrough(last) returned %d fields, want all %d", prev, len(s.Fields()))
	}
}

func TestByID(t *testing.T) {
	s := Sinusitis()

	f, ok := s.ByID(FieldMedCount)
	if !ok {
		t.Fatal("Expected to find the medication count field")
	}
	if f.Step != 2 {
		t.Errorf("Expected step 2, got %d", f.Step)
	}
	if len(f.Options) == 0 {
		t.Error("Expected options on the count selector")
	}

	if _, ok := s.ByID("no-such-field"); ok {
		t.Error("Expected lookup of unknown id to fail")
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New("test", map[int]string{1: "One"}, []Field{
		{ID: "a", Step: 1, Kind: KindText},
		{ID: "a", Step: 1, Kind: KindText},
	})
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("Expected duplicate id error, got %v", err)
	}
}

func TestNewRejectsUnknownDependency(t *testing.T) {
	_, err := New("test", map[int]string{1: "One"}, []Field{
		{ID: "a", Step: 1, Kind: KindText,
			DependsOn: []Condition{{Field: "missing", AnyOf: []string{"Yes"}}}},
	})
	if err == nil {
		t.Error("Expected error for dependency on unknown field")
	}
}

func TestMedicationRowLabelsAreNumbered(t *testing.T) {
	s := Sinusitis()

	f, ok := s.ByID(FieldMed2Name)
	if !ok {
		t.Fatal("Expected to find medication row 2")
	}
	if !strings.Contains(f.Label, "#2") {
		t.Errorf("Expected row-numbered label, got %q", f.Label)
	}
}
