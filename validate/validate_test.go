// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/michallipa-df/ai-medical-form/answers"
	"github.com/michallipa-df/ai-medical-form/schema"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestRequiredFieldBlocks(t *testing.T) {
	s := schema.Sinusitis()
	m := make(answers.Map)

	err := Step(s, 1, m, now)
	if err == nil {
		t.Fatal("Expected a blocking error on an empty step")
	}
	if err.Field != schema.FieldClaimType {
		t.Errorf("Expected the claim type to block first, got %s", err.Field)
	}
	if !strings.Contains(err.Message, "required") {
		t.Errorf("Expected a required message, got %q", err.Message)
	}
}

func TestHiddenFieldsAreSkipped(t *testing.T) {
	s := schema.Sinusitis()
	m := make(answers.Map)
	m.Set(schema.FieldClaimType, answers.Text("Initial Claim"))
	m.Set(schema.FieldHistory, answers.Text("Symptoms began during basic training in 2008."))
	m.Set(schema.FieldMedTrigger, answers.Text("No"))

	// The count selector and all medication rows depend on a Yes trigger,
	// so a No answer must validate clean with none of them filled in.
	if err := Step(s, 2, m, now); err != nil {
		t.Errorf("Expected step 2 to pass with medications declined, got %q", err.Message)
	}
}

func TestCountConsistency(t *testing.T) {
	s := schema.Sinusitis()
	m := make(answers.Map)
	m.Set(schema.FieldClaimType, answers.Text("Initial Claim"))
	m.Set(schema.FieldMedTrigger, answers.Text("Yes"))
	m.Set(schema.FieldMedCount, answers.Text("2"))
	m.Set(schema.FieldMed1Name, answers.Text("Flonase"))
	m.Set(schema.FieldMed1Dosage, answers.Text("50mcg spray"))
	m.Set(schema.FieldMed1Freq, answers.Text("Twice daily"))

	// Count says two medications but only row 1 is filled in.
	err := Step(s, 2, m, now)
	if err == nil {
		t.Fatal("Expected row 2 to block")
	}
	if err.Field != schema.FieldMed2Name {
		t.Errorf("Expected the row 2 name to block, got %s", err.Field)
	}
	if !strings.Contains(err.Message, "#2") {
		t.Errorf("Expected the message to cite row 2, got %q", err.Message)
	}
}

func TestDigitsOnlyRejectedForDosage(t *testing.T) {
	s := schema.Sinusitis()
	m := make(answers.Map)
	m.Set(schema.FieldClaimType, answers.Text("Initial Claim"))
	m.Set(schema.FieldMedTrigger, answers.Text("Yes"))
	m.Set(schema.FieldMedCount, answers.Text("1"))
	m.Set(schema.FieldMed1Name, answers.Text("Flonase"))
	m.Set(schema.FieldMed1Dosage, answers.Text("12345"))
	m.Set(schema.FieldMed1Freq, answers.Text("Twice daily"))

	err := Step(s, 2, m, now)
	if err == nil {
		t.Fatal("Expected a digits-only dosage to block")
	}
	if err.Field != schema.FieldMed1Dosage {
		t.Errorf("Expected the dosage to block, got %s", err.Field)
	}
	if !strings.Contains(err.Message, "digits") {
		t.Errorf("Expected a digits message, got %q", err.Message)
	}
}

func TestSurgeryDateFormat(t *testing.T) {
	s := schema.Sinusitis()
	m := baseStep3(t)
	m.Set(schema.FieldSurgTrigger, answers.Text("Yes"))
	m.Set(schema.FieldSurgCount, answers.Text("1"))
	m.Set("Sinusitis__c.Sinus_Q17aaa__c", answers.Text("March 2019"))

	err := Step(s, 3, m, now)
	if err == nil {
		t.Fatal("Expected a malformed surgery date to block")
	}
	if err.Field != "Sinusitis__c.Sinus_Q17aaa__c" {
		t.Errorf("Expected the surgery date to block, got %s", err.Field)
	}
	if !strings.Contains(err.Message, "MM/YYYY") {
		t.Errorf("Expected the format hint, got %q", err.Message)
	}

	m.Set("Sinusitis__c.Sinus_Q17aaa__c", answers.Text("03/2019"))
	err = Step(s, 3, m, now)
	if err != nil && err.Field == "Sinusitis__c.Sinus_Q17aaa__c" {
		t.Errorf("A well-formed date should not block, got %q", err.Message)
	}
}

func TestPinnedDateMustBeToday(t *testing.T) {
	s := schema.Sinusitis()
	m := make(answers.Map)
	m.Set("Sinusitis__c.Sinus_Q21__c", answers.Text("Hard to concentrate at work during flare-ups."))
	m.Set(schema.FieldVeteranName, answers.Text("Jordan Smith"))
	m.Set(schema.FieldDateSubmitted, answers.Text("06/14/2025"))

	err := Step(s, 5, m, now)
	if err == nil {
		t.Fatal("Expected yesterday's date to block")
	}
	if err.Field != schema.FieldDateSubmitted {
		t.Errorf("Expected the submission date to block, got %s", err.Field)
	}

	m.Set(schema.FieldDateSubmitted, answers.Text("06/15/2025"))
	if err := Step(s, 5, m, now); err != nil {
		t.Errorf("Expected today's date to pass, got %q", err.Message)
	}
}

func TestNarrativeMinimumLength(t *testing.T) {
	s := schema.Sinusitis()
	m := make(answers.Map)
	m.Set(schema.FieldClaimType, answers.Text("Initial Claim"))
	m.Set(schema.FieldHistory, answers.Text("sinus bad"))

	err := Step(s, 1, m, now)
	if err == nil {
		t.Fatal("Expected a too-brief history to block")
	}
	if err.Field != schema.FieldHistory {
		t.Errorf("Expected the history to block, got %s", err.Field)
	}
	if !strings.Contains(err.Message, "detail") {
		t.Errorf("Expected a needs-more-detail message, got %q", err.Message)
	}

	m.Set(schema.FieldHistory, answers.Text("Symptoms began during basic training in 2008."))
	if err := Step(s, 1, m, now); err != nil {
		t.Errorf("Expected a full narrative to pass, got %q", err.Message)
	}
}

func TestUnrecognizedSelectionBlocks(t *testing.T) {
	s := schema.Sinusitis()
	m := make(answers.Map)
	m.Set(schema.FieldClaimType, answers.Text("Appeal"))

	err := Step(s, 1, m, now)
	if err == nil {
		t.Fatal("Expected an off-menu selection to block")
	}
	if !strings.Contains(err.Message, "unrecognized") {
		t.Errorf("Expected an unrecognized-selection message, got %q", err.Message)
	}
}

// baseStep3 fills the step 3 symptom battery with minimal valid answers
// and no surgeries.
func baseStep3(t *testing.T) answers.Map {
	t.Helper()
	m := make(answers.Map)
	m.Set(schema.FieldClaimType, answers.Text("Initial Claim"))
	m.Set(schema.FieldServiceConn, answers.Text("Yes"))
	m.Set("Sinusitis__c.Sinus_Q34__c", answers.List([]string{"Maxillary"}))
	m.Set(schema.FieldSymptoms, answers.List([]string{"Sinus pain"}))
	m.Set(schema.FieldSymptomDetail, answers.Text("Pressure behind the cheekbones most mornings."))
	m.Set("Sinusitis__c.Sinus_Q15__c", answers.Text("3"))
	m.Set(schema.FieldIncapEpisodes, answers.Text("0"))
	m.Set(schema.FieldSurgTrigger, answers.Text("No"))
	return m
}
