// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/michallipa-df/ai-medical-form/answers"
	"github.com/michallipa-df/ai-medical-form/oracle"
	"github.com/michallipa-df/ai-medical-form/schema"
	"github.com/michallipa-df/ai-medical-form/testutil"
	"github.com/michallipa-df/ai-medical-form/validate"
)

func newController(t *testing.T) (*Controller, *testutil.StubOracle) {
	t.Helper()
	stub := &testutil.StubOracle{}
	return New(schema.Sinusitis(), oracle.NewClient(stub)), stub
}

func set(t *testing.T, c *Controller, id schema.FieldID, v answers.Value) {
	t.Helper()
	if err := c.SetAnswer(id, v); err != nil {
		t.Fatalf("SetAnswer(%s) failed: %v", id, err)
	}
}

// fillStep answers the given step with minimal valid data.
func fillStep(t *testing.T, c *Controller, step int) {
	t.Helper()
	switch step {
	case 1:
		set(t, c, schema.FieldClaimType, answers.Text("Initial Claim"))
		set(t, c, schema.FieldHistory, answers.Text("Recurring infections since deployment in 2010."))
	case 2:
		set(t, c, schema.FieldMedTrigger, answers.Text("No"))
	case 3:
		set(t, c, schema.FieldServiceConn, answers.Text("No"))
	case 4:
		for _, id := range []schema.FieldID{
			"Sinusitis__c.Sinus_Q20__c", "Sinusitis__c.Sinus_Q35__c",
			"Sinusitis__c.Sinus_Q36__c", "Sinusitis__c.Sinus_Q36c__c",
			"Sinusitis__c.Sinus_Q36d__c", "Sinusitis__c.Sinus_Q36g__c",
			"Sinusitis__c.Sinus_Q38__c", "Sinusitis__c.Sinus_Q39__c",
			"Sinusitis__c.Sinus_Q30__c", "Sinusitis__c.Sinus_Q43__c",
		} {
			set(t, c, id, answers.Text("No"))
		}
	case 5:
		set(t, c, schema.FieldImpact, answers.Text("Flare-ups make sustained desk work difficult."))
		set(t, c, schema.FieldVeteranName, answers.Text("Jordan Smith"))
		set(t, c, schema.FieldDateSubmitted, answers.Text(time.Now().Format("01/02/2006")))
	}
}

// validateAndAdvance runs the happy path for the current step.
func validateAndAdvance(t *testing.T, c *Controller) {
	t.Helper()
	res := c.ValidateStep(context.Background())
	if !res.OK() {
		t.Fatalf("Step %d did not validate: %+v", c.Step(), res)
	}
	if err := c.Advance(); err != nil {
		t.Fatalf("Advance from step %d failed: %v", c.Step(), err)
	}
}

func TestOracleNotCalledOnDeterministicFailure(t *testing.T) {
	c, stub := newController(t)

	// Step 1 is empty, so the required rule blocks first.
	res := c.ValidateStep(context.Background())
	if res.Blocking == nil {
		t.Fatal("Expected a blocking error")
	}
	if stub.Calls != 0 {
		t.Errorf("Oracle consulted despite a deterministic failure (%d calls)", stub.Calls)
	}
	if err := c.Advance(); !errors.Is(err, ErrValidationRequired) {
		t.Errorf("Expected ErrValidationRequired, got %v", err)
	}
}

func TestAdvanceRequiresFreshValidation(t *testing.T) {
	c, _ := newController(t)

	if err := c.Advance(); !errors.Is(err, ErrValidationRequired) {
		t.Fatalf("Expected ErrValidationRequired before any validation, got %v", err)
	}

	fillStep(t, c, 1)
	res := c.ValidateStep(context.Background())
	if !res.OK() {
		t.Fatalf("Expected step 1 to pass, got %+v", res)
	}
	if err := c.Advance(); err != nil {
		t.Fatalf("Advance after a fresh PASS failed: %v", err)
	}
	if c.Step() != 2 {
		t.Errorf("Expected step 2, got %d", c.Step())
	}
}

func TestSnapshotInvalidatedByAnswerDrift(t *testing.T) {
	c, stub := newController(t)

	fillStep(t, c, 1)
	if res := c.ValidateStep(context.Background()); !res.OK() {
		t.Fatalf("Expected step 1 to pass, got %+v", res)
	}

	// Editing a validated answer must discard the PASS.
	set(t, c, schema.FieldHistory, answers.Text("Actually it started in 2012."))
	if err := c.Advance(); !errors.Is(err, ErrValidationRequired) {
		t.Fatalf("Expected a diverged snapshot to block, got %v", err)
	}

	// Re-validating against the edited answers unblocks with a fresh call.
	before := stub.Calls
	if res := c.ValidateStep(context.Background()); !res.OK() {
		t.Fatalf("Expected re-validation to pass, got %+v", res)
	}
	if stub.Calls != before+1 {
		t.Errorf("Expected a fresh oracle call, got %d extra", stub.Calls-before)
	}
	if err := c.Advance(); err != nil {
		t.Fatalf("Advance after re-validation failed: %v", err)
	}
}

func TestSemanticFailStoresHintAndBlocks(t *testing.T) {
	c, stub := newController(t)
	stub.Queue(oracle.Result{Status: oracle.StatusFail, Hint: "History mentions medications but none are listed."})

	fillStep(t, c, 1)
	res := c.ValidateStep(context.Background())
	if res.OK() {
		t.Fatal("Expected a semantic FAIL")
	}
	if c.PendingHint() == "" {
		t.Error("Expected the hint to be stored")
	}
	if err := c.Advance(); !errors.Is(err, ErrValidationRequired) {
		t.Errorf("Expected a FAIL to block advancing, got %v", err)
	}
}

func TestForceAdvanceOverridesSemanticOnly(t *testing.T) {
	c, stub := newController(t)
	stub.Queue(oracle.Result{Status: oracle.StatusFail, Hint: "Suspicious."})

	// Deterministic failures are never overridable.
	err := c.ForceAdvance()
	var blocking *validate.BlockingError
	if !errors.As(err, &blocking) {
		t.Fatalf("Expected a blocking error from an empty step, got %v", err)
	}
	if c.Step() != 1 {
		t.Errorf("ForceAdvance moved past a blocking error to step %d", c.Step())
	}

	fillStep(t, c, 1)
	if res := c.ValidateStep(context.Background()); res.OK() {
		t.Fatal("Expected the queued semantic FAIL")
	}
	if err := c.ForceAdvance(); err != nil {
		t.Fatalf("ForceAdvance over a semantic FAIL failed: %v", err)
	}
	if c.Step() != 2 {
		t.Errorf("Expected step 2, got %d", c.Step())
	}
	if c.Overrides() != 1 {
		t.Errorf("Expected 1 override, got %d", c.Overrides())
	}
}

func TestGoBackBoundaries(t *testing.T) {
	c, _ := newController(t)

	if err := c.GoBack(); !errors.Is(err, ErrFirstStep) {
		t.Errorf("Expected ErrFirstStep, got %v", err)
	}

	fillStep(t, c, 1)
	validateAndAdvance(t, c)
	if err := c.GoBack(); err != nil {
		t.Fatalf("GoBack failed: %v", err)
	}
	if c.Step() != 1 {
		t.Errorf("Expected step 1, got %d", c.Step())
	}
	// Going back discards the snapshot; advancing again needs validation.
	if err := c.Advance(); !errors.Is(err, ErrValidationRequired) {
		t.Errorf("Expected re-validation after going back, got %v", err)
	}
}

func TestFullWalkthroughAndSubmissionGate(t *testing.T) {
	c, _ := newController(t)

	for step := 1; step < c.Steps(); step++ {
		fillStep(t, c, step)
		validateAndAdvance(t, c)
	}
	fillStep(t, c, 5)

	// The final step has not been audited yet.
	if err := c.SubmissionReady(time.Now()); !errors.Is(err, ErrAuditRequired) {
		t.Fatalf("Expected ErrAuditRequired before the final audit, got %v", err)
	}

	if res := c.ValidateStep(context.Background()); !res.OK() {
		t.Fatalf("Expected the final audit to pass, got %+v", res)
	}
	if err := c.SubmissionReady(time.Now()); err != nil {
		t.Fatalf("Expected submission to be ready, got %v", err)
	}

	// Any edit anywhere in the form voids the audit.
	set(t, c, schema.FieldVeteranName, answers.Text("Jordan A. Smith"))
	if err := c.SubmissionReady(time.Now()); !errors.Is(err, ErrAuditRequired) {
		t.Errorf("Expected an edit to void the audit, got %v", err)
	}
}

func TestFinalOverrideUnlocksSubmission(t *testing.T) {
	c, stub := newController(t)

	for step := 1; step < c.Steps(); step++ {
		fillStep(t, c, step)
		validateAndAdvance(t, c)
	}
	fillStep(t, c, 5)

	stub.Queue(oracle.Result{Status: oracle.StatusFail, Hint: "Impact statement is vague."})
	if res := c.ValidateStep(context.Background()); res.OK() {
		t.Fatal("Expected the queued audit FAIL")
	}
	if err := c.SubmissionReady(time.Now()); !errors.Is(err, ErrAuditRequired) {
		t.Fatalf("Expected the failed audit to block, got %v", err)
	}

	if err := c.ForceAdvance(); err != nil {
		t.Fatalf("Final-step override failed: %v", err)
	}
	if c.Step() != c.Steps() {
		t.Errorf("A final-step override must not change the step, got %d", c.Step())
	}
	if err := c.SubmissionReady(time.Now()); err != nil {
		t.Errorf("Expected the override to unlock submission, got %v", err)
	}
}

func TestOverrideVoidedByAnswerDrift(t *testing.T) {
	c, stub := newController(t)

	for step := 1; step < c.Steps(); step++ {
		fillStep(t, c, step)
		validateAndAdvance(t, c)
	}
	fillStep(t, c, 5)

	stub.Queue(oracle.Result{Status: oracle.StatusFail, Hint: "Impact statement is vague."})
	if res := c.ValidateStep(context.Background()); res.OK() {
		t.Fatal("Expected the queued audit FAIL")
	}
	if err := c.ForceAdvance(); err != nil {
		t.Fatalf("Final-step override failed: %v", err)
	}
	if err := c.SubmissionReady(time.Now()); err != nil {
		t.Fatalf("Expected the override to unlock submission, got %v", err)
	}

	// An edit after the override voids it the same as it voids a PASS:
	// the overridden audit never saw the new answers.
	set(t, c, schema.FieldVeteranName, answers.Text("Jordan A. Smith"))
	if err := c.SubmissionReady(time.Now()); !errors.Is(err, ErrAuditRequired) {
		t.Fatalf("Expected the edit to void the override, got %v", err)
	}

	// A second override over the edited answers unlocks again.
	if err := c.ForceAdvance(); err != nil {
		t.Fatalf("Second override failed: %v", err)
	}
	if err := c.SubmissionReady(time.Now()); err != nil {
		t.Errorf("Expected the fresh override to unlock submission, got %v", err)
	}
}

func TestDraftRoundTrip(t *testing.T) {
	c, _ := newController(t)

	fillStep(t, c, 1)
	validateAndAdvance(t, c)
	set(t, c, schema.FieldMedTrigger, answers.Text("Yes"))
	set(t, c, schema.FieldMedCount, answers.Text("1"))

	data, err := c.MarshalDraft()
	if err != nil {
		t.Fatalf("MarshalDraft failed: %v", err)
	}

	restored, _ := newController(t)
	if err := restored.RestoreDraft(data); err != nil {
		t.Fatalf("RestoreDraft failed: %v", err)
	}
	if restored.Step() != 2 {
		t.Errorf("Expected restored step 2, got %d", restored.Step())
	}
	if !restored.Answers().Get(schema.FieldMedCount).Equal(answers.Text("1")) {
		t.Error("Restored answers do not match the saved draft")
	}

	// Restore arms the one-shot rebind flag, consumed by the first render.
	if state := restored.Render(); !state.Rebind {
		t.Error("Expected the first render after a restore to request a rebind")
	}
	if state := restored.Render(); state.Rebind {
		t.Error("Expected the rebind flag to be one-shot")
	}

	// A restore never carries validation credit.
	if err := restored.Advance(); !errors.Is(err, ErrValidationRequired) {
		t.Errorf("Expected a restored session to require validation, got %v", err)
	}
}

func TestDraftSaveIsIdempotent(t *testing.T) {
	c, _ := newController(t)
	fillStep(t, c, 1)

	first, err := c.MarshalDraft()
	if err != nil {
		t.Fatalf("MarshalDraft failed: %v", err)
	}
	second, err := c.MarshalDraft()
	if err != nil {
		t.Fatalf("MarshalDraft failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("Back-to-back saves with no edits should produce identical bytes")
	}
}

func TestRestoreRejectsCorruptDrafts(t *testing.T) {
	c, _ := newController(t)

	if err := c.RestoreDraft([]byte("not json")); err == nil {
		t.Error("Expected malformed JSON to be rejected")
	}
	if err := c.RestoreDraft([]byte(`{"step": 99, "answers": {}}`)); err == nil {
		t.Error("Expected an out-of-range step to be rejected")
	}
}

func TestSetAnswerRejectsUnknownField(t *testing.T) {
	c, _ := newController(t)
	if err := c.SetAnswer("no-such-field", answers.Text("x")); err == nil {
		t.Error("Expected an unknown field to be rejected")
	}
}
