// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/michallipa-df/ai-medical-form/draft"
	"github.com/michallipa-df/ai-medical-form/models"
	"github.com/michallipa-df/ai-medical-form/oracle"
	"github.com/michallipa-df/ai-medical-form/router"
	"github.com/michallipa-df/ai-medical-form/schema"
	"github.com/michallipa-df/ai-medical-form/submit"
	"github.com/michallipa-df/ai-medical-form/testutil"
	"github.com/michallipa-df/ai-medical-form/wizard"
)

type env struct {
	mux    *http.ServeMux
	stub   *testutil.StubOracle
	store  *testutil.MemObjectStore
	drafts *draft.MemStore
}

func setup(t *testing.T) *env {
	t.Helper()
	stub := &testutil.StubOracle{}
	store := testutil.NewMemObjectStore()
	drafts := draft.NewMemStore()
	pipeline := &submit.Pipeline{
		Store:            store,
		SubmissionBucket: "forms-in",
		ResultBucket:     "forms-out",
		InitialDelay:     time.Millisecond,
		Interval:         time.Millisecond,
		Timeout:          2 * time.Second,
	}
	mux := router.NewRouter(schema.Sinusitis(), oracle.NewClient(stub), drafts, pipeline)
	return &env{mux: mux, stub: stub, store: store, drafts: drafts}
}

func (e *env) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, nil))
	return w
}

func (e *env) createSession(t *testing.T) string {
	t.Helper()
	w := e.do("POST", "/sessions", models.CreateSessionRequest{ClientKey: "client-1"})
	testutil.AssertStatus(t, w, http.StatusCreated)
	var resp models.CreateSessionResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.SessionToken == "" {
		t.Fatal("Expected a session token")
	}
	if resp.Step != 1 || resp.Steps != 5 {
		t.Fatalf("Expected a fresh session at step 1 of 5, got %d of %d", resp.Step, resp.Steps)
	}
	return resp.SessionToken
}

func (e *env) setAnswers(t *testing.T, token string, kv map[string]interface{}) {
	t.Helper()
	w := e.do("PUT", "/sessions/"+token+"/answers", map[string]interface{}{"answers": kv})
	testutil.AssertStatus(t, w, http.StatusOK)
}

func (e *env) validateOK(t *testing.T, token string) {
	t.Helper()
	w := e.do("POST", "/sessions/"+token+"/validate", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.ValidateResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.OK {
		t.Fatalf("Expected validation to pass, got %+v", resp)
	}
}

func stepAnswers(step int) map[string]interface{} {
	switch step {
	case 1:
		return map[string]interface{}{
			string(schema.FieldClaimType): "Initial Claim",
			string(schema.FieldHistory):   "Recurring infections since deployment in 2010.",
		}
	case 2:
		return map[string]interface{}{string(schema.FieldMedTrigger): "No"}
	case 3:
		return map[string]interface{}{string(schema.FieldServiceConn): "No"}
	case 4:
		kv := make(map[string]interface{})
		for _, id := range []string{
			"Sinusitis__c.Sinus_Q20__c", "Sinusitis__c.Sinus_Q35__c",
			"Sinusitis__c.Sinus_Q36__c", "Sinusitis__c.Sinus_Q36c__c",
			"Sinusitis__c.Sinus_Q36d__c", "Sinusitis__c.Sinus_Q36g__c",
			"Sinusitis__c.Sinus_Q38__c", "Sinusitis__c.Sinus_Q39__c",
			"Sinusitis__c.Sinus_Q30__c", "Sinusitis__c.Sinus_Q43__c",
		} {
			kv[id] = "No"
		}
		return kv
	default:
		return map[string]interface{}{
			string(schema.FieldImpact):        "Flare-ups make sustained desk work difficult.",
			string(schema.FieldVeteranName):   "Jordan Smith",
			string(schema.FieldDateSubmitted): time.Now().Format("01/02/2006"),
		}
	}
}

func (e *env) walkToFinalStep(t *testing.T, token string) {
	t.Helper()
	for step := 1; step < 5; step++ {
		e.setAnswers(t, token, stepAnswers(step))
		e.validateOK(t, token)
		w := e.do("POST", "/sessions/"+token+"/advance", nil)
		testutil.AssertStatus(t, w, http.StatusOK)
	}
	e.setAnswers(t, token, stepAnswers(5))
}

func TestUnknownSessionIs404(t *testing.T) {
	e := setup(t)
	w := e.do("GET", "/sessions/bogus/step", nil)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestAdvanceWithoutValidationIsConflict(t *testing.T) {
	e := setup(t)
	token := e.createSession(t)

	w := e.do("POST", "/sessions/"+token+"/advance", nil)
	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestStepRenderShowsConditionalFields(t *testing.T) {
	e := setup(t)
	token := e.createSession(t)
	e.setAnswers(t, token, stepAnswers(1))
	e.validateOK(t, token)
	e.do("POST", "/sessions/"+token+"/advance", nil)

	// With no trigger answered, the count selector stays hidden.
	w := e.do("GET", "/sessions/"+token+"/step", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var state wizard.RenderState
	testutil.AssertJSON(t, w, &state)
	if state.Step != 2 {
		t.Fatalf("Expected step 2, got %d", state.Step)
	}
	for _, f := range state.Fields {
		if f.ID == schema.FieldMedCount {
			t.Fatal("Count selector rendered before its trigger was answered")
		}
	}

	e.setAnswers(t, token, map[string]interface{}{string(schema.FieldMedTrigger): "Yes"})
	w = e.do("GET", "/sessions/"+token+"/step", nil)
	var after wizard.RenderState
	testutil.AssertJSON(t, w, &after)
	found := false
	for _, f := range after.Fields {
		if f.ID == schema.FieldMedCount {
			found = true
		}
	}
	if !found {
		t.Error("Count selector should render once its trigger is Yes")
	}
}

func TestSetAnswersBatchIsAtomic(t *testing.T) {
	e := setup(t)
	token := e.createSession(t)

	// One bad entry rejects the whole batch; the good entry must not
	// have been applied.
	w := e.do("PUT", "/sessions/"+token+"/answers", map[string]interface{}{
		"answers": map[string]interface{}{
			string(schema.FieldHistory): "Recurring infections since deployment in 2010.",
			"Sinusitis__c.Bogus__c":     "No",
		},
	})
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	w = e.do("GET", "/sessions/"+token+"/step", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var state wizard.RenderState
	testutil.AssertJSON(t, w, &state)
	for _, f := range state.Fields {
		if f.ID == schema.FieldHistory && f.Answer.IsAnswered() {
			t.Error("A rejected batch must leave no entries applied")
		}
	}
}

func TestValidateSurfacesBlockingError(t *testing.T) {
	e := setup(t)
	token := e.createSession(t)

	w := e.do("POST", "/sessions/"+token+"/validate", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.ValidateResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.OK {
		t.Fatal("Expected an empty step to fail validation")
	}
	if resp.Blocking == "" || resp.Field == "" {
		t.Errorf("Expected the blocking field and message, got %+v", resp)
	}
	if e.stub.Calls != 0 {
		t.Errorf("Oracle consulted despite a deterministic failure")
	}
}

func TestDraftSaveLoadClear(t *testing.T) {
	e := setup(t)
	token := e.createSession(t)
	e.setAnswers(t, token, stepAnswers(1))

	w := e.do("POST", "/sessions/"+token+"/draft", nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	// A second session for the same client key restores the draft.
	token2 := e.createSession(t)
	w = e.do("POST", "/sessions/"+token2+"/draft/load", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var state wizard.RenderState
	testutil.AssertJSON(t, w, &state)
	if !state.Rebind {
		t.Error("Expected the restore render to request a rebind")
	}

	w = e.do("DELETE", "/sessions/"+token+"/draft", nil)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	w = e.do("POST", "/sessions/"+token+"/draft/load", nil)
	testutil.AssertStatus(t, w, http.StatusNotFound)

	// Clearing is a full reset: the session is back at step 1 with no
	// answers, not just missing its saved slot.
	w = e.do("GET", "/sessions/"+token+"/step", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var cleared wizard.RenderState
	testutil.AssertJSON(t, w, &cleared)
	if cleared.Step != 1 {
		t.Errorf("Expected the cleared session at step 1, got %d", cleared.Step)
	}
	for _, f := range cleared.Fields {
		if f.Answer.IsAnswered() {
			t.Errorf("Field %s survived the clear with answer %v", f.ID, f.Answer)
		}
	}
}

func TestSubmissionLifecycle(t *testing.T) {
	e := setup(t)
	token := e.createSession(t)
	e.walkToFinalStep(t, token)

	// Submission before the final audit is refused.
	w := e.do("POST", "/sessions/"+token+"/submit", nil)
	testutil.AssertStatus(t, w, http.StatusConflict)

	e.validateOK(t, token)
	w = e.do("POST", "/sessions/"+token+"/submit", nil)
	testutil.AssertStatus(t, w, http.StatusAccepted)
	var started models.SubmitResponse
	testutil.AssertJSON(t, w, &started)
	if started.CaseID == "" || started.Status != models.SubmissionPending {
		t.Fatalf("Expected a pending submission with a case id, got %+v", started)
	}

	// Simulate the backend writing the result, then poll until complete.
	e.store.Put(context.Background(), "forms-out", started.CaseID+".json",
		[]byte(`{"decision":"accepted"}`), "application/json")

	deadline := time.Now().Add(2 * time.Second)
	var final models.SubmitResponse
	for {
		w = e.do("GET", "/sessions/"+token+"/submission", nil)
		testutil.AssertStatus(t, w, http.StatusOK)
		testutil.AssertJSON(t, w, &final)
		if final.Status != models.SubmissionPending {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("Submission never completed: %+v", final)
		}
		time.Sleep(5 * time.Millisecond)
	}
	if final.Status != models.SubmissionComplete {
		t.Fatalf("Expected a completed submission, got %+v", final)
	}
	if string(final.Result) == "" {
		t.Error("Expected the result payload to be returned")
	}

	// The uploaded envelope is in the submission bucket under the case id.
	if e.store.Object("forms-in", started.CaseID+".json") == nil {
		t.Error("Envelope missing from the submission bucket")
	}
}

func TestExportDownloadsEnvelope(t *testing.T) {
	e := setup(t)
	token := e.createSession(t)
	e.setAnswers(t, token, stepAnswers(1))

	w := e.do("GET", "/sessions/"+token+"/export", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected a JSON download, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Error("Expected an attachment disposition")
	}
	var doc map[string]interface{}
	testutil.AssertJSON(t, w, &doc)
	if doc["DBQType"] != schema.DBQType {
		t.Errorf("Expected DBQType %q, got %v", schema.DBQType, doc["DBQType"])
	}
}

func TestDeleteSession(t *testing.T) {
	e := setup(t)
	token := e.createSession(t)

	w := e.do("DELETE", "/sessions/"+token, nil)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	w = e.do("GET", "/sessions/"+token+"/step", nil)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
