// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/michallipa-df/ai-medical-form/answers"
	"github.com/michallipa-df/ai-medical-form/oracle"
	"github.com/michallipa-df/ai-medical-form/schema"
	"github.com/michallipa-df/ai-medical-form/validate"
)

var (
	// ErrValidationRequired means the step has no validation result
	// computed from the exact answers currently present.
	ErrValidationRequired = errors.New("step must be validated against the current answers before advancing")

	// ErrAuditRequired means the whole-form consistency audit has not
	// passed since the last answer change.
	ErrAuditRequired = errors.New("the whole-form consistency audit must pass before submission")

	ErrFirstStep = errors.New("already at the first step")
	ErrLastStep  = errors.New("already at the last step")
)

// snapshot records the exact answers a PASS verdict was computed from.
// It is the sole basis on which a step may advance without re-validating.
type snapshot struct {
	step    int
	fields  []schema.FieldID
	answers answers.Map
}

func (s *snapshot) fresh(live answers.Map) bool {
	return live.EqualOn(s.answers, s.fields)
}

// Controller owns one wizard session: the step index, the answer store,
// the validation snapshot, and the submission audit state. It is not safe
// for concurrent use; callers serialize access per session.
type Controller struct {
	schema   *schema.Schema
	oracle   *oracle.Client
	policies map[int]string

	step        int
	answers     answers.Map
	snap        *snapshot
	pendingHint string

	// Whole-form audit state for submission gating.
	auditAnswers    answers.Map
	auditOverridden bool

	overrides    int
	forceRestore bool
}

func New(s *schema.Schema, client *oracle.Client) *Controller {
	return &Controller{
		schema:   s,
		oracle:   client,
		policies: DefaultPolicies(),
		step:     1,
		answers:  make(answers.Map),
	}
}

// Step returns the current step index (1-based).
func (c *Controller) Step() int { return c.step }

// Steps returns the total number of steps.
func (c *Controller) Steps() int { return c.schema.Steps() }

// PendingHint returns the advisory hint from the last semantic FAIL, if any.
func (c *Controller) PendingHint() string { return c.pendingHint }

// Overrides returns how many times the semantic check has been overridden
// in this session.
func (c *Controller) Overrides() int { return c.overrides }

// Schema exposes the immutable field schema.
func (c *Controller) Schema() *schema.Schema { return c.schema }

// Answers returns a copy of the full answer map.
func (c *Controller) Answers() answers.Map { return c.answers.Clone() }

// SetAnswer records a live answer. If the value drifts from the captured
// validation snapshot, the snapshot is discarded immediately: a stale PASS
// must never justify an advance. The whole-form audit state is voided the
// same way, whether it came from a PASS or an override.
func (c *Controller) SetAnswer(id schema.FieldID, v answers.Value) error {
	if _, ok := c.schema.ByID(id); !ok {
		return fmt.Errorf("unknown field %q", id)
	}
	c.answers.Set(id, v)
	if c.snap != nil && !c.snap.fresh(c.answers) {
		c.snap = nil
	}
	if c.auditAnswers != nil && !c.answers.EqualOn(c.auditAnswers, c.allFields()) {
		c.auditAnswers = nil
		c.auditOverridden = false
	}
	return nil
}

// RenderedField is one visible question with its current answer.
type RenderedField struct {
	ID       schema.FieldID `json:"id"`
	Label    string         `json:"label"`
	Kind     string         `json:"kind"`
	Options  []string       `json:"options,omitempty"`
	Required bool           `json:"required"`
	Answer   answers.Value  `json:"answer"`
}

// RenderState is the pure render output for the current step.
type RenderState struct {
	Step    int             `json:"step"`
	Steps   int             `json:"steps"`
	Section string          `json:"section"`
	Rebind  bool            `json:"rebind"`
	Hint    string          `json:"hint,omitempty"`
	Fields  []RenderedField `json:"fields"`
}

// Render exposes the fields whose visibility predicates hold for the
// current step. Hidden fields keep their stored values but do not appear.
// The one-shot rebind flag set by a draft restore is consumed here, before
// any field value is read.
func (c *Controller) Render() RenderState {
	state := RenderState{
		Step:    c.step,
		Steps:   c.schema.Steps(),
		Section: c.schema.Section(c.step),
		Rebind:  c.forceRestore,
		Hint:    c.pendingHint,
	}
	c.forceRestore = false
	for _, f := range answers.VisibleFields(c.schema, c.step, c.answers) {
		state.Fields = append(state.Fields, RenderedField{
			ID:       f.ID,
			Label:    f.Label,
			Kind:     f.Kind,
			Options:  f.Options,
			Required: f.Required,
			Answer:   c.answers.Get(f.ID),
		})
	}
	return state
}

// StepResult is the outcome of validating the current step.
type StepResult struct {
	// Blocking is set on a deterministic rule violation; the semantic
	// oracle was not consulted.
	Blocking *validate.BlockingError
	// Verdict is the semantic oracle's normalized result when the
	// deterministic rules passed.
	Verdict *oracle.Result
}

// OK reports whether the step passed both stages.
func (r StepResult) OK() bool {
	return r.Blocking == nil && r.Verdict != nil && r.Verdict.Pass()
}

// ValidateStep runs the two-stage pipeline for the current step:
// deterministic rules first (fail fast, saving the external call), then
// the semantic oracle over the committed answers of the fields visible in
// and before this step. On the final step the semantic payload is the
// entire visible form and the policy adds cross-section auditing.
//
// A PASS captures a validation snapshot; a FAIL stores the hint and clears
// any stale snapshot.
func (c *Controller) ValidateStep(ctx context.Context) StepResult {
	if blocking := validate.Step(c.schema, c.step, c.answers, time.Now()); blocking != nil {
		return StepResult{Blocking: blocking}
	}

	payload := answers.VisibleThrough(c.schema, c.step, c.answers)
	req := oracle.CheckRequest{
		Section: c.schema.Section(c.step),
		Rules:   c.policies[c.step],
		Data:    make([]oracle.Item, 0, len(payload)),
	}
	ids := make([]schema.FieldID, 0, len(payload))
	for _, f := range payload {
		ids = append(ids, f.ID)
		req.Data = append(req.Data, oracle.Item{
			Key:      string(f.ID),
			Question: f.Label,
			Answer:   c.answers.Get(f.ID),
		})
	}

	res := c.oracle.Check(ctx, req)
	if res.Pass() {
		c.snap = &snapshot{step: c.step, fields: ids, answers: c.answers.Subset(ids)}
		c.pendingHint = ""
		if c.step == c.schema.Steps() {
			c.auditAnswers = c.answers.Clone()
			c.auditOverridden = false
		}
	} else {
		c.pendingHint = res.Hint
		c.snap = nil
	}
	return StepResult{Verdict: &res}
}

// Advance moves to the next step, but only on the basis of a validation
// snapshot whose captured answers equal the answers currently present. A
// diverged snapshot is discarded and the caller must re-validate.
func (c *Controller) Advance() error {
	if c.snap == nil || c.snap.step != c.step {
		return ErrValidationRequired
	}
	if !c.snap.fresh(c.answers) {
		c.snap = nil
		return ErrValidationRequired
	}
	if c.step >= c.schema.Steps() {
		return ErrLastStep
	}
	c.step++
	c.snap = nil
	c.pendingHint = ""
	return nil
}

// ForceAdvance bypasses the semantic oracle but never the deterministic
// rules: format and completeness violations are hard blockers that only
// correcting the data can clear. Semantic findings are advisory and may be
// overridden; every override is logged and counted. On the final step the
// override applies to the whole-form audit, unlocking submission.
func (c *Controller) ForceAdvance() error {
	if blocking := validate.Step(c.schema, c.step, c.answers, time.Now()); blocking != nil {
		return blocking
	}
	c.overrides++
	slog.Warn("semantic check overridden",
		"step", c.step,
		"section", c.schema.Section(c.step),
		"overrides", c.overrides,
	)
	if c.step >= c.schema.Steps() {
		c.auditOverridden = true
		c.auditAnswers = c.answers.Clone()
	} else {
		c.step++
	}
	c.snap = nil
	c.pendingHint = ""
	return nil
}

// GoBack returns to the previous step. Step 1 has no back transition.
func (c *Controller) GoBack() error {
	if c.step <= 1 {
		return ErrFirstStep
	}
	c.step--
	c.snap = nil
	c.pendingHint = ""
	return nil
}

// SubmissionReady reports whether the record may be submitted: the final
// step's deterministic rules must pass, and the whole-form audit must have
// returned PASS, or been explicitly overridden, since the last answer
// change.
func (c *Controller) SubmissionReady(now time.Time) error {
	if blocking := validate.Step(c.schema, c.schema.Steps(), c.answers, now); blocking != nil {
		return blocking
	}
	if c.auditOverridden {
		return nil
	}
	if c.auditAnswers == nil {
		return ErrAuditRequired
	}
	if !c.answers.EqualOn(c.auditAnswers, c.allFields()) {
		return ErrAuditRequired
	}
	return nil
}

func (c *Controller) allFields() []schema.FieldID {
	all := make([]schema.FieldID, 0, len(c.schema.Fields()))
	for _, f := range c.schema.Fields() {
		all = append(all, f.ID)
	}
	return all
}

// draftState is the persisted shape: the step and the full answer map.
type draftState struct {
	Step    int         `json:"step"`
	Answers answers.Map `json:"answers"`
}

// MarshalDraft serializes the session for the draft slot. Serialization is
// deterministic for a given state, so back-to-back saves with no edits
// produce identical bytes.
func (c *Controller) MarshalDraft() ([]byte, error) {
	return json.Marshal(draftState{Step: c.step, Answers: c.answers})
}

// RestoreDraft replaces the step and the entire answer map from a saved
// draft, then arms the one-shot rebind flag so every live binding re-reads
// its value before the next render. Validation and audit state never
// survive a restore.
func (c *Controller) RestoreDraft(data []byte) error {
	var st draftState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("corrupt draft: %w", err)
	}
	if st.Step < 1 || st.Step > c.schema.Steps() {
		return fmt.Errorf("corrupt draft: step %d out of range", st.Step)
	}
	if st.Answers == nil {
		st.Answers = make(answers.Map)
	}
	c.step = st.Step
	c.answers = st.Answers
	c.snap = nil
	c.pendingHint = ""
	c.auditAnswers = nil
	c.auditOverridden = false
	c.forceRestore = true
	return nil
}

// Reset returns the session to its initial state.
func (c *Controller) Reset() {
	c.step = 1
	c.answers = make(answers.Map)
	c.snap = nil
	c.pendingHint = ""
	c.auditAnswers = nil
	c.auditOverridden = false
	c.overrides = 0
	c.forceRestore = false
}
