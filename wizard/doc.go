// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wizard implements the multi-step questionnaire state machine.

A Controller owns one session: the current step (1..N), the answer store,
and the validation state. Steps advance only through the two-stage pipeline:

 1. deterministic field rules (validate package): hard blockers, checked
    first so a structural failure never spends an oracle call
 2. the semantic consistency oracle (oracle package): advisory; a PASS
    captures a snapshot of the exact answers it was computed from

The snapshot is the sole ticket through Advance. The moment a live answer
drifts from the captured snapshot, the snapshot is void and the step must
be re-validated; a stale PASS never advances a step. Semantic findings can
be explicitly overridden (logged and counted); deterministic ones cannot.

The controller's transitions are plain methods with no rendering or
transport concerns, so the whole state machine is unit-testable without a
UI or server. Draft save/restore round-trips {step, answer map} through an
opaque byte slice; see the draft package for the storage side.
*/
package wizard
