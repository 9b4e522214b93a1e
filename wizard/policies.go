// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

// DefaultPolicies returns the free-text audit rules the semantic oracle
// enforces per step. The rules carry over the original auditor checklist:
// mismatched counts, unchecked symptoms, the zero-episode rating trap, and
// empty or vague narrative fields.
func DefaultPolicies() map[int]string {
	return map[int]string{
		1: `The condition history must actually describe how and when the symptoms began.
For an "Initial Claim" it must also describe the link between the injury and military
service. Fail on placeholder or gibberish text that describes nothing.`,

		2: `Scan the condition history for medication counts written as words or numbers
(e.g. "two", "2"). If the applicant says they take N medications but the medication
count selector or the listed medication names disagree with N, fail and name the
mismatch. Dosage and frequency entries must read like real prescriptions.`,

		3: `If the symptom description mentions specific issues such as pus, pain, or
headaches, the matching symptom checkboxes must be selected. If incapacitating
episodes is "0" but any narrative describes bed rest or being unable to work, fail
and name the contradiction. If surgery is reported, each surgery's findings text
must not be empty or meaningless.`,

		4: `Cross-check every "No" answer in this section against the narratives from
earlier sections: a denied condition that the applicant's own text describes is a
contradiction. Flag checked conditions whose follow-up descriptions are empty.`,

		5: `Audit the ENTIRE form. Reconcile every section against every other:
medication counts versus history text, selected symptoms versus symptom narrative,
episode counts versus bed-rest or unable-to-work language, denied surgery versus
surgery language anywhere in the record. The occupational impact statement must be
specific: fail on vague text such as "it affects me" that names no concrete task.`,
	}
}
