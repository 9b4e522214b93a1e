// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP API.

# Endpoints

Session lifecycle:

	POST   /sessions                      create a wizard session
	DELETE /sessions/{token}              discard a session

Wizard navigation (all scoped to a session token):

	GET  /sessions/{token}/step           render the current step
	PUT  /sessions/{token}/answers        record live answers
	POST /sessions/{token}/validate       run the two-stage check
	POST /sessions/{token}/advance        advance on a fresh PASS
	POST /sessions/{token}/force-advance  override a semantic FAIL
	POST /sessions/{token}/back           return to the previous step

Drafts:

	POST   /sessions/{token}/draft        save the draft slot
	POST   /sessions/{token}/draft/load   restore from the draft slot
	DELETE /sessions/{token}/draft        clear the draft slot

Submission:

	POST /sessions/{token}/submit         start the async submission
	GET  /sessions/{token}/submission     observe its progress
	GET  /sessions/{token}/export         download the envelope

Handlers hold no wizard logic: they translate HTTP to controller calls
under the session lock and map errors to status codes.
*/
package handlers
