// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the AI Medical Form API server.

AI Medical Form is a guided medical questionnaire service: a multi-step
wizard over a conditional field schema, with deterministic format checks,
an LLM-backed consistency audit gating each step, a persistent draft
slot, and an asynchronous submission exchange through object storage.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=form.db GROQ_API_KEY=... SUBMISSION_BUCKET=... RESULT_BUCKET=... go run main.go

Or with flags:

	go run main.go -p 3318 -d form.db -t sqlite --submission-bucket forms-in --result-bucket forms-out

# Configuration

Required settings:

  - DATABASE_URL (-d): Draft database connection string
  - GROQ_API_KEY / GEMINI_API_KEY (--oracle-key): Oracle API key
  - SUBMISSION_BUCKET, RESULT_BUCKET: S3 buckets for the submission exchange

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ORACLE_PROVIDER (--oracle): groq or gemini (default: groq)
  - POLL_INITIAL_DELAY, POLL_INTERVAL, POLL_TIMEOUT: result polling cadence

# Architecture

The server uses a handler-based architecture with dependency injection:

  - schema: the immutable field schema with visibility predicates
  - answers: normalized answer values and the visibility engine
  - validate: deterministic field rules
  - oracle: the semantic consistency check (groq and gemini engines)
  - wizard: the step controller, snapshots, and draft state
  - draft: the persistent draft slot
  - submit: envelope assembly and the upload-then-poll pipeline
  - handlers, router, middleware, models, session: the HTTP surface
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
