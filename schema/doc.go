// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package schema defines the ordered field schema for a questionnaire.

A Schema is an immutable, ordered list of fields loaded once at process
start. It is the single source of truth for:

  - canonical field ordering (export documents must follow it)
  - human-readable labels per field id
  - which wizard step each field belongs to
  - visibility conditions, declared as data rather than scattered
    conditionals: each field lists the fields it depends on and the
    values that make it visible
  - deterministic constraint metadata (required-ness, format patterns,
    option sets) consumed by the validate package

The concrete Chronic Sinusitis DBQ schema lives in fields.go.
*/
package schema
