// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package models defines the request and response types exchanged over
// the HTTP API, plus shared status constants. Domain state lives in the
// wizard and answers packages; models only shapes the wire.
package models
