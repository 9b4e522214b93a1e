// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package session issues bearer tokens for live wizard controllers and
// keeps the token → session registry. Sessions serialize access to
// their controller with a per-session mutex.
package session
