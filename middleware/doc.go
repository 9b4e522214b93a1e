// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package middleware provides HTTP cross-cutting helpers: request
// logging with per-request ids, JSON response/error writers, body
// parsing, and CORS.
package middleware
