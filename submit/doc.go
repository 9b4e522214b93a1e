// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package submit assembles the final submission envelope and drives the
// upload-then-poll exchange with the processing backend. The envelope is
// uploaded to the submission bucket under a fresh case id; the result is
// polled from the result bucket on a bounded schedule.
package submit
