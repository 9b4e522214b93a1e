// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

The schema is a single table:

  - draft_slot: one saved {step, answers} payload per client key,
    overwritten on every save (last-write-wins)

The statements are portable between postgres (lib/pq) and sqlite
(modernc.org/sqlite); either driver can back the store.
*/
package db
