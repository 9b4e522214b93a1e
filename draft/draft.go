// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package draft persists wizard progress so a user can resume later.

Each client owns exactly one slot: saving overwrites it (last-write-wins,
no merge, no history), loading returns the latest save, and deleting it is
the "start fresh" action. An empty slot on load is information, not an
error; callers check for ErrNoDraft.
*/
package draft

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"
)

// ErrNoDraft is returned by Load when the slot has never been written or
// was cleared. It signals "nothing to restore", not a failure.
var ErrNoDraft = errors.New("no draft saved")

// Store is the draft slot: one serialized {step, answers} payload per
// client key.
type Store interface {
	Save(ctx context.Context, key string, payload []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// SQLStore keeps draft slots in a relational table. The upsert gives
// last-write-wins overwrite semantics and works on both postgres and
// sqlite.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Save(ctx context.Context, key string, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO draft_slot (client_key, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (client_key) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`, key, string(payload), time.Now())
	return err
}

func (s *SQLStore) Load(ctx context.Context, key string) ([]byte, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM draft_slot WHERE client_key = $1`, key,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrNoDraft
	}
	if err != nil {
		return nil, err
	}
	return []byte(payload), nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM draft_slot WHERE client_key = $1`, key)
	return err
}

// MemStore is an in-memory Store for tests and single-process development.
type MemStore struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{slots: make(map[string][]byte)}
}

func (s *MemStore) Save(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s.slots[key] = cp
	return nil
}

func (s *MemStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.slots[key]
	if !ok {
		return nil, ErrNoDraft
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	return cp, nil
}

func (s *MemStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, key)
	return nil
}
