// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/michallipa-df/ai-medical-form/wizard"
)

var ErrNotFound = errors.New("session not found")

// Session is one live wizard behind a bearer token. All access must go
// through Lock/Unlock: the controller is not safe for concurrent use.
type Session struct {
	Token     string
	ClientKey string
	Ctrl      *wizard.Controller

	mu sync.Mutex
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// GenerateToken creates a random secure token for a session
func GenerateToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// Registry maps tokens to live sessions.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create registers a new session around the given controller and
// returns it with a fresh token.
func (r *Registry) Create(clientKey string, ctrl *wizard.Controller) (*Session, error) {
	token, err := GenerateToken()
	if err != nil {
		return nil, err
	}
	s := &Session{Token: token, ClientKey: clientKey, Ctrl: ctrl}
	r.mu.Lock()
	r.sessions[token] = s
	r.mu.Unlock()
	return s, nil
}

// Get looks up a session by token.
func (r *Registry) Get(token string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[token]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete removes the session for the given token, if any.
func (r *Registry) Delete(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}
