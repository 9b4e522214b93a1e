// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/michallipa-df/ai-medical-form/oracle"
	"github.com/michallipa-df/ai-medical-form/submit"
)

// StubOracle is a scriptable oracle engine. Each Check call pops the
// next queued result; when the queue is empty it returns a PASS.
type StubOracle struct {
	mu      sync.Mutex
	queue   []oracle.Result
	err     error
	Calls   int
	LastReq oracle.CheckRequest
}

func (s *StubOracle) Name() string { return "stub" }

// Queue appends results to return from subsequent Check calls.
func (s *StubOracle) Queue(results ...oracle.Result) {
	s.mu.Lock()
	s.queue = append(s.queue, results...)
	s.mu.Unlock()
}

// Fail makes every subsequent Check return the given transport error.
func (s *StubOracle) Fail(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *StubOracle) Check(_ context.Context, req oracle.CheckRequest) (oracle.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	s.LastReq = req
	if s.err != nil {
		return oracle.Result{}, s.err
	}
	if len(s.queue) == 0 {
		return oracle.Result{Status: oracle.StatusPass}, nil
	}
	res := s.queue[0]
	s.queue = s.queue[1:]
	return res, nil
}

// MemObjectStore is an in-memory submit.ObjectStore with fault injection.
type MemObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	PutErr  error
	GetErr  error
}

func NewMemObjectStore() *MemObjectStore {
	return &MemObjectStore{objects: make(map[string][]byte)}
}

func (m *MemObjectStore) key(bucket, key string) string { return bucket + "/" + key }

func (m *MemObjectStore) Put(_ context.Context, bucket, key string, body []byte, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutErr != nil {
		return m.PutErr
	}
	cp := make([]byte, len(body))
	copy(cp, body)
	m.objects[m.key(bucket, key)] = cp
	return nil
}

func (m *MemObjectStore) Get(_ context.Context, bucket, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	data, ok := m.objects[m.key(bucket, key)]
	if !ok {
		return nil, submit.ErrNotFound
	}
	return data, nil
}

// Object returns the stored bytes for bucket/key, or nil.
func (m *MemObjectStore) Object(bucket, key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.objects[m.key(bucket, key)]
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
