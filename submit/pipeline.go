// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Sentinel outcomes of a submission run. Callers distinguish them with
// errors.Is; each maps to a different user-facing message.
var (
	// ErrUpload means the envelope never reached the submission bucket.
	ErrUpload = errors.New("submission upload failed")
	// ErrPollTimeout means the upload succeeded but no result appeared
	// within the polling deadline.
	ErrPollTimeout = errors.New("timed out waiting for submission result")
	// ErrPoll means a poll attempt failed for a reason other than the
	// result not existing yet.
	ErrPoll = errors.New("submission result poll failed")
)

// Pipeline uploads a submission envelope and waits for the processing
// result to land in the result bucket.
type Pipeline struct {
	Store            ObjectStore
	SubmissionBucket string
	ResultBucket     string

	// InitialDelay is the quiet period after upload before the first
	// poll. Interval spaces subsequent polls. Timeout bounds total
	// polling time, measured from the end of the quiet period.
	InitialDelay time.Duration
	Interval     time.Duration
	Timeout      time.Duration
}

// DefaultPipeline returns a pipeline with the standard polling cadence.
func DefaultPipeline(store ObjectStore, submissionBucket, resultBucket string) *Pipeline {
	return &Pipeline{
		Store:            store,
		SubmissionBucket: submissionBucket,
		ResultBucket:     resultBucket,
		InitialDelay:     30 * time.Second,
		Interval:         10 * time.Second,
		Timeout:          5 * time.Minute,
	}
}

// Run uploads the envelope under its case id and polls for the result.
// The returned payload is the raw result document; errors wrap one of
// the package sentinels.
func (p *Pipeline) Run(ctx context.Context, env Envelope) (json.RawMessage, error) {
	body, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	key := env.CaseID + ".json"
	if err := p.Store.Put(ctx, p.SubmissionBucket, key, body, "application/json"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	slog.Info("submission uploaded", "case_id", env.CaseID, "bucket", p.SubmissionBucket)

	if err := sleep(ctx, p.InitialDelay); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPoll, err)
	}

	deadline := time.Now().Add(p.Timeout)
	for {
		data, err := p.Store.Get(ctx, p.ResultBucket, key)
		switch {
		case err == nil:
			slog.Info("submission result received", "case_id", env.CaseID, "bytes", len(data))
			return json.RawMessage(data), nil
		case errors.Is(err, ErrNotFound):
			// Not ready yet; keep waiting.
		default:
			return nil, fmt.Errorf("%w: %v", ErrPoll, err)
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: case %s after %s", ErrPollTimeout, env.CaseID, p.Timeout)
		}
		if err := sleep(ctx, p.Interval); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPoll, err)
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
