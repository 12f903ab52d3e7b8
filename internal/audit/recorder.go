// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/docgate/docgate/internal/metrics"
)

// Recorder stamps and persists audit events. It is the sink handed to
// audit mediators; a Recorder failure must never become the mediated
// operation's result, so callers treat Record errors as reportable only.
type Recorder struct {
	store Store
}

// NewRecorder creates a Recorder writing to the given store.
func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

// Record assigns the event an ID and timestamp if unset, then persists it.
// A store failure is returned wrapped in ErrSinkUnavailable.
func (r *Recorder) Record(ctx context.Context, event *Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if err := r.store.Save(ctx, event); err != nil {
		metrics.AuditSinkErrors.Inc()
		return fmt.Errorf("%w: %v", ErrSinkUnavailable, err)
	}

	metrics.AuditEvents.WithLabelValues(string(event.Outcome)).Inc()
	return nil
}

// Store exposes the underlying store for queries (driver summary output).
func (r *Recorder) Store() Store {
	return r.store
}
