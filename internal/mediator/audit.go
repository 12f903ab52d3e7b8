// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

package mediator

import (
	"context"
	"time"

	"github.com/docgate/docgate/internal/audit"
	"github.com/docgate/docgate/internal/document"
	"github.com/docgate/docgate/internal/logging"
	"github.com/docgate/docgate/internal/metrics"
)

// Audit records one event per capability attempt, whatever the outcome.
// It is a pure observer: delegation always happens, results pass through
// verbatim, and a failing audit sink never becomes the operation's error.
type Audit struct {
	next     document.Resource
	actorID  string
	resource string
	recorder *audit.Recorder
}

// NewAudit creates an audit mediator. The resource label identifies the
// target in recorded events; it is supplied at construction so recording
// does not itself invoke capabilities on the chain below.
func NewAudit(next document.Resource, actorID, resource string, recorder *audit.Recorder) *Audit {
	return &Audit{next: next, actorID: actorID, resource: resource, recorder: recorder}
}

// record emits exactly one audit event for a finished attempt. Recorder
// failures are reported through logging and metrics only.
func (m *Audit) record(ctx context.Context, op document.Operation, start time.Time, opErr error) {
	duration := time.Since(start)
	metrics.OperationDuration.WithLabelValues(string(op)).Observe(duration.Seconds())

	event := &audit.Event{
		Actor:     m.actorID,
		Resource:  m.resource,
		Operation: op,
		Outcome:   audit.OutcomeSuccess,
		Duration:  duration,
	}
	if opErr != nil {
		event.Outcome = audit.OutcomeFailure
		event.ErrorKind = audit.KindOf(opErr)
	}

	if err := m.recorder.Record(ctx, event); err != nil {
		logging.Error().Err(err).Str("actor", m.actorID).Str("operation", string(op)).
			Msg("audit event lost")
	}
}

// View logs the attempt, delegates, then records the outcome.
func (m *Audit) View(ctx context.Context) (string, error) {
	logging.Debug().Str("actor", m.actorID).Str("operation", string(document.OpView)).Msg("attempt")
	start := time.Now()
	content, err := m.next.View(ctx)
	m.record(ctx, document.OpView, start, err)
	return content, err
}

// Mutate logs the attempt, delegates, then records the outcome.
func (m *Audit) Mutate(ctx context.Context, content string) error {
	logging.Debug().Str("actor", m.actorID).Str("operation", string(document.OpMutate)).Msg("attempt")
	start := time.Now()
	err := m.next.Mutate(ctx, content)
	m.record(ctx, document.OpMutate, start, err)
	return err
}

// Remove logs the attempt, delegates, then records the outcome.
func (m *Audit) Remove(ctx context.Context) error {
	logging.Debug().Str("actor", m.actorID).Str("operation", string(document.OpRemove)).Msg("attempt")
	start := time.Now()
	err := m.next.Remove(ctx)
	m.record(ctx, document.OpRemove, start, err)
	return err
}

// Describe delegates and records the attempt. Describe cannot fail, so the
// recorded outcome is always success.
func (m *Audit) Describe() string {
	start := time.Now()
	description := m.next.Describe()
	m.record(context.Background(), document.OpDescribe, start, nil)
	return description
}
