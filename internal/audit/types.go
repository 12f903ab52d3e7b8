// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

// Package audit records every capability invocation that passes through an
// audit mediator: who attempted what, and how it turned out. One event is
// emitted per attempt, denied and failed attempts included.
package audit

import (
	"errors"
	"time"

	"github.com/docgate/docgate/internal/document"
)

// Outcome indicates whether a mediated operation succeeded or failed.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Error kinds recorded on failed attempts. These mirror the error taxonomy
// of the document package.
const (
	KindNotFound           = "not_found"
	KindDenied             = "denied"
	KindConstructionFailed = "construction_failed"
	KindUnknown            = "unknown"
)

// ErrSinkUnavailable is returned when an event could not be recorded. It is
// local to the audit layer: the mediated operation's own result is never
// replaced by it.
var ErrSinkUnavailable = errors.New("audit sink unavailable")

// Event is one audit record for one capability attempt.
type Event struct {
	// ID is a unique identifier for this event.
	ID string `json:"id"`

	// Timestamp is when the attempt was recorded.
	Timestamp time.Time `json:"timestamp"`

	// Actor is who made the attempt.
	Actor string `json:"actor"`

	// Resource identifies the target, as reported by Describe.
	Resource string `json:"resource"`

	// Operation is the capability that was invoked.
	Operation document.Operation `json:"operation"`

	// Outcome is the result of the attempt.
	Outcome Outcome `json:"outcome"`

	// ErrorKind classifies the failure; empty on success.
	ErrorKind string `json:"error_kind,omitempty"`

	// Duration is how long the delegated call took.
	Duration time.Duration `json:"duration_ns"`
}

// KindOf classifies an operation error into an audit error kind.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, document.ErrNotFound):
		return KindNotFound
	case errors.Is(err, document.ErrDenied):
		return KindDenied
	case errors.Is(err, document.ErrConstructionFailed):
		return KindConstructionFailed
	default:
		return KindUnknown
	}
}
