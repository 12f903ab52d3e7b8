// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

// Package metrics exposes Prometheus instrumentation for the mediation
// chain: construction cost, authorization outcomes, audit sink health and
// per-operation latency. The construction counter makes the "load exactly
// once per logical document" property observable outside the test suite.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DocumentConstructions counts expensive document loads, labeled by
	// result. A healthy lazy chain shows at most one success per document.
	DocumentConstructions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docgate_document_constructions_total",
			Help: "Total number of document construction attempts",
		},
		[]string{"result"}, // "success", "failure"
	)

	// AuthzDecisions counts authorization outcomes per operation.
	AuthzDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docgate_authz_decisions_total",
			Help: "Total number of authorization decisions",
		},
		[]string{"operation", "decision"}, // decision: "allow", "deny"
	)

	// OperationDuration tracks end-to-end latency of resource operations
	// as observed at the outermost mediator.
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "docgate_operation_duration_seconds",
			Help:    "Duration of resource operations through the chain",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// AuditEvents counts recorded audit events by outcome.
	AuditEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docgate_audit_events_total",
			Help: "Total number of audit events recorded",
		},
		[]string{"outcome"},
	)

	// AuditSinkErrors counts audit store failures. These never fail the
	// mediated operation, so the counter is the only hard signal that the
	// trail is incomplete.
	AuditSinkErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docgate_audit_sink_errors_total",
			Help: "Total number of audit events that could not be persisted",
		},
	)
)
