// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

package mediator

import (
	"context"
	"errors"
	"testing"

	"github.com/docgate/docgate/internal/audit"
	"github.com/docgate/docgate/internal/authz"
	"github.com/docgate/docgate/internal/document"
)

// newAuditChain wraps the next link in an audit mediator with a fresh
// memory store.
func newAuditChain(next document.Resource, actor string) (*Audit, *audit.MemoryStore) {
	store := audit.NewMemoryStore(100)
	recorder := audit.NewRecorder(store)
	return NewAudit(next, actor, "doc-1", recorder), store
}

func TestAuditRecordsSuccess(t *testing.T) {
	next := &fakeResource{content: "hello"}
	auditor, store := newAuditChain(next, "alice")

	got, err := auditor.View(context.Background())
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("View() = %q, want %q", got, "hello")
	}

	if store.Len() != 1 {
		t.Fatalf("store has %d events, want 1", store.Len())
	}
	events, err := store.Query(context.Background(), audit.QueryFilter{})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	event := events[0]
	if event.Actor != "alice" || event.Operation != document.OpView {
		t.Errorf("event = %+v, want actor alice, operation view", event)
	}
	if event.Outcome != audit.OutcomeSuccess || event.ErrorKind != "" {
		t.Errorf("event outcome = %s/%s, want success with no error kind", event.Outcome, event.ErrorKind)
	}
	if event.Resource != "doc-1" {
		t.Errorf("event resource = %q, want doc-1", event.Resource)
	}
}

func TestAuditRecordsEveryAttempt(t *testing.T) {
	next := &fakeResource{content: "hello"}
	auditor, store := newAuditChain(next, "alice")
	ctx := context.Background()

	if _, err := auditor.View(ctx); err != nil {
		t.Fatalf("View() error = %v", err)
	}
	if err := auditor.Mutate(ctx, "new"); err != nil {
		t.Fatalf("Mutate() error = %v", err)
	}
	if err := auditor.Remove(ctx); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	auditor.Describe()

	if store.Len() != 4 {
		t.Errorf("store has %d events after 4 attempts, want 4", store.Len())
	}
}

func TestAuditRecordsDenialFromBelow(t *testing.T) {
	// Audit above authorization: the denied attempt is still delegated to
	// the access mediator, and the resulting denial is recorded.
	next := &fakeResource{content: "hello"}
	access := NewAccess(next, authz.RoleViewer, newMatrixEnforcer(t))
	auditor, store := newAuditChain(access, "mallory")

	err := auditor.Remove(context.Background())
	if !errors.Is(err, document.ErrDenied) {
		t.Fatalf("Remove() error = %v, want ErrDenied", err)
	}

	events, err := store.Query(context.Background(), audit.QueryFilter{})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("store has %d events, want exactly 1 per attempt", len(events))
	}
	event := events[0]
	if event.Outcome != audit.OutcomeFailure || event.ErrorKind != audit.KindDenied {
		t.Errorf("event outcome = %s/%s, want failure/denied", event.Outcome, event.ErrorKind)
	}
	if next.calls() != 0 {
		t.Errorf("terminal resource observed %d calls, want 0 (denial blocks delegation)", next.calls())
	}
}

func TestAuditAlwaysDelegates(t *testing.T) {
	next := &fakeResource{content: "hello"}
	auditor, _ := newAuditChain(next, "alice")

	if _, err := auditor.View(context.Background()); err != nil {
		t.Fatalf("View() error = %v", err)
	}
	if next.viewCalls != 1 {
		t.Errorf("next observed %d view calls, want 1", next.viewCalls)
	}
}

func TestAuditSinkFailureDoesNotAffectOperation(t *testing.T) {
	next := &fakeResource{content: "hello"}
	recorder := audit.NewRecorder(failingStore{})
	auditor := NewAudit(next, "alice", "doc-1", recorder)

	got, err := auditor.View(context.Background())
	if err != nil {
		t.Fatalf("View() error = %v, want success despite failing sink", err)
	}
	if got != "hello" {
		t.Errorf("View() = %q, want %q", got, "hello")
	}

	// The downstream error passes through untouched as well.
	downstream := errors.New("downstream exploded")
	next.err = downstream
	if _, err := auditor.View(context.Background()); !errors.Is(err, downstream) {
		t.Errorf("View() error = %v, want downstream error unchanged", err)
	}
}
