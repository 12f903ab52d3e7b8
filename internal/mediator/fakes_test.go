// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

package mediator

import (
	"context"
	"errors"

	"github.com/docgate/docgate/internal/audit"
	"github.com/docgate/docgate/internal/authz"
	"github.com/docgate/docgate/internal/document"
)

// countingLoader tracks how many times the expensive load runs.
type countingLoader struct {
	loads   int
	content string
	err     error
}

func (l *countingLoader) Load(ctx context.Context, id string) (string, error) {
	l.loads++
	if l.err != nil {
		return "", l.err
	}
	return l.content, nil
}

// fakeResource is a next link that counts calls per operation.
type fakeResource struct {
	viewCalls     int
	mutateCalls   int
	removeCalls   int
	describeCalls int

	content string
	err     error
}

func (f *fakeResource) View(ctx context.Context) (string, error) {
	f.viewCalls++
	return f.content, f.err
}

func (f *fakeResource) Mutate(ctx context.Context, content string) error {
	f.mutateCalls++
	if f.err != nil {
		return f.err
	}
	f.content = content
	return nil
}

func (f *fakeResource) Remove(ctx context.Context) error {
	f.removeCalls++
	return f.err
}

func (f *fakeResource) Describe() string {
	f.describeCalls++
	return "fake resource"
}

// calls returns the number of non-describe calls observed.
func (f *fakeResource) calls() int {
	return f.viewCalls + f.mutateCalls + f.removeCalls
}

// failingStore always fails Save, simulating an unavailable audit sink.
type failingStore struct{}

func (failingStore) Save(ctx context.Context, event *audit.Event) error {
	return errors.New("sink offline")
}

func (failingStore) Query(ctx context.Context, filter audit.QueryFilter) ([]audit.Event, error) {
	return nil, errors.New("sink offline")
}

// tableFunc adapts a function to the authz.Table interface.
type tableFunc func(role authz.Role, op document.Operation) (bool, error)

func (t tableFunc) Allowed(role authz.Role, op document.Operation) (bool, error) {
	return t(role, op)
}

// allowAllTable permits every operation for every role.
var allowAllTable = tableFunc(func(authz.Role, document.Operation) (bool, error) {
	return true, nil
})

// denyAllTable rejects every operation for every role.
var denyAllTable = tableFunc(func(authz.Role, document.Operation) (bool, error) {
	return false, nil
})
