// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

// Package mediator implements the stackable access mediators: deferred
// construction (Lazy), role-based authorization (Access) and audit
// recording (Audit), plus the chain builder that composes them around a
// terminal document.
//
// Every mediator implements document.Resource and owns its next link
// exclusively, so chains are linear and can be assembled in any order.
package mediator

import (
	"context"

	"github.com/docgate/docgate/internal/document"
	"github.com/docgate/docgate/internal/logging"
)

// Lazy defers the expensive document construction until the first call to
// View, Mutate or Remove. Describe is answered from the identifier alone
// and never constructs.
//
// Unlike the other mediators, Lazy holds the concrete *document.Document
// rather than the Resource interface: it is the one link responsible for
// invoking the constructor. The transition is one-directional; a failed
// construction leaves the mediator uninitialized so the next call retries.
type Lazy struct {
	id     string
	loader document.Loader
	doc    *document.Document // nil while uninitialized
}

// NewLazy creates a lazy mediator for the given document identifier.
func NewLazy(id string, loader document.Loader) *Lazy {
	return &Lazy{id: id, loader: loader}
}

// resource returns the constructed document, building it on first use.
func (m *Lazy) resource(ctx context.Context) (*document.Document, error) {
	if m.doc == nil {
		doc, err := document.New(ctx, m.id, m.loader)
		if err != nil {
			return nil, err
		}
		m.doc = doc
		logging.Debug().Str("document", m.id).Msg("lazy mediator initialized")
	}
	return m.doc, nil
}

// View constructs the document if needed, then delegates.
func (m *Lazy) View(ctx context.Context) (string, error) {
	doc, err := m.resource(ctx)
	if err != nil {
		return "", err
	}
	return doc.View(ctx)
}

// Mutate constructs the document if needed, then delegates.
func (m *Lazy) Mutate(ctx context.Context, content string) error {
	doc, err := m.resource(ctx)
	if err != nil {
		return err
	}
	return doc.Mutate(ctx, content)
}

// Remove constructs the document if needed, then delegates.
func (m *Lazy) Remove(ctx context.Context) error {
	doc, err := m.resource(ctx)
	if err != nil {
		return err
	}
	return doc.Remove(ctx)
}

// Describe answers from the identifier without forcing construction.
func (m *Lazy) Describe() string {
	if m.doc != nil {
		return m.doc.Describe()
	}
	return "document " + m.id
}

// Initialized reports whether the document has been constructed.
func (m *Lazy) Initialized() bool {
	return m.doc != nil
}
