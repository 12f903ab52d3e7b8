// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

// Package document defines the Resource capability contract, the concrete
// Document that backs it, and the Loader abstraction that performs the
// expensive content fetch.
//
// Every mediator in the access chain implements Resource, so chains can be
// assembled in any order around a terminal Document.
package document

import "context"

// Operation names one capability of the Resource contract. The names double
// as casbin actions and audit event actions, so they are stable identifiers.
type Operation string

const (
	OpView     Operation = "view"
	OpMutate   Operation = "mutate"
	OpRemove   Operation = "remove"
	OpDescribe Operation = "describe"
)

// Operations lists every capability in the contract. Permission tables must
// be total over this set.
var Operations = []Operation{OpView, OpMutate, OpRemove, OpDescribe}

// Resource is the capability contract shared by the concrete Document and
// every mediator that wraps it.
//
// Implementations must be self-contained: calling an operation on one
// Resource must never affect another Resource instance.
type Resource interface {
	// View returns the current content. Fails with ErrNotFound once the
	// content has been removed.
	View(ctx context.Context) (string, error)

	// Mutate replaces the content. Fails with ErrNotFound once removed and
	// with ErrDenied when an authorization mediator rejects the caller.
	Mutate(ctx context.Context, content string) error

	// Remove discards the content. Removing twice is not an error.
	Remove(ctx context.Context) error

	// Describe returns a human-readable identity string. It must succeed
	// even if the underlying document was never constructed, so it is
	// answerable from the identifier alone.
	Describe() string
}

// Loader performs the expensive fetch that produces a document's initial
// content. Implementations simulate or perform real I/O; the cost of Load
// is the reason lazy mediation exists, so callers must invoke it at most
// once per logical document.
type Loader interface {
	Load(ctx context.Context, id string) (string, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(ctx context.Context, id string) (string, error)

// Load implements Loader.
func (f LoaderFunc) Load(ctx context.Context, id string) (string, error) {
	return f(ctx, id)
}
