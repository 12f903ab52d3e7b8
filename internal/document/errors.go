// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

package document

import "errors"

// Error kinds shared across the mediation chain. Mediators propagate these
// unchanged; call sites match them with errors.Is.
var (
	// ErrNotFound is returned when an operation targets a document whose
	// content has been removed.
	ErrNotFound = errors.New("document not found")

	// ErrDenied is returned by an authorization mediator when the caller's
	// role does not permit the operation. The wrapped resource never
	// observes a denied call.
	ErrDenied = errors.New("operation denied")

	// ErrConstructionFailed is returned when the underlying loader fails to
	// produce the document. The lazy mediator stays uninitialized so a
	// later call retries construction.
	ErrConstructionFailed = errors.New("document construction failed")
)
