// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

package document

import (
	"context"
	"fmt"

	"github.com/docgate/docgate/internal/logging"
	"github.com/docgate/docgate/internal/metrics"
)

// Document is the concrete resource at the end of a mediation chain. The
// identifier is immutable; content is nil once removed. A Document is
// exclusively owned by whoever constructed it (usually a Lazy mediator) and
// holds no state shared with other instances.
type Document struct {
	id      string
	content *string
}

// New constructs a Document by running the loader's expensive fetch. A
// loader failure is reported as ErrConstructionFailed wrapping the cause,
// and no Document is returned, so callers cannot hold a half-built resource.
func New(ctx context.Context, id string, loader Loader) (*Document, error) {
	content, err := loader.Load(ctx, id)
	if err != nil {
		metrics.DocumentConstructions.WithLabelValues("failure").Inc()
		return nil, fmt.Errorf("%w: load %q: %v", ErrConstructionFailed, id, err)
	}

	metrics.DocumentConstructions.WithLabelValues("success").Inc()
	logging.Debug().Str("document", id).Msg("document constructed")

	return &Document{id: id, content: &content}, nil
}

// View returns the current content, or ErrNotFound after removal.
func (d *Document) View(ctx context.Context) (string, error) {
	if d.content == nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, d.id)
	}
	return *d.content, nil
}

// Mutate replaces the content, or returns ErrNotFound after removal.
func (d *Document) Mutate(ctx context.Context, content string) error {
	if d.content == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, d.id)
	}
	d.content = &content
	return nil
}

// Remove discards the content. Idempotent: removing an already-removed
// document succeeds.
func (d *Document) Remove(ctx context.Context) error {
	d.content = nil
	return nil
}

// Describe reports the document's identity regardless of content state.
func (d *Document) Describe() string {
	return "document " + d.id
}

// ID returns the immutable identifier.
func (d *Document) ID() string {
	return d.id
}
