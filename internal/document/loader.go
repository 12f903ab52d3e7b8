// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

package document

import (
	"context"
	"fmt"
	"time"
)

// DelayedLoader wraps another Loader with a fixed delay, simulating the
// expensive fetch the exercise is built around. The delay always runs to
// completion before the inner load; cancellation mid-delay is not modeled.
type DelayedLoader struct {
	Delay time.Duration
	Next  Loader
}

// Load sleeps for the configured delay and then delegates.
func (l *DelayedLoader) Load(ctx context.Context, id string) (string, error) {
	if l.Delay > 0 {
		time.Sleep(l.Delay)
	}
	return l.Next.Load(ctx, id)
}

// StaticLoader produces deterministic placeholder content for a document
// identifier. Used by the driver when no content store is configured.
type StaticLoader struct{}

// Load returns placeholder content derived from the identifier.
func (StaticLoader) Load(ctx context.Context, id string) (string, error) {
	return fmt.Sprintf("contents of %s", id), nil
}
