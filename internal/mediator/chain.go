// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

package mediator

import (
	"context"
	"fmt"
	"strings"

	"github.com/docgate/docgate/internal/audit"
	"github.com/docgate/docgate/internal/authz"
	"github.com/docgate/docgate/internal/document"
	"github.com/docgate/docgate/internal/logging"
)

// Layer names one mediator in a chain specification.
type Layer string

const (
	LayerAudit  Layer = "audit"
	LayerAccess Layer = "access"
	LayerLazy   Layer = "lazy"
)

// DefaultOrder is the canonical stacking: audit outermost, so denied
// attempts are always recorded; lazy innermost, wrapping the document.
var DefaultOrder = []Layer{LayerAudit, LayerAccess, LayerLazy}

// ParseOrder converts a comma-separated layer list (outermost first) into
// an ordered layer slice.
func ParseOrder(s string) ([]Layer, error) {
	var order []Layer
	for _, part := range strings.Split(s, ",") {
		switch Layer(strings.TrimSpace(strings.ToLower(part))) {
		case LayerAudit:
			order = append(order, LayerAudit)
		case LayerAccess:
			order = append(order, LayerAccess)
		case LayerLazy:
			order = append(order, LayerLazy)
		default:
			return nil, fmt.Errorf("unknown chain layer %q (valid: audit, access, lazy)", part)
		}
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("empty chain order")
	}
	return order, nil
}

// Spec describes one chain to assemble around a document.
type Spec struct {
	// DocumentID is the terminal document's identifier.
	DocumentID string

	// Order lists mediators outermost first. LayerLazy, if present, must
	// be last: it is the link that owns the document constructor.
	Order []Layer

	// Loader performs the expensive content fetch for the terminal
	// document.
	Loader document.Loader

	// Role and Table are required when Order contains LayerAccess.
	Role  authz.Role
	Table authz.Table

	// Actor and Recorder are required when Order contains LayerAudit.
	Actor    string
	Recorder *audit.Recorder
}

// Build assembles the chain described by the spec and returns its outermost
// link. Without LayerLazy the terminal document is constructed eagerly,
// which runs the expensive load before Build returns.
func Build(ctx context.Context, spec Spec) (document.Resource, error) {
	if err := validate(spec); err != nil {
		return nil, err
	}

	order := spec.Order
	var res document.Resource

	if order[len(order)-1] == LayerLazy {
		res = NewLazy(spec.DocumentID, spec.Loader)
		order = order[:len(order)-1]
	} else {
		doc, err := document.New(ctx, spec.DocumentID, spec.Loader)
		if err != nil {
			return nil, err
		}
		res = doc
	}

	for i := len(order) - 1; i >= 0; i-- {
		switch order[i] {
		case LayerAccess:
			res = NewAccess(res, spec.Role, spec.Table)
		case LayerAudit:
			res = NewAudit(res, spec.Actor, spec.DocumentID, spec.Recorder)
		}
	}

	logging.Info().Str("document", spec.DocumentID).Strs("order", layerNames(spec.Order)).
		Msg("chain assembled")
	return res, nil
}

// validate rejects malformed chain specs before any construction happens.
func validate(spec Spec) error {
	if spec.DocumentID == "" {
		return fmt.Errorf("chain spec: document id is required")
	}
	if len(spec.Order) == 0 {
		return fmt.Errorf("chain spec: at least one layer or a terminal document is required")
	}
	if spec.Loader == nil {
		return fmt.Errorf("chain spec: loader is required")
	}

	seen := make(map[Layer]bool, len(spec.Order))
	for i, layer := range spec.Order {
		if seen[layer] {
			return fmt.Errorf("chain spec: layer %s appears twice", layer)
		}
		seen[layer] = true

		if layer == LayerLazy && i != len(spec.Order)-1 {
			return fmt.Errorf("chain spec: lazy must be the innermost layer")
		}
	}

	if seen[LayerAccess] {
		if spec.Role == "" {
			return fmt.Errorf("chain spec: access layer requires a role")
		}
		if spec.Table == nil {
			return fmt.Errorf("chain spec: access layer requires a permission table")
		}
	}
	if seen[LayerAudit] {
		if spec.Actor == "" {
			return fmt.Errorf("chain spec: audit layer requires an actor id")
		}
		if spec.Recorder == nil {
			return fmt.Errorf("chain spec: audit layer requires a recorder")
		}
	}
	return nil
}

// layerNames converts layers to strings for logging.
func layerNames(order []Layer) []string {
	names := make([]string, len(order))
	for i, layer := range order {
		names[i] = string(layer)
	}
	return names
}
