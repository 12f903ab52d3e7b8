// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

package mediator

import (
	"context"
	"fmt"

	"github.com/docgate/docgate/internal/authz"
	"github.com/docgate/docgate/internal/document"
	"github.com/docgate/docgate/internal/logging"
	"github.com/docgate/docgate/internal/metrics"
)

// Access enforces the role permission table before delegating. A denied
// call never reaches the next link, so resources below an Access mediator
// do not observe rejected attempts.
type Access struct {
	next  document.Resource
	role  authz.Role
	table authz.Table
}

// NewAccess creates an authorization mediator for the given role. The
// table is constructor-injected so tests can substitute alternate matrices.
func NewAccess(next document.Resource, role authz.Role, table authz.Table) *Access {
	return &Access{next: next, role: role, table: table}
}

// allowed checks the permission table, denying on table errors.
func (m *Access) allowed(op document.Operation) error {
	ok, err := m.table.Allowed(m.role, op)
	if err != nil {
		// Deny by default on a broken table rather than fail open.
		logging.Error().Err(err).Str("role", string(m.role)).Str("operation", string(op)).
			Msg("permission table error, denying")
		ok = false
	}
	if !ok {
		metrics.AuthzDecisions.WithLabelValues(string(op), "deny").Inc()
		return fmt.Errorf("%w: role %s may not %s", document.ErrDenied, m.role, op)
	}
	metrics.AuthzDecisions.WithLabelValues(string(op), "allow").Inc()
	return nil
}

// View delegates when the role may view.
func (m *Access) View(ctx context.Context) (string, error) {
	if err := m.allowed(document.OpView); err != nil {
		return "", err
	}
	return m.next.View(ctx)
}

// Mutate delegates when the role may mutate.
func (m *Access) Mutate(ctx context.Context, content string) error {
	if err := m.allowed(document.OpMutate); err != nil {
		return err
	}
	return m.next.Mutate(ctx, content)
}

// Remove delegates when the role may remove.
func (m *Access) Remove(ctx context.Context) error {
	if err := m.allowed(document.OpRemove); err != nil {
		return err
	}
	return m.next.Remove(ctx)
}

// Describe delegates when the role may describe. The contract allows no
// error here; on the rare denial from a substituted table it returns an
// empty string and logs the refusal.
func (m *Access) Describe() string {
	if err := m.allowed(document.OpDescribe); err != nil {
		logging.Warn().Str("role", string(m.role)).Msg("describe denied")
		return ""
	}
	return m.next.Describe()
}
