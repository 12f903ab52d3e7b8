// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

// Package authz provides the role-based permission table consulted by the
// access mediator. The table is backed by a Casbin enforcer with an embedded
// model and policy, so the shipped matrix ships with the binary, while tests
// and callers can inject alternate Table implementations.
package authz

import "github.com/docgate/docgate/internal/document"

// Table answers whether a role may perform a capability operation. It must
// be total: every (role, operation) pair has a defined allow/deny outcome,
// and implementations deny anything they do not recognize.
type Table interface {
	Allowed(role Role, op document.Operation) (bool, error)
}

// StaticTable is a map-backed Table for tests and embedded setups that do
// not want a policy engine. Missing entries deny.
type StaticTable map[Role]map[document.Operation]bool

// Allowed implements Table.
func (t StaticTable) Allowed(role Role, op document.Operation) (bool, error) {
	return t[role][op], nil
}
