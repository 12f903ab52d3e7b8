// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

package authz

import (
	"fmt"
	"strings"
)

// Role is a caller's position in the permission hierarchy. The set is
// closed: admin inherits editor, editor inherits viewer.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// Roles lists every valid role.
var Roles = []Role{RoleAdmin, RoleEditor, RoleViewer}

// ParseRole converts a string to a Role, case-insensitively.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleEditor:
		return RoleEditor, nil
	case RoleViewer:
		return RoleViewer, nil
	default:
		return "", fmt.Errorf("invalid role %q (valid: admin, editor, viewer)", s)
	}
}
