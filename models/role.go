// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the authorization role carried by a principal.
//
// Roles are compared by exact match; there is no hierarchy between them.
type Role string

const (
	// RoleAdmin is held by the single owner account that manages the portfolio.
	RoleAdmin Role = "admin"

	// RoleVisitor is the implicit role of any other account.
	RoleVisitor Role = "visitor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleVisitor:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
