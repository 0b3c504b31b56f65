// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role represents the privilege level attached to an identity.
type Role string

const (
	// RoleUser is the default role for every new identity.
	RoleUser Role = "USER"
	// RoleAdmin grants access to user management endpoints.
	RoleAdmin Role = "ADMIN"
	// RoleSuper grants access to maintenance endpoints.
	RoleSuper Role = "SUPER"
)

func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuper:
		return true
	default:
		return false
	}
}

// ParseRole accepts any casing and falls back to RoleUser for unknown values.
func ParseRole(s string) Role {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !role.IsValid() {
		return RoleUser
	}

	return role
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
