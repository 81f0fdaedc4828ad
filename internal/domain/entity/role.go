// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is a named capability grouping attached to accounts many-to-many.
type Role string

const (
	// RoleAdmin is the role checked by the admin query.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks that the Role is a non-empty upper-case name.
func (r Role) IsValid() bool {
	if r == "" {
		return false
	}
	for _, c := range r {
		if (c < 'A' || c > 'Z') && c != '_' {
			return false
		}
	}

	return true
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
