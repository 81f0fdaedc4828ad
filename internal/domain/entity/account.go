// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// Account is a registered identity: an email plus a password hash.
// The plaintext password never reaches this type.
type Account struct {
	ID           uint64    // Assigned by the store on creation.
	Email        string    // Unique, stored lowercase.
	PasswordHash string    // bcrypt output, salt embedded.
	Roles        Roles     // Populated only by queries that load memberships.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// HasRole reports whether the loaded memberships contain role.
func (a *Account) HasRole(role Role) bool {
	return a.Roles.Contains(role)
}

// NormalizeEmail trims and lowercases an email so lookups and uniqueness are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
