// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authsvc/internal/domain/entity"
)

// Domain-specific errors for account persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrRoleNotFound is returned when a role name has no row.
	ErrRoleNotFound = errors.New("role not found")
)

// AccountRepository is the narrow store contract the credential core depends on.
type AccountRepository interface {
	// Create persists a new account and fills in its ID and timestamps.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves a single account by its ID.
	FindByID(ctx context.Context, id uint64) (*entity.Account, error)

	// FindByEmail retrieves a single account by its (already normalized) email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Delete removes an account by ID and returns the number of rows affected.
	// Deleting an absent account affects zero rows and is not an error.
	Delete(ctx context.Context, id uint64) (int64, error)

	// HasRole reports whether the account holds the named role.
	// A role name with no row yields false.
	HasRole(ctx context.Context, accountID uint64, role entity.Role) (bool, error)
}

// RoleRepository manages role rows and memberships. It is used by operator tooling,
// not by request handling.
type RoleRepository interface {
	// EnsureRole creates the role row if it does not exist.
	EnsureRole(ctx context.Context, role entity.Role) error

	// Grant attaches role to the account. Granting an already held role is a no-op.
	Grant(ctx context.Context, accountID uint64, role entity.Role) error

	// Revoke detaches role from the account and returns the number of memberships removed.
	Revoke(ctx context.Context, accountID uint64, role entity.Role) (int64, error)
}
