// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"authsvc/internal/domain/entity"
)

// --- Input DTOs ---

// CreateAccountInput defines the data required to register a new account.
type CreateAccountInput struct {
	Email    string
	Password string
}

// DestroyAccountInput identifies the account to delete.
type DestroyAccountInput struct {
	AccountID uint64
}

// SignInInput defines the credentials presented at sign-in.
type SignInInput struct {
	Email    string
	Password string
}

// IsAuthenticatedInput carries the session token presented by the caller.
type IsAuthenticatedInput struct {
	Token string
}

// IsAdminInput identifies the account whose ADMIN membership is queried.
type IsAdminInput struct {
	AccountID uint64
}

// --- Output DTOs ---

// CreateAccountOutput returns the newly created account. PasswordHash is populated but must
// never be rendered to clients.
type CreateAccountOutput struct {
	Account *entity.Account
}

// DestroyAccountOutput reports how many accounts were removed (0 or 1).
type DestroyAccountOutput struct {
	Deleted int64
}

// SignInOutput returns the issued session token.
type SignInOutput struct {
	Token     string
	ExpiresAt time.Time
	AccountID uint64
}

// IsAuthenticatedOutput returns the account the token belongs to.
type IsAuthenticatedOutput struct {
	AccountID uint64
}

// IsAdminOutput answers the role query.
type IsAdminOutput struct {
	IsAdmin bool
}

// CredentialUsecase defines the account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CredentialUsecase interface {
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error)
	DestroyAccount(ctx context.Context, input *DestroyAccountInput) (*DestroyAccountOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)
	IsAuthenticated(ctx context.Context, input *IsAuthenticatedInput) (*IsAuthenticatedOutput, error)
	IsAdmin(ctx context.Context, input *IsAdminInput) (*IsAdminOutput, error)
}

// RoleAdminUsecase grants and revokes roles. It backs operator tooling only.
type RoleAdminUsecase interface {
	GrantRole(ctx context.Context, accountID uint64, role entity.Role) error
	RevokeRole(ctx context.Context, accountID uint64, role entity.Role) (int64, error)
}
