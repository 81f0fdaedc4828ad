package service

import (
	"time"

	"authsvc/internal/domain/entity"
)

// TokenService issues and verifies stateless, signed, time-limited session tokens.
type TokenService interface {
	// Issue signs claims into a token that expires TTL() from now.
	Issue(claims entity.TokenClaims) (string, error)

	// Verify checks signature and expiry and returns the embedded claims.
	// Every failure is reported as the same invalid-token error.
	Verify(token string) (*entity.TokenClaims, error)

	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}
