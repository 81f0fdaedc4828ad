package entity

// TokenClaims is the identity payload embedded in a session token.
type TokenClaims struct {
	Email     string
	AccountID uint64
}
