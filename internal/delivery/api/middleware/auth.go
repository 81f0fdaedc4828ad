package middleware

import (
	"strings"

	"authsvc/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderAccessToken is the header the session token is read from.
	HeaderAccessToken = "x-access-token"

	accountIDKey = "accountID"
)

// AuthMiddleware gates routes on a valid session token for a live account.
type AuthMiddleware struct {
	credentials usecase.CredentialUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(credentials usecase.CredentialUsecase) *AuthMiddleware {
	return &AuthMiddleware{credentials: credentials}
}

// Authenticate rejects the request unless its token verifies and names an existing account.
// On success the account id is available through GetAccountID.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		out, err := m.credentials.IsAuthenticated(c.Request().Context(), &usecase.IsAuthenticatedInput{
			Token: TokenFromRequest(c),
		})
		if err != nil {
			return err
		}

		c.Set(accountIDKey, out.AccountID)

		return next(c)
	}
}

// TokenFromRequest returns the token from x-access-token, falling back to an
// "Authorization: Bearer" header. It returns "" when neither is present.
func TokenFromRequest(c echo.Context) string {
	header := c.Request().Header
	if token := strings.TrimSpace(header.Get(HeaderAccessToken)); token != "" {
		return token
	}

	scheme, token, ok := strings.Cut(header.Get(echo.HeaderAuthorization), " ")
	if ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}

	return ""
}

// GetAccountID returns the account id set by Authenticate.
func GetAccountID(c echo.Context) (uint64, bool) {
	id, ok := c.Get(accountIDKey).(uint64)

	return id, ok
}
