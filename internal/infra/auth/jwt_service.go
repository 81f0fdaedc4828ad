package auth

import (
	"log/slog"
	"strconv"
	"time"

	"authsvc/config"
	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionClaims is the wire form of entity.TokenClaims.
type sessionClaims struct {
	Email     string `json:"email"`
	AccountID uint64 `json:"id"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// JWTOption customizes a jwtService.
type JWTOption func(*jwtService)

// WithClock replaces time.Now for issuing and verifying.
func WithClock(now func() time.Time) JWTOption {
	return func(s *jwtService) {
		s.now = now
	}
}

// JWTParams holds dependencies for the token service, injected by Fx.
type JWTParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewJWTService builds the token service from secretKey.access and auth.tokenTTL.
// An empty secret is a startup error.
func NewJWTService(params JWTParams) (service.TokenService, error) {
	ttl := config.DefaultTokenTTL
	if params.Config.Auth != nil && params.Config.Auth.TokenTTL > 0 {
		ttl = params.Config.Auth.TokenTTL
	}

	return NewJWTServiceWithOptions(params.Config.SecretKey.Access, ttl, params.Logger)
}

// NewJWTServiceWithOptions builds a token service from explicit values.
func NewJWTServiceWithOptions(secret string, ttl time.Duration, logger *slog.Logger, opts ...JWTOption) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		return nil, errors.Errorf("token ttl must be positive, got %s", ttl)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Issue signs claims with the server secret. The token expires TTL after issuance.
func (s *jwtService) Issue(claims entity.TokenClaims) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.WithStack(domainerrors.ErrTokenSigningFailed)
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Email:     claims.Email,
		AccountID: claims.AccountID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(claims.AccountID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrapf(domainerrors.ErrTokenSigningFailed, "sign token: %v", err)
	}

	return signed, nil
}

// Verify checks signature, algorithm and expiry. Expired and tampered tokens are logged
// differently but return the same error.
func (s *jwtService) Verify(tokenString string) (*entity.TokenClaims, error) {
	claims := &sessionClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			s.logger.Debug("Token rejected: expired")
		} else {
			s.logger.Debug("Token rejected: invalid", slog.Any("error", err))
		}

		return nil, errors.WithStack(domainerrors.ErrInvalidToken)
	}

	if claims.AccountID == 0 {
		s.logger.Debug("Token rejected: missing account id")

		return nil, errors.WithStack(domainerrors.ErrInvalidToken)
	}

	return &entity.TokenClaims{
		Email:     claims.Email,
		AccountID: claims.AccountID,
	}, nil
}

// TTL returns the configured token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
