// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"time"

	"authsvc/config"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/service"
	"authsvc/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// bcryptMaxPasswordBytes is the longest input bcrypt accepts without truncation.
const bcryptMaxPasswordBytes = 72

// bcryptHasher implements service.PasswordHasher with bcrypt. Hashing and comparison are
// CPU-bound, so both run under a bounded worker semaphore to keep request goroutines from
// saturating every core.
type bcryptHasher struct {
	cost    int
	workers *semaphore.Weighted
	metrics *metrics.Metrics
}

// HasherParams holds dependencies for the hasher, injected by Fx.
type HasherParams struct {
	fx.In

	Config  *config.Config
	Metrics *metrics.Metrics `optional:"true"`
}

// NewBcryptHasher builds the hasher from auth.bcryptCost and auth.hashWorkers.
func NewBcryptHasher(params HasherParams) service.PasswordHasher {
	cost, workers := config.DefaultBcryptCost, 1
	if params.Config != nil && params.Config.Auth != nil {
		cost = params.Config.Auth.BcryptCost
		workers = params.Config.Auth.HashWorkers
	}

	return NewBcryptHasherWithCost(cost, workers, params.Metrics)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost and pool size.
// A non-positive pool size means one worker.
func NewBcryptHasherWithCost(cost, workers int, m *metrics.Metrics) service.PasswordHasher {
	if workers <= 0 {
		workers = 1
	}

	return &bcryptHasher{
		cost:    cost,
		workers: semaphore.NewWeighted(int64(workers)),
		metrics: m,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt draws a fresh random salt per call and embeds it in the output.
func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	if len(password) > bcryptMaxPasswordBytes {
		return "", domainerrors.ErrValidationFailed.WithDetails("password must not exceed 72 bytes")
	}

	if err := h.workers.Acquire(ctx, 1); err != nil {
		return "", errors.Wrap(err, "waiting for hash worker")
	}
	defer h.workers.Release(1)

	start := time.Now()
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	h.metrics.ObserveHash("hash", time.Since(start))

	if err != nil {
		return "", errors.Wrapf(domainerrors.ErrPasswordHashFailed, "bcrypt: %v", err)
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
// bcrypt ignores bytes past 72, and Hash never stores a longer password, so a longer guess
// cannot match.
func (h *bcryptHasher) Check(ctx context.Context, password, hash string) (bool, error) {
	if len(password) > bcryptMaxPasswordBytes {
		return false, nil
	}

	if err := h.workers.Acquire(ctx, 1); err != nil {
		return false, errors.Wrap(err, "waiting for hash worker")
	}
	defer h.workers.Release(1)

	start := time.Now()
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	h.metrics.ObserveHash("check", time.Since(start))

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, errors.Wrapf(domainerrors.ErrPasswordHashFailed, "stored hash is malformed: %v", err)
	}
}
