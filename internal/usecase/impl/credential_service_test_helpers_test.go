package impl

import (
	"io"
	"log/slog"

	"authsvc/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
			TokenTTL:   config.DefaultTokenTTL,
		},
		PasswordPolicy: &config.PasswordPolicyConfig{
			MinLength: config.DefaultPasswordMinLength,
			MaxLength: config.DefaultPasswordMaxLength,
		},
	}
}
