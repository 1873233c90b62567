package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultTokenTTL = 24 * time.Hour

// JWTConfig carries the signing secret and token lifetime for the
// account endpoints.
type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// NewJWTConfig reads JWT settings from the environment. JWT_SECRET is
// required; JWT_TTL_HOURS is optional and defaults to 24.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	ttl := defaultTokenTTL
	if raw := os.Getenv("JWT_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL_HOURS: %w", err)
		}
		if hours < 1 {
			return nil, fmt.Errorf("JWT_TTL_HOURS must be at least 1, got %d", hours)
		}
		ttl = time.Duration(hours) * time.Hour
	}

	return &JWTConfig{Secret: secret, TokenTTL: ttl}, nil
}
