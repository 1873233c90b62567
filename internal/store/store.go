// Package store persists parse results and user accounts. Parse results
// are keyed by a content fingerprint of the raw resume text, so repeated
// parses of the same document hit the cache instead of re-running the
// pipeline. Stores are explicit dependencies passed to callers, never
// package-level state.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-advisor/internal/types"
)

// Fingerprint returns the cache key for a raw resume text.
func Fingerprint(rawText string) string {
	sum := sha256.Sum256([]byte(rawText))
	return hex.EncodeToString(sum[:])
}

// ParseResult is a cached parse: the adapted profile plus the
// intermediate extraction it came from.
type ParseResult struct {
	Fingerprint string             `json:"fingerprint"`
	Profile     *types.UserProfile `json:"profile"`
	Data        *types.ResumeData  `json:"data"`
	CreatedAt   time.Time          `json:"created_at"`
}

// ParseStore caches parse results by fingerprint. Get returns (nil, nil)
// when no entry exists.
type ParseStore interface {
	SaveParse(ctx context.Context, result *ParseResult) error
	GetParse(ctx context.Context, fingerprint string) (*ParseResult, error)
}

// User represents an account record.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
}

// UserStore persists accounts. The lookup methods return (nil, nil)
// when no account matches.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
