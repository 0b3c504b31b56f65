package repository

import (
	"context"
	"errors"
	"time"

	"authhub/internal/domain/entity"
)

// ErrRateLimitNotFound is returned when no snapshot matches endpoint and method.
var ErrRateLimitNotFound = errors.New("rate limit not found")

// RateLimitRepository stores the X rate-limit snapshots of an identity.
// Lookups and writes match an exact endpoint first and fall back to the
// normalized endpoint (entity.NormalizeEndpoint).
type RateLimitRepository interface {
	Find(ctx context.Context, identityID, endpoint, method string) (*entity.RateLimit, error)

	List(ctx context.Context, identityID string) ([]entity.RateLimit, error)

	// Save replaces the matching snapshot in place or appends a new one.
	Save(ctx context.Context, identityID string, limit entity.RateLimit) error

	// DeleteExpired removes snapshots whose windows have all reset and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
