// Package memory keeps identities, rate limits and sessions in process.
// It backs the "memory" storage driver used in development and tests.
package memory

import (
	"sync"
	"time"

	"authhub/internal/domain/entity"
)

// Store is shared by the identity and rate-limit repositories because rate
// limits are embedded in the identity record.
type Store struct {
	mu         sync.RWMutex
	identities map[string]*entity.Identity
	now        func() time.Time
}

func NewStore() *Store {
	return &Store{
		identities: make(map[string]*entity.Identity),
		now:        time.Now,
	}
}

func cloneIdentity(src *entity.Identity) *entity.Identity {
	dst := *src
	if src.XAccessTokenExpiresAt != nil {
		exp := *src.XAccessTokenExpiresAt
		dst.XAccessTokenExpiresAt = &exp
	}
	dst.XRateLimits = cloneRateLimits(src.XRateLimits)
	if src.APISecrets != nil {
		dst.APISecrets = append([]entity.APISecret(nil), src.APISecrets...)
	}

	return &dst
}

func cloneRateLimits(src []entity.RateLimit) []entity.RateLimit {
	if src == nil {
		return nil
	}
	dst := make([]entity.RateLimit, len(src))
	for i, limit := range src {
		if limit.Day != nil {
			day := *limit.Day
			limit.Day = &day
		}
		dst[i] = limit
	}

	return dst
}
