package memory

import (
	"context"
	"time"

	"authhub/internal/domain/entity"
	"authhub/internal/domain/repository"
)

type rateLimitRepository struct {
	store *Store
}

func NewRateLimitRepository(store *Store) repository.RateLimitRepository {
	return &rateLimitRepository{store: store}
}

func (repo *rateLimitRepository) Find(_ context.Context, identityID, endpoint, method string) (*entity.RateLimit, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	identity, ok := repo.store.identities[identityID]
	if !ok {
		return nil, repository.ErrIdentityNotFound
	}

	idx, found := entity.FindRateLimit(identity.XRateLimits, endpoint, method)
	if !found {
		return nil, repository.ErrRateLimitNotFound
	}

	return &cloneRateLimits(identity.XRateLimits[idx : idx+1])[0], nil
}

func (repo *rateLimitRepository) List(_ context.Context, identityID string) ([]entity.RateLimit, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	identity, ok := repo.store.identities[identityID]
	if !ok {
		return nil, repository.ErrIdentityNotFound
	}

	return cloneRateLimits(identity.XRateLimits), nil
}

func (repo *rateLimitRepository) Save(_ context.Context, identityID string, limit entity.RateLimit) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	identity, ok := repo.store.identities[identityID]
	if !ok {
		return repository.ErrIdentityNotFound
	}

	saved := cloneRateLimits([]entity.RateLimit{limit})[0]
	if idx, found := entity.FindRateLimit(identity.XRateLimits, limit.Endpoint, limit.Method); found {
		identity.XRateLimits[idx] = saved
	} else {
		identity.XRateLimits = append(identity.XRateLimits, saved)
	}

	return nil
}

func (repo *rateLimitRepository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	var removed int64
	for _, identity := range repo.store.identities {
		kept := identity.XRateLimits[:0]
		for _, limit := range identity.XRateLimits {
			if limit.IsExpired(now) {
				removed++

				continue
			}
			kept = append(kept, limit)
		}
		identity.XRateLimits = kept
	}

	return removed, nil
}
