package memory

import (
	"context"
	"slices"
	"strings"

	"authhub/internal/domain/entity"
	"authhub/internal/domain/repository"

	"github.com/google/uuid"
)

type identityRepository struct {
	store *Store
}

func NewIdentityRepository(store *Store) repository.IdentityRepository {
	return &identityRepository{store: store}
}

func (repo *identityRepository) FindByID(_ context.Context, id string) (*entity.Identity, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	identity, ok := repo.store.identities[id]
	if !ok {
		return nil, repository.ErrIdentityNotFound
	}

	return cloneIdentity(identity), nil
}

func (repo *identityRepository) Exists(_ context.Context, id string) (bool, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	_, ok := repo.store.identities[id]

	return ok, nil
}

// findOrCreate runs match and insert under one write lock, which is what
// makes it atomic for this store.
func (repo *identityRepository) findOrCreate(match func(*entity.Identity) bool, init func(*entity.Identity)) (*entity.Identity, bool) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for _, identity := range repo.store.identities {
		if match(identity) {
			return cloneIdentity(identity), false
		}
	}

	now := repo.store.now()
	identity := &entity.Identity{
		ID:        uuid.NewString(),
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	init(identity)
	repo.store.identities[identity.ID] = identity

	return cloneIdentity(identity), true
}

func (repo *identityRepository) FindOrCreateByAddress(_ context.Context, address string) (*entity.Identity, bool, error) {
	identity, created := repo.findOrCreate(
		func(i *entity.Identity) bool { return i.Address == address },
		func(i *entity.Identity) { i.Address = address },
	)

	return identity, created, nil
}

func (repo *identityRepository) FindOrCreateByWhatsAppPhone(_ context.Context, phone string) (*entity.Identity, bool, error) {
	identity, created := repo.findOrCreate(
		func(i *entity.Identity) bool { return i.WhatsAppPhone == phone },
		func(i *entity.Identity) { i.WhatsAppPhone = phone },
	)

	return identity, created, nil
}

func applyXAccount(identity *entity.Identity, profile entity.XProfile, tokens entity.XTokens) {
	identity.XUserID = profile.UserID
	identity.XUsername = profile.Username
	identity.XDisplayName = profile.DisplayName
	identity.XProfileImageURL = profile.ProfileImageURL
	applyXTokens(identity, tokens)
}

func applyXTokens(identity *entity.Identity, tokens entity.XTokens) {
	expiresAt := tokens.ExpiresAt
	identity.XAccessToken = tokens.AccessToken
	identity.XRefreshToken = tokens.RefreshToken
	identity.XAccessTokenExpiresAt = &expiresAt
}

func (repo *identityRepository) UpsertXAccount(_ context.Context, profile entity.XProfile, tokens entity.XTokens) (*entity.Identity, bool, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	now := repo.store.now()
	for _, identity := range repo.store.identities {
		if identity.XUserID == profile.UserID {
			applyXAccount(identity, profile, tokens)
			identity.UpdatedAt = now

			return cloneIdentity(identity), false, nil
		}
	}

	identity := &entity.Identity{
		ID:        uuid.NewString(),
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyXAccount(identity, profile, tokens)
	repo.store.identities[identity.ID] = identity

	return cloneIdentity(identity), true, nil
}

func (repo *identityRepository) UpdateXTokens(_ context.Context, id string, tokens entity.XTokens) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	identity, ok := repo.store.identities[id]
	if !ok {
		return repository.ErrIdentityNotFound
	}
	applyXTokens(identity, tokens)
	identity.UpdatedAt = repo.store.now()

	return nil
}

func (repo *identityRepository) List(_ context.Context, offset, limit int) ([]*entity.Identity, int64, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	all := make([]*entity.Identity, 0, len(repo.store.identities))
	for _, identity := range repo.store.identities {
		all = append(all, identity)
	}
	slices.SortFunc(all, func(a, b *entity.Identity) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(a.ID, b.ID)
	})

	total := int64(len(all))
	if offset >= len(all) {
		return []*entity.Identity{}, total, nil
	}
	end := min(offset+limit, len(all))

	page := make([]*entity.Identity, 0, end-offset)
	for _, identity := range all[offset:end] {
		page = append(page, cloneIdentity(identity))
	}

	return page, total, nil
}

func (repo *identityRepository) FindByAPISecretKey(_ context.Context, key string) (*entity.Identity, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, identity := range repo.store.identities {
		if _, ok := identity.FindAPISecret(key); ok {
			return cloneIdentity(identity), nil
		}
	}

	return nil, repository.ErrAPISecretNotFound
}

func (repo *identityRepository) AddAPISecret(_ context.Context, id string, secret entity.APISecret) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	identity, ok := repo.store.identities[id]
	if !ok {
		return repository.ErrIdentityNotFound
	}
	identity.APISecrets = append(identity.APISecrets, secret)
	identity.UpdatedAt = repo.store.now()

	return nil
}

func (repo *identityRepository) RemoveAPISecret(_ context.Context, id, key string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	identity, ok := repo.store.identities[id]
	if !ok {
		return repository.ErrIdentityNotFound
	}

	idx := slices.IndexFunc(identity.APISecrets, func(s entity.APISecret) bool { return s.Key == key })
	if idx < 0 {
		return repository.ErrAPISecretNotFound
	}
	identity.APISecrets = slices.Delete(identity.APISecrets, idx, idx+1)
	identity.UpdatedAt = repo.store.now()

	return nil
}
