package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"authhub/internal/domain/entity"
	"authhub/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityRepository_FindOrCreateByAddress(t *testing.T) {
	repo := NewIdentityRepository(NewStore())
	ctx := context.Background()

	first, created, err := repo.FindOrCreateByAddress(ctx, "0xabc")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, entity.RoleUser, first.Role)

	second, created, err := repo.FindOrCreateByAddress(ctx, "0xabc")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}

func TestIdentityRepository_ConcurrentFindOrCreate(t *testing.T) {
	store := NewStore()
	repo := NewIdentityRepository(store)

	var wg sync.WaitGroup
	ids := make(chan string, 20)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			identity, _, err := repo.FindOrCreateByWhatsAppPhone(context.Background(), "15551234567")
			assert.NoError(t, err)
			ids <- identity.ID
		}()
	}
	wg.Wait()
	close(ids)

	unique := map[string]struct{}{}
	for id := range ids {
		unique[id] = struct{}{}
	}
	assert.Len(t, unique, 1)
	assert.Len(t, store.identities, 1)
}

func TestIdentityRepository_UpsertXAccount(t *testing.T) {
	repo := NewIdentityRepository(NewStore())
	ctx := context.Background()
	expires := time.Date(2025, 3, 14, 14, 0, 0, 0, time.UTC)

	created, isNew, err := repo.UpsertXAccount(ctx,
		entity.XProfile{UserID: "42", Username: "alice"},
		entity.XTokens{AccessToken: "enc-a", RefreshToken: "enc-r", ExpiresAt: expires},
	)
	require.NoError(t, err)
	assert.True(t, isNew)

	updated, isNew, err := repo.UpsertXAccount(ctx,
		entity.XProfile{UserID: "42", Username: "alice_new"},
		entity.XTokens{AccessToken: "enc-b", RefreshToken: "enc-r2", ExpiresAt: expires.Add(time.Hour)},
	)
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "alice_new", updated.XUsername)
	assert.Equal(t, "enc-b", updated.XAccessToken)

	require.NoError(t, repo.UpdateXTokens(ctx, created.ID, entity.XTokens{AccessToken: "enc-c", RefreshToken: "enc-r3", ExpiresAt: expires}))
	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "enc-c", got.XAccessToken)
	assert.True(t, got.XAccessTokenExpiresAt.Equal(expires))

	assert.ErrorIs(t, repo.UpdateXTokens(ctx, "missing", entity.XTokens{}), repository.ErrIdentityNotFound)
}

func TestIdentityRepository_List(t *testing.T) {
	store := NewStore()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++

		return base.Add(time.Duration(tick) * time.Minute)
	}
	repo := NewIdentityRepository(store)
	ctx := context.Background()

	for _, addr := range []string{"0x1", "0x2", "0x3"} {
		_, _, err := repo.FindOrCreateByAddress(ctx, addr)
		require.NoError(t, err)
	}

	page, total, err := repo.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, "0x3", page[0].Address, "newest first")
	assert.Equal(t, "0x2", page[1].Address)

	page, _, err = repo.List(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestIdentityRepository_APISecrets(t *testing.T) {
	repo := NewIdentityRepository(NewStore())
	ctx := context.Background()

	identity, _, err := repo.FindOrCreateByAddress(ctx, "0xabc")
	require.NoError(t, err)

	require.NoError(t, repo.AddAPISecret(ctx, identity.ID, entity.APISecret{Key: "k1", Title: "ci", HashedSecret: "h"}))

	owner, err := repo.FindByAPISecretKey(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, identity.ID, owner.ID)

	_, err = repo.FindByAPISecretKey(ctx, "k2")
	require.ErrorIs(t, err, repository.ErrAPISecretNotFound)

	require.NoError(t, repo.RemoveAPISecret(ctx, identity.ID, "k1"))
	require.ErrorIs(t, repo.RemoveAPISecret(ctx, identity.ID, "k1"), repository.ErrAPISecretNotFound)
	require.ErrorIs(t, repo.AddAPISecret(ctx, "missing", entity.APISecret{Key: "k"}), repository.ErrIdentityNotFound)
}

func TestIdentityRepository_ReturnsCopies(t *testing.T) {
	repo := NewIdentityRepository(NewStore())
	ctx := context.Background()

	identity, _, err := repo.FindOrCreateByAddress(ctx, "0xabc")
	require.NoError(t, err)
	identity.Role = entity.RoleSuper

	got, err := repo.FindByID(ctx, identity.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, got.Role)

	exists, err := repo.Exists(ctx, identity.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}
