package impl

import (
	"context"
	"testing"
	"time"

	"authhub/internal/domain/entity"
	"authhub/internal/domain/repository"
	mockRepo "authhub/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitService(t *testing.T) (*xRateLimitService, *mockRepo.MockRateLimitRepository) {
	repo := mockRepo.NewMockRateLimitRepository(t)
	srv := NewXRateLimitService(repo, newDiscardLogger()).(*xRateLimitService)
	srv.now = fixedClock

	return srv, repo
}

func TestXRateLimitService_Record(t *testing.T) {
	srv, repo := newRateLimitService(t)
	ctx := context.Background()

	repo.EXPECT().Save(ctx, "id-1", entity.RateLimit{
		Endpoint:    "users/me",
		Method:      "GET",
		Limit:       75,
		LastUpdated: testNow,
	}).Return(nil)

	require.NoError(t, srv.Record(ctx, "id-1", entity.RateLimit{Endpoint: "users/me", Limit: 75}))
}

func TestXRateLimitService_Active(t *testing.T) {
	ctx := context.Background()
	future := testNow.Add(time.Minute).Unix()

	t.Run("limiting", func(t *testing.T) {
		srv, repo := newRateLimitService(t)
		limit := &entity.RateLimit{Endpoint: "users/me", Method: "GET", Remaining: 0, Reset: future}
		repo.EXPECT().Find(ctx, "id-1", "users/me", "GET").Return(limit, nil)

		active, err := srv.Active(ctx, "id-1", "users/me", "get")
		require.NoError(t, err)
		assert.Equal(t, limit, active)
	})

	t.Run("remaining calls", func(t *testing.T) {
		srv, repo := newRateLimitService(t)
		repo.EXPECT().Find(ctx, "id-1", "users/me", "GET").Return(&entity.RateLimit{Remaining: 3, Reset: future}, nil)

		active, err := srv.Active(ctx, "id-1", "users/me", "GET")
		require.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		srv, repo := newRateLimitService(t)
		repo.EXPECT().Find(ctx, "id-1", "tweets", "GET").Return(nil, repository.ErrRateLimitNotFound)

		active, err := srv.Active(ctx, "id-1", "tweets", "GET")
		require.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("store failure", func(t *testing.T) {
		srv, repo := newRateLimitService(t)
		repo.EXPECT().Find(ctx, "id-1", "tweets", "GET").Return(nil, errors.New("timeout"))

		_, err := srv.Active(ctx, "id-1", "tweets", "GET")
		assert.Error(t, err)
	})
}

func TestXRateLimitService_Cleanup(t *testing.T) {
	srv, repo := newRateLimitService(t)
	ctx := context.Background()

	repo.EXPECT().DeleteExpired(ctx, testNow).Return(int64(4), nil)

	removed, err := srv.Cleanup(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
}
