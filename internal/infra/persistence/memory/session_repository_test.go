package memory

import (
	"context"
	"testing"
	"time"

	"authhub/internal/domain/entity"
	"authhub/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	repo := newSessionRepository(func() time.Time { return now })
	ctx := context.Background()

	sess := entity.NewSession("sid", time.Hour, now)
	sess.IssueNonce("abcdef123456")
	require.NoError(t, repo.Save(ctx, sess))

	loaded, err := repo.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "abcdef123456", loaded.Nonce())
	assert.False(t, loaded.IsNew())

	now = now.Add(time.Hour)
	_, err = repo.Get(ctx, "sid")
	require.ErrorIs(t, err, repository.ErrSessionNotFound)

	require.NoError(t, repo.Save(ctx, sess))
	require.NoError(t, repo.Delete(ctx, "sid"))
	_, err = repo.Get(ctx, "sid")
	require.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	repo := newSessionRepository(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, entity.NewSession("short", time.Minute, now)))
	require.NoError(t, repo.Save(ctx, entity.NewSession("long", time.Hour, now)))

	removed, err := repo.DeleteExpired(ctx, now.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.Get(ctx, "long")
	require.NoError(t, err)
}
