package impl

import (
	"context"
	"errors"
	"testing"

	domainerrors "authhub/internal/domain/errors"
	mockRepo "authhub/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_PurgeExpired(t *testing.T) {
	repo := mockRepo.NewMockSessionRepository(t)
	srv := NewSessionService(repo, newDiscardLogger()).(*sessionService)
	srv.now = fixedClock
	ctx := context.Background()

	repo.EXPECT().DeleteExpired(ctx, testNow).Return(int64(2), nil).Once()

	removed, err := srv.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	repo.EXPECT().DeleteExpired(ctx, testNow).Return(int64(0), errors.New("connection reset")).Once()

	_, err = srv.PurgeExpired(ctx)
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}
