package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_Allow(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	l := newMemoryLimiter(2, time.Hour, func() time.Time { return now })
	ctx := context.Background()

	for range 2 {
		ok, _, err := l.Allow(ctx, "otp:send:15551234567")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	now = now.Add(20 * time.Minute)
	ok, retryAfter, err := l.Allow(ctx, "otp:send:15551234567")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 40*time.Minute, retryAfter)

	ok, _, err = l.Allow(ctx, "otp:send:15550000000")
	require.NoError(t, err)
	assert.True(t, ok, "keys are counted independently")
}

func TestMemoryLimiter_WindowResets(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	l := newMemoryLimiter(1, time.Hour, func() time.Time { return now })
	ctx := context.Background()

	ok, _, _ := l.Allow(ctx, "k")
	assert.True(t, ok)
	ok, _, _ = l.Allow(ctx, "k")
	assert.False(t, ok)

	now = now.Add(time.Hour)
	ok, _, err := l.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}
