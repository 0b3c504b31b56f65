package service

import (
	"context"
	"time"
)

// SendLimiter caps how often an action may happen for a key within a window.
type SendLimiter interface {
	// Allow records one attempt for key. When the limit is exhausted it
	// returns false and the time until the window resets.
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}
