package ratelimit

import (
	"context"
	"sync"
	"time"

	"authhub/internal/domain/service"
)

type window struct {
	count   int
	resetAt time.Time
}

type memoryLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	entries map[string]*window
	now     func() time.Time
}

// NewMemoryLimiter keeps counters in process. Counts are not shared between replicas.
func NewMemoryLimiter(limit int, windowSize time.Duration) service.SendLimiter {
	return newMemoryLimiter(limit, windowSize, time.Now)
}

func newMemoryLimiter(limit int, windowSize time.Duration, now func() time.Time) *memoryLimiter {
	return &memoryLimiter{
		limit:   limit,
		window:  windowSize,
		entries: make(map[string]*window),
		now:     now,
	}
}

func (l *memoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evict(now)

	w, ok := l.entries[key]
	if !ok {
		w = &window{resetAt: now.Add(l.window)}
		l.entries[key] = w
	}
	w.count++

	if w.count > l.limit {
		return false, w.resetAt.Sub(now), nil
	}

	return true, 0, nil
}

func (l *memoryLimiter) evict(now time.Time) {
	for key, w := range l.entries {
		if !now.Before(w.resetAt) {
			delete(l.entries, key)
		}
	}
}
