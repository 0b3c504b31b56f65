package ratelimit

import (
	"context"
	"time"

	"authhub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// KEYS[1]=counter key; ARGV[1]=window in ms.
// Returns {count, remaining ttl in ms}.
var fixedWindowScript = redis.NewScript(`
  local n = redis.call('INCR', KEYS[1])
  if n == 1 then
    redis.call('PEXPIRE', KEYS[1], ARGV[1])
  end
  local ttl = redis.call('PTTL', KEYS[1])
  if ttl < 0 then
    redis.call('PEXPIRE', KEYS[1], ARGV[1])
    ttl = tonumber(ARGV[1])
  end
  return {n, ttl}
`)

const keyPrefix = "authhub:ratelimit:"

type redisLimiter struct {
	rdb    redis.Scripter
	limit  int
	window time.Duration
}

// NewRedisLimiter counts attempts in a fixed window shared by all replicas.
func NewRedisLimiter(rdb redis.Scripter, limit int, window time.Duration) service.SendLimiter {
	return &redisLimiter{rdb: rdb, limit: limit, window: window}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	res, err := fixedWindowScript.Run(ctx, l.rdb, []string{keyPrefix + key}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return false, 0, errors.Wrap(err, "rate limit script")
	}
	if len(res) != 2 {
		return false, 0, errors.Errorf("rate limit script returned %d values", len(res))
	}

	if res[0] > int64(l.limit) {
		return false, time.Duration(res[1]) * time.Millisecond, nil
	}

	return true, 0, nil
}
