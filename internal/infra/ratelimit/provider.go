// Package ratelimit provides the send limiter guarding OTP delivery.
package ratelimit

import (
	"context"
	"log/slog"

	"authhub/config"
	"authhub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type LimiterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSendLimiter uses Redis when configured and falls back to process memory.
func NewSendLimiter(params LimiterParams) (service.SendLimiter, error) {
	otp := params.Config.OTPSettings()

	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		params.Logger.Info("Using in-memory OTP send limiter",
			slog.Int("limit", otp.SendLimit),
			slog.Duration("window", otp.SendWindow),
		)

		return NewMemoryLimiter(otp.SendLimit, otp.SendWindow), nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "ping redis")
			}
			params.Logger.Info("Redis OTP send limiter connected", slog.String("addr", params.Config.Redis.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return rdb.Close()
		},
	})

	return NewRedisLimiter(rdb, otp.SendLimit, otp.SendWindow), nil
}
