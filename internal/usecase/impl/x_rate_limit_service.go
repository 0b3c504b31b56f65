package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/repository"
	"authhub/internal/usecase"

	"github.com/pkg/errors"
)

type xRateLimitService struct {
	repo   repository.RateLimitRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewXRateLimitService creates the X rate-limit bookkeeping use case.
func NewXRateLimitService(repo repository.RateLimitRepository, logger *slog.Logger) usecase.XRateLimitUsecase {
	return &xRateLimitService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (srv *xRateLimitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *xRateLimitService) Record(ctx context.Context, identityID string, limit entity.RateLimit) error {
	limit.Method = strings.ToUpper(limit.Method)
	if limit.Method == "" {
		limit.Method = "GET"
	}
	limit.LastUpdated = srv.now()

	if err := srv.repo.Save(ctx, identityID, limit); err != nil {
		srv.log(ctx).Error("Failed to save rate limit",
			slog.String("identityID", identityID),
			slog.String("endpoint", limit.Endpoint),
			slog.Any("error", err),
		)

		return domainerrors.NewDatabaseExecuteError(err, "save rate limit "+identityDetails(identityID))
	}

	return nil
}

func (srv *xRateLimitService) Active(ctx context.Context, identityID, endpoint, method string) (*entity.RateLimit, error) {
	limit, err := srv.repo.Find(ctx, identityID, endpoint, strings.ToUpper(method))
	if errors.Is(err, repository.ErrRateLimitNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find rate limit "+identityDetails(identityID))
	}

	if !limit.IsLimiting(srv.now()) {
		return nil, nil
	}

	return limit, nil
}

func (srv *xRateLimitService) List(ctx context.Context, identityID string) ([]entity.RateLimit, error) {
	limits, err := srv.repo.List(ctx, identityID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list rate limits "+identityDetails(identityID))
	}

	return limits, nil
}

func (srv *xRateLimitService) Cleanup(ctx context.Context) (int64, error) {
	removed, err := srv.repo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "delete expired rate limits")
	}

	srv.log(ctx).Info("Cleaned up expired X rate limits", slog.Int64("removed", removed))

	return removed, nil
}
