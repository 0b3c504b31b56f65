package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "authhub/internal/delivery/context"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/repository"
	"authhub/internal/usecase"
)

type sessionService struct {
	repo   repository.SessionRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewSessionService(repo repository.SessionRepository, logger *slog.Logger) usecase.SessionUsecase {
	return &sessionService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (srv *sessionService) PurgeExpired(ctx context.Context) (int64, error) {
	removed, err := srv.repo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "delete expired sessions")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Purged expired sessions", slog.Int64("removed", removed))

	return removed, nil
}
