package usecase

import "context"

// SessionUsecase maintains the session store.
type SessionUsecase interface {
	// PurgeExpired removes expired sessions and returns how many were removed.
	PurgeExpired(ctx context.Context) (int64, error)
}
