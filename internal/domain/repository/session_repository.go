package repository

import (
	"context"
	"errors"
	"time"

	"authhub/internal/domain/entity"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository is the backing store of the cookie-keyed session.
// Save expires the entry after session.TTL.
type SessionRepository interface {
	Get(ctx context.Context, id string) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes entries past their expiry and returns how many
	// were removed. Stores that expire entries on their own may remove none.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
