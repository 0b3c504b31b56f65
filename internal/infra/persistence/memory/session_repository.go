package memory

import (
	"context"
	"sync"
	"time"

	"authhub/internal/domain/entity"
	"authhub/internal/domain/repository"
)

type sessionEntry struct {
	session   *entity.Session
	expiresAt time.Time
}

type sessionRepository struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	now      func() time.Time
}

func NewSessionRepository() repository.SessionRepository {
	return newSessionRepository(time.Now)
}

func newSessionRepository(now func() time.Time) *sessionRepository {
	return &sessionRepository{
		sessions: make(map[string]sessionEntry),
		now:      now,
	}
}

func (repo *sessionRepository) Get(_ context.Context, id string) (*entity.Session, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	entry, ok := repo.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	if !repo.now().Before(entry.expiresAt) {
		delete(repo.sessions, id)

		return nil, repository.ErrSessionNotFound
	}

	return entry.session.Clone(), nil
}

func (repo *sessionRepository) Save(_ context.Context, session *entity.Session) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.sessions[session.ID] = sessionEntry{
		session:   session.Clone(),
		expiresAt: repo.now().Add(session.TTL),
	}

	return nil
}

func (repo *sessionRepository) Delete(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.sessions, id)

	return nil
}

func (repo *sessionRepository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var removed int64
	for id, entry := range repo.sessions {
		if !now.Before(entry.expiresAt) {
			delete(repo.sessions, id)
			removed++
		}
	}

	return removed, nil
}
