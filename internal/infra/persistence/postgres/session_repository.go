package postgres

import (
	"context"
	"time"

	"authhub/internal/domain/entity"
	"authhub/internal/domain/repository"
	"authhub/internal/infra/persistence/model"
	"authhub/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sessionRepository struct {
	q   *query.Query
	now func() time.Time
}

func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{q: query.Use(db), now: time.Now}
}

func (repo *sessionRepository) Get(ctx context.Context, id string) (*entity.Session, error) {
	s := repo.q.SessionModel
	m, err := s.WithContext(ctx).Where(s.ID.Eq(id), s.ExpiresAt.Gt(repo.now())).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	return toSessionDomain(m), nil
}

func (repo *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	now := repo.now()
	m := &model.SessionModel{
		ID:        session.ID,
		Data:      datatypes.NewJSONType(toSessionState(session)),
		ExpiresAt: now.Add(session.TTL),
		CreatedAt: session.CreatedAt,
		UpdatedAt: now,
	}

	err := repo.q.SessionModel.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "expires_at", "updated_at"}),
	}).Create(m)

	return errors.Wrap(err, "failed to save session")
}

func (repo *sessionRepository) Delete(ctx context.Context, id string) error {
	s := repo.q.SessionModel
	_, err := s.WithContext(ctx).Where(s.ID.Eq(id)).Delete()

	return errors.Wrap(err, "failed to delete session")
}

// DeleteExpired is the only way expired rows leave the table; PostgreSQL
// has no TTL index.
func (repo *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	s := repo.q.SessionModel
	info, err := s.WithContext(ctx).Where(s.ExpiresAt.Lte(now)).Delete()

	return info.RowsAffected, errors.Wrap(err, "failed to delete expired sessions")
}
