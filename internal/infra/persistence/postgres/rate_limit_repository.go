package postgres

import (
	"context"
	"time"

	"authhub/internal/domain/entity"
	"authhub/internal/domain/repository"
	"authhub/internal/infra/persistence/model"
	"authhub/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type rateLimitRepository struct {
	q *query.Query
}

func NewRateLimitRepository(db *gorm.DB) repository.RateLimitRepository {
	return &rateLimitRepository{q: query.Use(db)}
}

// load returns the snapshots of an identity in insertion order. With lock
// set the identity row is locked for the rest of the transaction.
func load(ctx context.Context, q *query.Query, identityID uuid.UUID, lock bool) ([]*model.RateLimitModel, error) {
	i := q.IdentityModel
	owner := i.WithContext(ctx).Select(i.ID).Where(i.ID.Eq(identityID))
	if lock {
		owner = owner.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if _, err := owner.First(); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to load identity")
	}

	r := q.RateLimitModel
	models, err := r.WithContext(ctx).Where(r.IdentityID.Eq(identityID)).Order(r.ID).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load rate limits")
	}

	return models, nil
}

func (repo *rateLimitRepository) Find(ctx context.Context, identityID, endpoint, method string) (*entity.RateLimit, error) {
	uid, err := parseID(identityID)
	if err != nil {
		return nil, err
	}

	models, err := load(ctx, repo.q, uid, false)
	if err != nil {
		return nil, err
	}

	limits := toRateLimitsDomain(models)
	idx, found := entity.FindRateLimit(limits, endpoint, method)
	if !found {
		return nil, repository.ErrRateLimitNotFound
	}

	return &limits[idx], nil
}

func (repo *rateLimitRepository) List(ctx context.Context, identityID string) ([]entity.RateLimit, error) {
	uid, err := parseID(identityID)
	if err != nil {
		return nil, err
	}

	models, err := load(ctx, repo.q, uid, false)
	if err != nil {
		return nil, err
	}

	return toRateLimitsDomain(models), nil
}

func (repo *rateLimitRepository) Save(ctx context.Context, identityID string, limit entity.RateLimit) error {
	uid, err := parseID(identityID)
	if err != nil {
		return err
	}

	return repo.q.Transaction(func(tx *query.Query) error {
		models, err := load(ctx, tx, uid, true)
		if err != nil {
			return err
		}

		row := toRateLimitModel(uid, limit)
		if idx, found := entity.FindRateLimit(toRateLimitsDomain(models), limit.Endpoint, limit.Method); found {
			row.ID = models[idx].ID
		}

		return errors.Wrap(tx.RateLimitModel.WithContext(ctx).Save(row), "failed to save rate limit")
	})
}

func (repo *rateLimitRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r := repo.q.RateLimitModel

	candidates, err := r.WithContext(ctx).Where(r.Reset.Lte(now.Unix())).Find()
	if err != nil {
		return 0, errors.Wrap(err, "failed to scan rate limits")
	}

	ids := make([]uint64, 0, len(candidates))
	for _, candidate := range candidates {
		if toRateLimitDomain(candidate).IsExpired(now) {
			ids = append(ids, candidate.ID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	info, err := r.WithContext(ctx).Where(r.ID.In(ids...)).Delete()
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete rate limits")
	}

	return info.RowsAffected, nil
}
