// Package postgres implements the repositories on PostgreSQL through GORM.
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
	"gorm.io/gen/field"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type identityRepository struct {
	q   *query.Query
	now func() time.Time
}

// NewIdentityRepository builds the repository on the generated query API.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{
		q:   query.Use(db),
		now: time.Now,
	}
}

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, repository.ErrIdentityNotFound
	}

	return uid, nil
}

// first loads one identity with its rate limits and api secrets in
// insertion order.
func (repo *identityRepository) first(ctx context.Context, cond field.Expr, by string) (*entity.Identity, error) {
	i := repo.q.IdentityModel
	identityM, err := i.WithContext(ctx).
		Preload(i.RateLimits.Order(repo.q.RateLimitModel.ID)).
		Preload(i.APISecrets.Order(repo.q.APISecretModel.ID)).
		Where(cond).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrapf(err, "failed to find identity by %s", by)
	}

	return toIdentityDomain(identityM), nil
}

func (repo *identityRepository) FindByID(ctx context.Context, id string) (*entity.Identity, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	return repo.first(ctx, repo.q.IdentityModel.ID.Eq(uid), "id")
}

func (repo *identityRepository) Exists(ctx context.Context, id string) (bool, error) {
	uid, err := parseID(id)
	if err != nil {
		return false, nil
	}

	i := repo.q.IdentityModel
	count, err := i.WithContext(ctx).Where(i.ID.Eq(uid)).Limit(1).Count()
	if err != nil {
		return false, errors.Wrap(err, "failed to count identity")
	}

	return count > 0, nil
}

// findOrCreate inserts with ON CONFLICT DO NOTHING against the unique index
// behind cond and reads back whichever row won. The caller created the
// identity when the stored id is the one it generated.
func (repo *identityRepository) findOrCreate(ctx context.Context, cond field.Expr, by string, identityM *model.IdentityModel) (*entity.Identity, bool, error) {
	now := repo.now()
	identityM.ID = uuid.Must(uuid.NewV7())
	identityM.Role = string(entity.RoleUser)
	identityM.CreatedAt = now
	identityM.UpdatedAt = now

	err := repo.q.IdentityModel.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(identityM)
	if err != nil && !isUniqueConstraintViolation(err) {
		return nil, false, errors.Wrapf(err, "failed to create identity by %s", by)
	}

	identity, err := repo.first(ctx, cond, by)
	if err != nil {
		return nil, false, err
	}

	return identity, identity.ID == identityM.ID.String(), nil
}

func (repo *identityRepository) FindOrCreateByAddress(ctx context.Context, address string) (*entity.Identity, bool, error) {
	return repo.findOrCreate(ctx, repo.q.IdentityModel.Address.Eq(address), "address", &model.IdentityModel{Address: optional(address)})
}

func (repo *identityRepository) FindOrCreateByWhatsAppPhone(ctx context.Context, phone string) (*entity.Identity, bool, error) {
	return repo.findOrCreate(ctx, repo.q.IdentityModel.WhatsAppPhone.Eq(phone), "whatsapp_phone", &model.IdentityModel{WhatsAppPhone: optional(phone)})
}

func (repo *identityRepository) xTokenAssignments(tokens entity.XTokens, now time.Time) []field.AssignExpr {
	i := repo.q.IdentityModel

	return []field.AssignExpr{
		i.XAccessToken.Value(tokens.AccessToken),
		i.XRefreshToken.Value(tokens.RefreshToken),
		i.XAccessTokenExpiresAt.Value(tokens.ExpiresAt),
		i.UpdatedAt.Value(now),
	}
}

// UpsertXAccount updates the row owning the X user id. When none exists it
// inserts one, and falls back to the update if a concurrent insert won.
func (repo *identityRepository) UpsertXAccount(ctx context.Context, profile entity.XProfile, tokens entity.XTokens) (*entity.Identity, bool, error) {
	now := repo.now()
	i := repo.q.IdentityModel
	assignments := append([]field.AssignExpr{
		i.XUsername.Value(profile.Username),
		i.XDisplayName.Value(profile.DisplayName),
		i.XProfileImageURL.Value(profile.ProfileImageURL),
	}, repo.xTokenAssignments(tokens, now)...)

	update := func() (bool, error) {
		info, err := i.WithContext(ctx).Where(i.XUserID.Eq(profile.UserID)).UpdateSimple(assignments...)
		if err != nil {
			return false, errors.Wrap(err, "failed to update x account")
		}

		return info.RowsAffected > 0, nil
	}

	updated, err := update()
	if err != nil {
		return nil, false, err
	}

	var insertedID uuid.UUID
	if !updated {
		expiresAt := tokens.ExpiresAt
		identityM := &model.IdentityModel{
			ID:                    uuid.Must(uuid.NewV7()),
			Role:                  string(entity.RoleUser),
			XUserID:               optional(profile.UserID),
			XUsername:             profile.Username,
			XDisplayName:          profile.DisplayName,
			XProfileImageURL:      profile.ProfileImageURL,
			XAccessToken:          tokens.AccessToken,
			XRefreshToken:         tokens.RefreshToken,
			XAccessTokenExpiresAt: &expiresAt,
			CreatedAt:             now,
			UpdatedAt:             now,
		}
		err := i.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(identityM)
		if err != nil && !isUniqueConstraintViolation(err) {
			return nil, false, errors.Wrap(err, "failed to create x account")
		}
		insertedID = identityM.ID
	}

	identity, err := repo.first(ctx, i.XUserID.Eq(profile.UserID), "x_user_id")
	if err != nil {
		return nil, false, err
	}

	created := insertedID != uuid.Nil && identity.ID == insertedID.String()
	if insertedID != uuid.Nil && !created {
		// A concurrent callback inserted the row first.
		if _, err := update(); err != nil {
			return nil, false, err
		}
		if identity, err = repo.first(ctx, i.XUserID.Eq(profile.UserID), "x_user_id"); err != nil {
			return nil, false, err
		}
	}

	return identity, created, nil
}

func (repo *identityRepository) UpdateXTokens(ctx context.Context, id string, tokens entity.XTokens) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}

	i := repo.q.IdentityModel
	info, err := i.WithContext(ctx).Where(i.ID.Eq(uid)).UpdateSimple(repo.xTokenAssignments(tokens, repo.now())...)
	if err != nil {
		return errors.Wrap(err, "failed to update x tokens")
	}
	if info.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

func (repo *identityRepository) List(ctx context.Context, offset, limit int) ([]*entity.Identity, int64, error) {
	i := repo.q.IdentityModel

	total, err := i.WithContext(ctx).Count()
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count identities")
	}

	identityModels, err := i.WithContext(ctx).
		Omit(i.XAccessToken, i.XRefreshToken).
		Order(i.CreatedAt.Desc(), i.ID.Desc()).
		Offset(offset).
		Limit(limit).
		Find()
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list identities")
	}

	identities := make([]*entity.Identity, 0, len(identityModels))
	for _, identityM := range identityModels {
		identities = append(identities, toIdentityDomain(identityM))
	}

	return identities, total, nil
}

func (repo *identityRepository) FindByAPISecretKey(ctx context.Context, key string) (*entity.Identity, error) {
	s := repo.q.APISecretModel
	secretM, err := s.WithContext(ctx).Where(s.Key.Eq(key)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAPISecretNotFound
		}

		return nil, errors.Wrap(err, "failed to find api secret")
	}

	return repo.first(ctx, repo.q.IdentityModel.ID.Eq(secretM.IdentityID), "id")
}

func (repo *identityRepository) AddAPISecret(ctx context.Context, id string, secret entity.APISecret) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}

	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return repository.ErrIdentityNotFound
	}

	err = repo.q.APISecretModel.WithContext(ctx).Create(&model.APISecretModel{
		IdentityID:   uid,
		Key:          secret.Key,
		Title:        secret.Title,
		HashedSecret: secret.HashedSecret,
		CreatedAt:    secret.CreatedAt,
		UpdatedAt:    secret.UpdatedAt,
	})

	return errors.Wrap(err, "failed to add api secret")
}

func (repo *identityRepository) RemoveAPISecret(ctx context.Context, id, key string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}

	s := repo.q.APISecretModel
	info, err := s.WithContext(ctx).Where(s.IdentityID.Eq(uid), s.Key.Eq(key)).Delete()
	if err != nil {
		return errors.Wrap(err, "failed to remove api secret")
	}
	if info.RowsAffected > 0 {
		return nil
	}

	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return repository.ErrIdentityNotFound
	}

	return repository.ErrAPISecretNotFound
}
