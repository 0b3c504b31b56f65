package mongo

import (
	"context"
	"time"

	"authhub/internal/domain/entity"
	"authhub/internal/domain/repository"
	"authhub/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listProjection keeps credentials out of listings.
var listProjection = bson.M{
	fieldAPISecrets:   0,
	"x_access_token":  0,
	"x_refresh_token": 0,
	fieldRateLimits:   0,
}

type identityRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewIdentityRepository(db *mongo.Database) repository.IdentityRepository {
	return &identityRepository{
		coll: db.Collection(identitiesCollection),
		now:  time.Now,
	}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrIdentityNotFound
	}

	return oid, nil
}

func (repo *identityRepository) findOne(ctx context.Context, filter any, notFound error) (*entity.Identity, error) {
	var doc identityDocument
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}

		return nil, errors.Wrap(err, "failed to find identity")
	}

	return doc.toEntity(), nil
}

func (repo *identityRepository) FindByID(ctx context.Context, id string) (*entity.Identity, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	return repo.findOne(ctx, bson.M{fieldID: oid}, repository.ErrIdentityNotFound)
}

func (repo *identityRepository) Exists(ctx context.Context, id string) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		return false, nil
	}

	n, err := repo.coll.CountDocuments(ctx, bson.M{fieldID: oid}, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Wrap(err, "failed to count identity")
	}

	return n > 0, nil
}

// upsert applies update with upsert semantics on the unique field. A
// duplicate-key error means a concurrent request inserted the same
// identifier first; the update is then retried against that document.
func (repo *identityRepository) upsert(ctx context.Context, field, value string, update bson.M) (*entity.Identity, bool, error) {
	filter := bson.M{field: value}
	opts := options.Update().SetUpsert(true)

	res, err := repo.coll.UpdateOne(ctx, filter, update, opts)
	if mongo.IsDuplicateKeyError(err) {
		res, err = repo.coll.UpdateOne(ctx, filter, update, opts)
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to upsert identity by %s", field)
	}

	identity, err := repo.findOne(ctx, filter, repository.ErrIdentityNotFound)
	if err != nil {
		return nil, false, err
	}

	return identity, res.UpsertedCount > 0, nil
}

func insertDefaults(now time.Time, field, value string) bson.M {
	return bson.M{
		field:          value,
		fieldRole:      string(entity.RoleUser),
		fieldCreatedAt: now,
		fieldUpdatedAt: now,
	}
}

func (repo *identityRepository) FindOrCreateByAddress(ctx context.Context, address string) (*entity.Identity, bool, error) {
	return repo.upsert(ctx, fieldAddress, address, bson.M{
		"$setOnInsert": insertDefaults(repo.now(), fieldAddress, address),
	})
}

func (repo *identityRepository) FindOrCreateByWhatsAppPhone(ctx context.Context, phone string) (*entity.Identity, bool, error) {
	return repo.upsert(ctx, fieldWhatsAppPhone, phone, bson.M{
		"$setOnInsert": insertDefaults(repo.now(), fieldWhatsAppPhone, phone),
	})
}

func tokenFields(tokens entity.XTokens) bson.M {
	return bson.M{
		"x_access_token":            tokens.AccessToken,
		"x_refresh_token":           tokens.RefreshToken,
		"x_access_token_expires_at": tokens.ExpiresAt,
	}
}

func (repo *identityRepository) UpsertXAccount(ctx context.Context, profile entity.XProfile, tokens entity.XTokens) (*entity.Identity, bool, error) {
	now := repo.now()

	set := tokenFields(tokens)
	set["x_username"] = profile.Username
	set["x_display_name"] = profile.DisplayName
	set["x_profile_image_url"] = profile.ProfileImageURL
	set[fieldUpdatedAt] = now

	return repo.upsert(ctx, fieldXUserID, profile.UserID, bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			fieldRole:      string(entity.RoleUser),
			fieldCreatedAt: now,
		},
	})
}

func (repo *identityRepository) UpdateXTokens(ctx context.Context, id string, tokens entity.XTokens) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	set := tokenFields(tokens)
	set[fieldUpdatedAt] = repo.now()

	res, err := repo.coll.UpdateOne(ctx, bson.M{fieldID: oid}, bson.M{"$set": set})
	if err != nil {
		return errors.Wrap(err, "failed to update x tokens")
	}
	if res.MatchedCount == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

func (repo *identityRepository) List(ctx context.Context, offset, limit int) ([]*entity.Identity, int64, error) {
	total, err := repo.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count identities")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: fieldCreatedAt, Value: -1}, {Key: fieldID, Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		SetProjection(listProjection)

	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list identities")
	}

	var docs []identityDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, errors.Wrap(err, "failed to decode identities")
	}

	identities := make([]*entity.Identity, 0, len(docs))
	for i := range docs {
		identities = append(identities, docs[i].toEntity())
	}

	return identities, total, nil
}

func (repo *identityRepository) FindByAPISecretKey(ctx context.Context, key string) (*entity.Identity, error) {
	return repo.findOne(ctx, bson.M{fieldAPISecretKey: key}, repository.ErrAPISecretNotFound)
}

func (repo *identityRepository) AddAPISecret(ctx context.Context, id string, secret entity.APISecret) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := repo.coll.UpdateOne(ctx, bson.M{fieldID: oid}, bson.M{
		"$push": bson.M{fieldAPISecrets: toAPISecretDocument(secret)},
		"$set":  bson.M{fieldUpdatedAt: repo.now()},
	})
	if err != nil {
		return errors.Wrap(err, "failed to add api secret")
	}
	if res.MatchedCount == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

func (repo *identityRepository) RemoveAPISecret(ctx context.Context, id, key string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{fieldID: oid, fieldAPISecretKey: key},
		bson.M{
			"$pull": bson.M{fieldAPISecrets: bson.M{"key": key}},
			"$set":  bson.M{fieldUpdatedAt: repo.now()},
		},
	)
	if err != nil {
		return errors.Wrap(err, "failed to remove api secret")
	}
	if res.MatchedCount > 0 {
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
