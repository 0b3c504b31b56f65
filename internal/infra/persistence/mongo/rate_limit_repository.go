package mongo

import (
	"context"
	"strconv"
	"time"

	"authhub/internal/domain/entity"
	"authhub/internal/domain/repository"
	"authhub/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type rateLimitRepository struct {
	coll *mongo.Collection
}

func NewRateLimitRepository(db *mongo.Database) repository.RateLimitRepository {
	return &rateLimitRepository{coll: db.Collection(identitiesCollection)}
}

func (repo *rateLimitRepository) load(ctx context.Context, identityID string) ([]entity.RateLimit, error) {
	oid, err := objectID(identityID)
	if err != nil {
		return nil, err
	}

	var doc identityDocument
	opts := options.FindOne().SetProjection(bson.M{fieldRateLimits: 1})
	if err := repo.coll.FindOne(ctx, bson.M{fieldID: oid}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to load rate limits")
	}

	return toRateLimits(doc.XRateLimits), nil
}

func (repo *rateLimitRepository) Find(ctx context.Context, identityID, endpoint, method string) (*entity.RateLimit, error) {
	limits, err := repo.load(ctx, identityID)
	if err != nil {
		return nil, err
	}

	idx, found := entity.FindRateLimit(limits, endpoint, method)
	if !found {
		return nil, repository.ErrRateLimitNotFound
	}

	return &limits[idx], nil
}

func (repo *rateLimitRepository) List(ctx context.Context, identityID string) ([]entity.RateLimit, error) {
	return repo.load(ctx, identityID)
}

// Save overwrites the matched array element in place, guarded on its
// endpoint and method so a concurrent reorder cannot clobber another entry.
// Unmatched snapshots are appended.
func (repo *rateLimitRepository) Save(ctx context.Context, identityID string, limit entity.RateLimit) error {
	limits, err := repo.load(ctx, identityID)
	if err != nil {
		return err
	}
	oid, _ := objectID(identityID)
	doc := toRateLimitDocument(limit)

	if idx, found := entity.FindRateLimit(limits, limit.Endpoint, limit.Method); found {
		path := fieldRateLimits + "." + strconv.Itoa(idx)
		res, err := repo.coll.UpdateOne(ctx,
			bson.M{
				fieldID:            oid,
				path + ".endpoint": limits[idx].Endpoint,
				path + ".method":   limits[idx].Method,
			},
			bson.M{"$set": bson.M{path: doc}},
		)
		if err != nil {
			return errors.Wrap(err, "failed to update rate limit")
		}
		if res.MatchedCount > 0 {
			return nil
		}
	}

	if _, err := repo.coll.UpdateOne(ctx, bson.M{fieldID: oid}, bson.M{"$push": bson.M{fieldRateLimits: doc}}); err != nil {
		return errors.Wrap(err, "failed to append rate limit")
	}

	return nil
}

func (repo *rateLimitRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	filter := bson.M{fieldRateLimits + ".reset": bson.M{"$lte": now.Unix()}}
	opts := options.Find().SetProjection(bson.M{fieldRateLimits: 1})

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return 0, errors.Wrap(err, "failed to scan rate limits")
	}
	defer cursor.Close(ctx)

	var removed int64
	for cursor.Next(ctx) {
		var doc identityDocument
		if err := cursor.Decode(&doc); err != nil {
			return removed, errors.Wrap(err, "failed to decode rate limits")
		}

		kept := make([]rateLimitDocument, 0, len(doc.XRateLimits))
		for _, limit := range doc.XRateLimits {
			if !limit.toEntity().IsExpired(now) {
				kept = append(kept, limit)
			}
		}
		if len(kept) == len(doc.XRateLimits) {
			continue
		}

		if _, err := repo.coll.UpdateOne(ctx, bson.M{fieldID: doc.ID}, bson.M{"$set": bson.M{fieldRateLimits: kept}}); err != nil {
			return removed, errors.Wrap(err, "failed to prune rate limits")
		}
		removed += int64(len(doc.XRateLimits) - len(kept))
	}

	return removed, errors.WithStack(cursor.Err())
}
