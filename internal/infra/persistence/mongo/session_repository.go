package mongo

import (
	"context"
	"time"

	"authhub/internal/domain/entity"
	"authhub/internal/domain/repository"
	"authhub/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type sessionRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &sessionRepository{
		coll: db.Collection(sessionsCollection),
		now:  time.Now,
	}
}

// Get filters on expires_at as well, since the TTL monitor only runs once a minute.
func (repo *sessionRepository) Get(ctx context.Context, id string) (*entity.Session, error) {
	var doc sessionDocument
	err := repo.coll.FindOne(ctx, bson.M{
		fieldID:        id,
		fieldExpiresAt: bson.M{"$gt": repo.now()},
	}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}

	return doc.toEntity(), nil
}

func (repo *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	doc := toSessionDocument(session, repo.now())

	_, err := repo.coll.ReplaceOne(ctx, bson.M{fieldID: session.ID}, doc, options.Replace().SetUpsert(true))

	return errors.Wrap(err, "failed to save session")
}

func (repo *sessionRepository) Delete(ctx context.Context, id string) error {
	_, err := repo.coll.DeleteOne(ctx, bson.M{fieldID: id})

	return errors.Wrap(err, "failed to delete session")
}

// DeleteExpired runs the same sweep as the TTL monitor without waiting for it.
func (repo *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := repo.coll.DeleteMany(ctx, bson.M{fieldExpiresAt: bson.M{"$lte": now}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired sessions")
	}

	return res.DeletedCount, nil
}
