// Package mongo implements the repositories on MongoDB. Rate limits are
// embedded in the identity document; sessions expire through a TTL index.
package mongo

import (
	"context"
	"log/slog"

	"authhub/config"
	"authhub/internal/domain/lifecycle"
	"authhub/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	identitiesCollection = "identities"
	sessionsCollection   = "sessions"

	defaultDatabase = "authhub"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects lazily; the connection is verified and indexes are ensured on start.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo.uri is required")
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	name := cfg.Database
	if name == "" {
		name = defaultDatabase
	}
	db := client.Database(name)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}
			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}
			params.Logger.Info("MongoDB connected", slog.String("database", name))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

// EnsureIndexes creates the unique identifier indexes and the session TTL index.
// Creating an index that already exists with the same options is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	collections := map[string][]mongo.IndexModel{
		identitiesCollection: {
			{
				Keys:    bson.D{{Key: fieldAddress, Value: 1}},
				Options: options.Index().SetUnique(true).SetSparse(true).SetName("uniq_address"),
			},
			{
				Keys:    bson.D{{Key: fieldXUserID, Value: 1}},
				Options: options.Index().SetUnique(true).SetSparse(true).SetName("uniq_x_user_id"),
			},
			{
				Keys:    bson.D{{Key: fieldWhatsAppPhone, Value: 1}},
				Options: options.Index().SetUnique(true).SetSparse(true).SetName("uniq_whatsapp_phone"),
			},
			{
				Keys:    bson.D{{Key: fieldAPISecretKey, Value: 1}},
				Options: options.Index().SetUnique(true).SetSparse(true).SetName("uniq_api_secret_key"),
			},
			{
				Keys:    bson.D{{Key: fieldCreatedAt, Value: -1}},
				Options: options.Index().SetName("ix_created_at"),
			},
		},
		sessionsCollection: {
			{
				Keys:    bson.D{{Key: fieldExpiresAt, Value: 1}},
				Options: options.Index().SetExpireAfterSeconds(0).SetName("ttl_expires_at"),
			},
		},
	}

	for name, indexes := range collections {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return errors.Wrapf(err, "create indexes for %s", name)
		}
	}

	return nil
}
