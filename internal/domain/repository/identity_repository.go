// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authhub/internal/domain/entity"
)

var (
	// ErrIdentityNotFound is returned when no identity matches the lookup.
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrAPISecretNotFound is returned when no identity owns the api secret key.
	ErrAPISecretNotFound = errors.New("api secret not found")
)

// IdentityRepository persists identities. The FindOrCreate and Upsert methods
// must be atomic against a unique index on the matched identifier: a concurrent
// insert for the same identifier yields the existing record, never a second one.
// The returned bool reports whether the call created the record.
type IdentityRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Identity, error)

	// Exists reports whether an identity with id is still present.
	Exists(ctx context.Context, id string) (bool, error)

	FindOrCreateByAddress(ctx context.Context, address string) (*entity.Identity, bool, error)

	FindOrCreateByWhatsAppPhone(ctx context.Context, phone string) (*entity.Identity, bool, error)

	// UpsertXAccount matches by X user id, overwrites profile and tokens, and
	// creates the identity if missing.
	UpsertXAccount(ctx context.Context, profile entity.XProfile, tokens entity.XTokens) (*entity.Identity, bool, error)

	UpdateXTokens(ctx context.Context, id string, tokens entity.XTokens) error

	// List returns identities newest first together with the total count.
	List(ctx context.Context, offset, limit int) ([]*entity.Identity, int64, error)

	FindByAPISecretKey(ctx context.Context, key string) (*entity.Identity, error)

	AddAPISecret(ctx context.Context, id string, secret entity.APISecret) error

	RemoveAPISecret(ctx context.Context, id, key string) error
}
