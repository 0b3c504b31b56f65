package usecase

import (
	"context"
	"time"

	"authhub/internal/domain/entity"
)

type CreateAPISecretInput struct {
	Title string `json:"title" validate:"required,max=100"`
}

// CreateAPISecretOutput is returned once; the secret is not recoverable afterwards.
type CreateAPISecretOutput struct {
	Key    string `json:"key"`
	Secret string `json:"secret"`
	Title  string `json:"title"`
}

type APISecretSummary struct {
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// APISecretUsecase manages machine-to-machine credentials.
type APISecretUsecase interface {
	Create(ctx context.Context, identityID string, input *CreateAPISecretInput) (*CreateAPISecretOutput, error)
	List(ctx context.Context, identityID string) ([]APISecretSummary, error)
	Revoke(ctx context.Context, identityID, key string) error

	// Authenticate resolves a "key:secret" bearer credential to its principal.
	Authenticate(ctx context.Context, credential string) (*entity.Principal, error)
}
