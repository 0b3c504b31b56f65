// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"authhub/internal/domain/entity"
)

// EVMVerifyInput is a signed SIWE message.
type EVMVerifyInput struct {
	Message   string `json:"message" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// EVMSessionOutput is the authenticated wallet session.
type EVMSessionOutput struct {
	ID      string               `json:"mongo_id"`
	Address string               `json:"address"`
	Role    entity.Role          `json:"role"`
	Status  entity.SessionStatus `json:"status"`
}

// SuccessOutput is the body of operations that only report success.
type SuccessOutput struct {
	Success bool `json:"success"`
}

// EVMAuthUsecase is the Sign-In with Ethereum flow.
type EVMAuthUsecase interface {
	// Nonce issues a fresh single-use nonce, replacing any previous one.
	Nonce(ctx context.Context, sess *entity.Session) (string, error)
	Verify(ctx context.Context, sess *entity.Session, input *EVMVerifyInput) (*SuccessOutput, error)
	Session(ctx context.Context, sess *entity.Session) (*EVMSessionOutput, error)
	SignOut(ctx context.Context, sess *entity.Session) *SuccessOutput
}
