// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"authhub/internal/domain/service"
	"authhub/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt rejects inputs longer than this.
const maxSecretBytes = 72

// bcryptHasher implements service.SecretHasher for api secrets.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher() service.SecretHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash generates a salted hash of secret.
func (h *bcryptHasher) Hash(secret string) (string, error) {
	if len(secret) > maxSecretBytes {
		return "", errors.Errorf("secret exceeds %d bytes", maxSecretBytes)
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash secret")
	}

	return string(bytes), nil
}

// Check compares a plaintext secret with a bcrypt hash.
func (h *bcryptHasher) Check(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
