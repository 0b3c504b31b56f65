package service

import "context"

// TokenCipher protects provider tokens at rest.
type TokenCipher interface {
	Encrypt(ctx context.Context, plaintext string) (string, error)
	Decrypt(ctx context.Context, ciphertext string) (string, error)
}
