package crypto

import (
	"context"
	"encoding/base64"
	"strings"

	"authhub/internal/domain/service"
	"authhub/internal/errors"

	"gocloud.dev/secrets"
)

const keeperPrefix = "keeper:"

// keeperCipher delegates to a gocloud secrets keeper (local key, KMS, Vault).
// Ciphertexts are tagged so they cannot be confused with AES-CBC values.
type keeperCipher struct {
	keeper *secrets.Keeper
}

// NewKeeperCipher wraps an opened keeper.
func NewKeeperCipher(keeper *secrets.Keeper) service.TokenCipher {
	return &keeperCipher{keeper: keeper}
}

func (c *keeperCipher) Encrypt(ctx context.Context, plaintext string) (string, error) {
	sealed, err := c.keeper.Encrypt(ctx, []byte(plaintext))
	if err != nil {
		return "", errors.Wrap(err, "keeper encrypt failed")
	}

	return keeperPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *keeperCipher) Decrypt(ctx context.Context, ciphertext string) (string, error) {
	encoded, ok := strings.CutPrefix(ciphertext, keeperPrefix)
	if !ok {
		return "", ErrMalformedCiphertext
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrMalformedCiphertext
	}

	plain, err := c.keeper.Decrypt(ctx, sealed)
	if err != nil {
		return "", errors.Wrap(err, "keeper decrypt failed")
	}

	return string(plain), nil
}
