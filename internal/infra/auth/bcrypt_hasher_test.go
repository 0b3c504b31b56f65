package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	secret := "3f7a9c1e5b2d4f6a8c0e1b3d5f7a9c1e"
	hash, err := hasher.Hash(secret)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, secret, hash)

	assert.True(t, hasher.Check(secret, hash))
	assert.False(t, hasher.Check("wrong", hash))
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("same-secret")
	require.NoError(t, err)
	second, err := hasher.Hash("same-secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_RejectsOversizedSecret(t *testing.T) {
	hasher := NewBcryptHasher()

	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher()

	assert.False(t, hasher.Check("secret", "not-a-bcrypt-hash"))
}
