package crypto

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets/localsecrets"
)

func TestAESCipher_RoundTrip(t *testing.T) {
	c, err := NewAESCipher("session-secret")
	require.NoError(t, err)
	ctx := context.Background()

	for _, plain := range []string{"", "a", "exactly-16-bytes", "a much longer access token value that spans blocks"} {
		sealed, err := c.Encrypt(ctx, plain)
		require.NoError(t, err)

		iv, data, ok := strings.Cut(sealed, ":")
		require.True(t, ok)
		assert.Len(t, iv, 32)
		assert.NotEmpty(t, data)

		opened, err := c.Decrypt(ctx, sealed)
		require.NoError(t, err)
		assert.Equal(t, plain, opened)
	}
}

func TestAESCipher_RandomIV(t *testing.T) {
	c, err := NewAESCipher("session-secret")
	require.NoError(t, err)

	first, err := c.Encrypt(context.Background(), "token")
	require.NoError(t, err)
	second, err := c.Encrypt(context.Background(), "token")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestAESCipher_RejectsMalformed(t *testing.T) {
	c, err := NewAESCipher("session-secret")
	require.NoError(t, err)

	for _, bad := range []string{"", "nocolon", "zz:zz", "00112233445566778899aabbccddeeff:", "0011:00112233445566778899aabbccddeeff"} {
		_, err := c.Decrypt(context.Background(), bad)
		assert.ErrorIs(t, err, ErrMalformedCiphertext, bad)
	}
}

func TestAESCipher_WrongKey(t *testing.T) {
	c1, err := NewAESCipher("secret-one")
	require.NoError(t, err)
	c2, err := NewAESCipher("secret-two")
	require.NoError(t, err)

	sealed, err := c1.Encrypt(context.Background(), "token")
	require.NoError(t, err)

	opened, err := c2.Decrypt(context.Background(), sealed)
	if err == nil {
		assert.NotEqual(t, "token", opened)
	}
}

func TestNewAESCipher_RequiresSecret(t *testing.T) {
	_, err := NewAESCipher("")
	assert.Error(t, err)
}

func TestKeeperCipher_RoundTrip(t *testing.T) {
	key, err := localsecrets.NewRandomKey()
	require.NoError(t, err)
	keeper := localsecrets.NewKeeper(key)
	defer keeper.Close()

	c := NewKeeperCipher(keeper)
	ctx := context.Background()

	sealed, err := c.Encrypt(ctx, "refresh-token")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, keeperPrefix))

	opened, err := c.Decrypt(ctx, sealed)
	require.NoError(t, err)
	assert.Equal(t, "refresh-token", opened)

	_, err = c.Decrypt(ctx, "00:00")
	assert.ErrorIs(t, err, ErrMalformedCiphertext)
}
