package auth

import (
	"testing"
	"time"

	"authhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T, secret string) *CookieSigner {
	t.Helper()

	cfg := &config.Config{}
	cfg.Session.Secret = secret
	signer, err := NewCookieSigner(cfg)
	require.NoError(t, err)

	return signer
}

func TestCookieSigner_RoundTrip(t *testing.T) {
	signer := newTestSigner(t, "test_session_secret_long_enough")

	value, err := signer.Sign("session-123", time.Hour)
	require.NoError(t, err)

	id, err := signer.Parse(value)
	require.NoError(t, err)
	assert.Equal(t, "session-123", id)
}

func TestCookieSigner_RejectsForeignSecret(t *testing.T) {
	signer := newTestSigner(t, "secret-one")
	other := newTestSigner(t, "secret-two")

	value, err := other.Sign("session-123", time.Hour)
	require.NoError(t, err)

	_, err = signer.Parse(value)
	assert.ErrorIs(t, err, ErrInvalidCookie)
}

func TestCookieSigner_RejectsExpired(t *testing.T) {
	signer := newTestSigner(t, "secret")
	issued := time.Now().Add(-2 * time.Hour)
	signer.now = func() time.Time { return issued }

	value, err := signer.Sign("session-123", time.Hour)
	require.NoError(t, err)

	signer.now = time.Now
	_, err = signer.Parse(value)
	assert.ErrorIs(t, err, ErrInvalidCookie)
}

func TestCookieSigner_RejectsGarbage(t *testing.T) {
	signer := newTestSigner(t, "secret")

	_, err := signer.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCookie)
}

func TestNewCookieSigner_RequiresSecret(t *testing.T) {
	_, err := NewCookieSigner(&config.Config{})
	assert.Error(t, err)
}
