package siwe

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `example.com wants you to sign in with your Ethereum account:
0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2

Sign in to the app.

URI: https://example.com/login
Version: 1
Chain ID: 137
Nonce: abcdEFGH12345678x
Issued At: 2024-05-01T10:00:00.000Z
Expiration Time: 2024-05-01T11:00:00Z
Resources:
- https://example.com/terms
- ipfs://bafy`

func TestParse(t *testing.T) {
	msg, err := Parse(sample)
	require.NoError(t, err)

	assert.Equal(t, "example.com", msg.Domain)
	assert.Equal(t, "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", msg.Address)
	assert.Equal(t, "Sign in to the app.", msg.Statement)
	assert.Equal(t, "https://example.com/login", msg.URI)
	assert.Equal(t, uint64(137), msg.ChainID)
	assert.Equal(t, "abcdEFGH12345678x", msg.Nonce)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), msg.IssuedAt.UTC())
	require.NotNil(t, msg.ExpirationTime)
	assert.Nil(t, msg.NotBefore)
	assert.Equal(t, []string{"https://example.com/terms", "ipfs://bafy"}, msg.Resources)
	assert.Equal(t, sample, msg.Raw)
}

func TestParse_NoStatement(t *testing.T) {
	raw := `example.com wants you to sign in with your Ethereum account:
0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2

URI: https://example.com
Version: 1
Chain ID: 11155111
Nonce: abcdEFGH12345678x
Issued At: 2024-05-01T10:00:00Z`

	msg, err := Parse(raw)
	require.NoError(t, err)
	assert.Empty(t, msg.Statement)
	assert.Equal(t, uint64(11155111), msg.ChainID)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(string) string
	}{
		{"empty", func(string) string { return "" }},
		{"bad preamble", func(s string) string { return strings.Replace(s, "wants you", "would like you", 1) }},
		{"bad address", func(s string) string { return strings.Replace(s, "0xC02a", "0xZZ2a", 1) }},
		{"bad version", func(s string) string { return strings.Replace(s, "Version: 1", "Version: 2", 1) }},
		{"bad chain", func(s string) string { return strings.Replace(s, "Chain ID: 137", "Chain ID: polygon", 1) }},
		{"short nonce", func(s string) string { return strings.Replace(s, "abcdEFGH12345678x", "abc", 1) }},
		{"missing nonce", func(s string) string { return strings.Replace(s, "Nonce: abcdEFGH12345678x\n", "", 1) }},
		{"bad timestamp", func(s string) string { return strings.Replace(s, "2024-05-01T10:00:00.000Z", "yesterday", 1) }},
		{"unknown field", func(s string) string { return strings.Replace(s, "Version: 1", "Version: 1\nColour: blue", 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.mutate(sample))
			assert.ErrorIs(t, err, ErrMalformedMessage)
		})
	}
}

func TestMessage_ValidAt(t *testing.T) {
	msg, err := Parse(sample)
	require.NoError(t, err)

	assert.NoError(t, msg.ValidAt(time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)))
	assert.ErrorIs(t, msg.ValidAt(time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)), ErrExpired)

	notBefore := time.Date(2024, 5, 1, 10, 15, 0, 0, time.UTC)
	msg.NotBefore = &notBefore
	assert.ErrorIs(t, msg.ValidAt(time.Date(2024, 5, 1, 10, 10, 0, 0, time.UTC)), ErrNotYetValid)
}

func TestGenerateNonce(t *testing.T) {
	seen := map[string]bool{}
	for range 50 {
		nonce, err := GenerateNonce()
		require.NoError(t, err)
		assert.Len(t, nonce, nonceLength)
		assert.Regexp(t, noncePattern, nonce)
		assert.False(t, seen[nonce])
		seen[nonce] = true
	}
}
