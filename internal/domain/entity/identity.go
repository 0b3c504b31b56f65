package entity

import (
	"strings"
	"time"
)

// Identity is the durable per-user record. It is addressable by any one of
// Address, XUserID or WhatsAppPhone.
type Identity struct {
	ID   string
	Role Role

	Address string // lowercase hex, 0x-prefixed

	XUserID          string
	XUsername        string
	XDisplayName     string
	XProfileImageURL string

	// Ciphertext produced by the token cipher; never plaintext.
	XAccessToken          string
	XRefreshToken         string
	XAccessTokenExpiresAt *time.Time
	XRateLimits           []RateLimit

	WhatsAppPhone string // E.164 digits without the leading '+'

	APISecrets []APISecret

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasLiveXAccessToken reports whether the stored access token has not yet expired.
func (i *Identity) HasLiveXAccessToken(now time.Time) bool {
	return i.XAccessTokenExpiresAt != nil && i.XAccessTokenExpiresAt.After(now)
}

// FindAPISecret returns the secret registered under key.
func (i *Identity) FindAPISecret(key string) (*APISecret, bool) {
	for idx := range i.APISecrets {
		if i.APISecrets[idx].Key == key {
			return &i.APISecrets[idx], true
		}
	}

	return nil, false
}

// APISecret is a machine-to-machine credential. Only the hash is stored.
type APISecret struct {
	Key          string
	Title        string
	HashedSecret string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// XProfile is the subset of the X user object kept on the identity.
type XProfile struct {
	UserID          string
	Username        string
	DisplayName     string
	ProfileImageURL string
}

// XTokens is a token pair with its access-token expiry. The repository
// stores whatever it receives, so callers pass ciphertext.
type XTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// NormalizeAddress lowercases an EVM address for storage and lookups.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// NormalizePhone strips the leading '+' from an E.164 number.
func NormalizePhone(phone string) string {
	return strings.TrimPrefix(strings.TrimSpace(phone), "+")
}
