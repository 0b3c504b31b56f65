package service

import (
	"context"
	"time"

	"authhub/internal/domain/entity"
)

// XAuthorization is a prepared authorization redirect with its PKCE material.
type XAuthorization struct {
	URL          string
	State        string
	CodeVerifier string
}

// XTokenGrant is the token triple returned by a code exchange or refresh.
type XTokenGrant struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
}

// XProvider is the OAuth2 client of the X API.
type XProvider interface {
	NewAuthorization() (*XAuthorization, error)
	Exchange(ctx context.Context, code, codeVerifier string) (*XTokenGrant, error)
	Refresh(ctx context.Context, refreshToken string) (*XTokenGrant, error)

	// FetchProfile returns the authenticated user and the rate-limit snapshot
	// carried by the response headers, if any.
	FetchProfile(ctx context.Context, accessToken string) (*entity.XProfile, *entity.RateLimit, error)
}
