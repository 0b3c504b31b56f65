package usecase

import (
	"context"
	"time"

	"authhub/internal/domain/entity"
)

// XCallbackInput carries the provider redirect parameters.
type XCallbackInput struct {
	Code  string `query:"code"`
	State string `query:"state"`
}

// RateLimitOutput is one stored X rate-limit snapshot.
type RateLimitOutput struct {
	Endpoint    string           `json:"endpoint"`
	Method      string           `json:"method"`
	Limit       int              `json:"limit"`
	Remaining   int              `json:"remaining"`
	Reset       int64            `json:"reset"`
	Day         *RateLimitWindow `json:"day,omitempty"`
	LastUpdated time.Time        `json:"last_updated"`
}

type RateLimitWindow struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"`
}

// XCurrentUserOutput is the signed-in X account. ProfileLimited is set while
// X rejects profile lookups for the account.
type XCurrentUserOutput struct {
	ID                  string               `json:"id"`
	Role                entity.Role          `json:"role"`
	XUserID             string               `json:"x_user_id"`
	XUsername           string               `json:"x_username"`
	XDisplayName        string               `json:"x_display_name"`
	XProfileImageURL    string               `json:"x_profile_image_url,omitempty"`
	RateLimits          []RateLimitOutput    `json:"rate_limits"`
	ProfileLimited      bool                 `json:"profile_limited"`
	ProfileLimitedUntil *time.Time           `json:"profile_limited_until,omitempty"`
	Status              entity.SessionStatus `json:"status"`
}

// XAuthUsecase is the X OAuth2 (PKCE) flow.
type XAuthUsecase interface {
	// Login stores the PKCE challenge in the session and returns the provider URL.
	Login(ctx context.Context, sess *entity.Session) (string, error)

	// Callback completes the authorization. Callers redirect home whatever
	// the result; the error is only for logging.
	Callback(ctx context.Context, sess *entity.Session, input *XCallbackInput) error

	CurrentUser(ctx context.Context, sess *entity.Session) (*XCurrentUserOutput, error)

	// AccessToken returns a usable plaintext access token, refreshing it at
	// most once when the stored one has expired.
	AccessToken(ctx context.Context, identityID string) (string, error)

	Logout(ctx context.Context, sess *entity.Session) *SuccessOutput
}

// XRateLimitUsecase is the bookkeeping of X API rate limits per identity.
type XRateLimitUsecase interface {
	Record(ctx context.Context, identityID string, limit entity.RateLimit) error

	// Active returns the stored snapshot only while it still blocks calls.
	Active(ctx context.Context, identityID, endpoint, method string) (*entity.RateLimit, error)

	List(ctx context.Context, identityID string) ([]entity.RateLimit, error)

	// Cleanup removes snapshots whose windows have all reset.
	Cleanup(ctx context.Context) (int64, error)
}
