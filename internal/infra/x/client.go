// Package x is the OAuth2 (PKCE) client of the X API.
package x

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"authhub/config"
	"authhub/internal/domain/entity"
	"authhub/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	profilePath   = "/users/me"
	profileFields = "profile_image_url,username,name"

	defaultHTTPTimeout = 15 * time.Second
)

// Client implements service.XProvider on top of golang.org/x/oauth2.
type Client struct {
	oauth      *oauth2.Config
	apiBaseURL string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient returns nil when X is not configured, which disables the X flow.
func NewClient(cfg *config.Config, logger *slog.Logger) service.XProvider {
	if cfg.X == nil || cfg.X.ClientID == "" {
		logger.Warn("X client not configured; X sign-in is disabled")

		return nil
	}

	return newClient(cfg.X, &http.Client{Timeout: defaultHTTPTimeout}, logger)
}

func newClient(cfg *config.XConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	authStyle := oauth2.AuthStyleInParams
	if cfg.ClientSecret != "" {
		authStyle = oauth2.AuthStyleInHeader
	}

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: authStyle,
			},
		},
		apiBaseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
		now:        time.Now,
	}
}

func (c *Client) withHTTPClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// NewAuthorization prepares a redirect with a fresh state and S256 challenge.
func (c *Client) NewAuthorization() (*service.XAuthorization, error) {
	state := oauth2.GenerateVerifier()
	verifier := oauth2.GenerateVerifier()

	return &service.XAuthorization{
		URL:          c.oauth.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier)),
		State:        state,
		CodeVerifier: verifier,
	}, nil
}

func (c *Client) Exchange(ctx context.Context, code, codeVerifier string) (*service.XTokenGrant, error) {
	token, err := c.oauth.Exchange(c.withHTTPClient(ctx), code, oauth2.VerifierOption(codeVerifier))
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	return c.toGrant(token), nil
}

// Refresh performs a single refresh_token grant.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*service.XTokenGrant, error) {
	source := c.oauth.TokenSource(c.withHTTPClient(ctx), &oauth2.Token{RefreshToken: refreshToken})

	token, err := source.Token()
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh access token")
	}

	return c.toGrant(token), nil
}

func (c *Client) toGrant(token *oauth2.Token) *service.XTokenGrant {
	expiresIn := time.Duration(token.ExpiresIn) * time.Second
	if expiresIn <= 0 && !token.Expiry.IsZero() {
		expiresIn = token.Expiry.Sub(c.now())
	}

	return &service.XTokenGrant{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    expiresIn,
	}
}

type profileResponse struct {
	Data struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		Username        string `json:"username"`
		ProfileImageURL string `json:"profile_image_url"`
	} `json:"data"`
}

// FetchProfile calls GET /users/me with the user's access token.
func (c *Client) FetchProfile(ctx context.Context, accessToken string) (*entity.XProfile, *entity.RateLimit, error) {
	endpoint := c.apiBaseURL + profilePath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?user.fields="+profileFields, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create profile request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to fetch profile")
	}
	defer resp.Body.Close()

	limit := parseRateLimit(resp.Header, endpoint, http.MethodGet, c.now())

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return nil, limit, errors.Errorf("profile request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var payload profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, limit, errors.Wrap(err, "failed to decode profile response")
	}
	if payload.Data.ID == "" {
		return nil, limit, errors.New("profile response has no user id")
	}

	return &entity.XProfile{
		UserID:          payload.Data.ID,
		Username:        payload.Data.Username,
		DisplayName:     payload.Data.Name,
		ProfileImageURL: payload.Data.ProfileImageURL,
	}, limit, nil
}

// parseRateLimit reads the x-rate-limit-* headers and, when present, the
// 24 hour user window. It returns nil when the primary headers are missing.
func parseRateLimit(header http.Header, endpoint, method string, now time.Time) *entity.RateLimit {
	limit, okLimit := headerInt(header, "x-rate-limit-limit")
	remaining, okRemaining := headerInt(header, "x-rate-limit-remaining")
	reset, okReset := headerInt(header, "x-rate-limit-reset")
	if !okLimit || !okRemaining || !okReset {
		return nil
	}

	rateLimit := &entity.RateLimit{
		Endpoint:    endpoint,
		Method:      method,
		Limit:       int(limit),
		Remaining:   int(remaining),
		Reset:       reset,
		LastUpdated: now,
	}

	dayLimit, okDayLimit := headerInt(header, "x-user-limit-24hour-limit")
	dayRemaining, okDayRemaining := headerInt(header, "x-user-limit-24hour-remaining")
	dayReset, okDayReset := headerInt(header, "x-user-limit-24hour-reset")
	if okDayLimit && okDayRemaining && okDayReset {
		rateLimit.Day = &entity.RateLimitWindow{
			Limit:     int(dayLimit),
			Remaining: int(dayRemaining),
			Reset:     dayReset,
		}
	}

	return rateLimit
}

func headerInt(header http.Header, key string) (int64, bool) {
	raw := header.Get(key)
	if raw == "" {
		return 0, false
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}
