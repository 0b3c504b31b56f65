package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"authhub/config"
	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/repository"
	"authhub/internal/domain/service"
	"authhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	errStateMismatch = errors.New("oauth state mismatch")
	errMissingCode   = errors.New("authorization code missing")
)

type xAuthService struct {
	identityRepo repository.IdentityRepository
	provider     service.XProvider
	cipher       service.TokenCipher
	rateLimits   usecase.XRateLimitUsecase
	recorder     *authRecorder
	sessionTTL   time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// XAuthServiceParams holds dependencies for XAuthService, injected by Fx.
type XAuthServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	Provider     service.XProvider `optional:"true"`
	Cipher       service.TokenCipher
	RateLimits   usecase.XRateLimitUsecase
	Publisher    service.EventPublisher
	Metrics      service.AuthMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewXAuthService creates the X OAuth2 use case. A nil provider means X is
// not configured and every flow step fails.
func NewXAuthService(params XAuthServiceParams) usecase.XAuthUsecase {
	return &xAuthService{
		identityRepo: params.IdentityRepo,
		provider:     params.Provider,
		cipher:       params.Cipher,
		rateLimits:   params.RateLimits,
		recorder:     newAuthRecorder(params.Publisher, params.Metrics, params.Logger),
		sessionTTL:   params.Config.Session.TTL,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *xAuthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *xAuthService) Login(ctx context.Context, sess *entity.Session) (string, error) {
	if srv.provider == nil {
		return "", domainerrors.ErrXNotConfigured
	}

	authorization, err := srv.provider.NewAuthorization()
	if err != nil {
		return "", domainerrors.NewInternalError(err, "prepare x authorization")
	}

	sess.BeginXAuthorization(authorization.State, authorization.CodeVerifier)
	srv.log(ctx).Debug("Prepared X authorization redirect", slog.String("sessionID", sess.ID))

	return authorization.URL, nil
}

// Callback consumes the pending challenge whatever the outcome, so a callback
// URL can be replayed at most once.
func (srv *xAuthService) Callback(ctx context.Context, sess *entity.Session, input *usecase.XCallbackInput) error {
	challenge := sess.TakeXAuthorization()
	if challenge == nil || subtle.ConstantTimeCompare([]byte(challenge.State), []byte(input.State)) != 1 {
		srv.recorder.failed(entity.ProviderX, domainerrors.ErrUnauthorized)

		return errStateMismatch
	}
	if input.Code == "" {
		srv.recorder.failed(entity.ProviderX, domainerrors.ErrBadRequest)

		return errMissingCode
	}

	if err := srv.completeAuthorization(ctx, sess, input.Code, challenge.CodeVerifier); err != nil {
		srv.recorder.failed(entity.ProviderX, err)

		return err
	}

	return nil
}

func (srv *xAuthService) completeAuthorization(ctx context.Context, sess *entity.Session, code, codeVerifier string) error {
	if srv.provider == nil {
		return domainerrors.ErrXNotConfigured
	}

	grant, err := srv.provider.Exchange(ctx, code, codeVerifier)
	if err != nil {
		return domainerrors.NewUpstreamError(err, "exchange x authorization code")
	}

	profile, limit, err := srv.provider.FetchProfile(ctx, grant.AccessToken)
	if err != nil {
		return domainerrors.NewUpstreamError(err, "fetch x profile")
	}

	tokens, err := srv.sealTokens(ctx, grant)
	if err != nil {
		return err
	}

	identity, created, err := srv.identityRepo.UpsertXAccount(ctx, *profile, *tokens)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "upsert x account")
	}

	if limit != nil {
		if err := srv.rateLimits.Record(ctx, identity.ID, *limit); err != nil {
			srv.log(ctx).Warn("Failed to record X rate limit", slog.String("identityID", identity.ID), slog.Any("error", err))
		}
	}

	expiresAt := tokens.ExpiresAt
	sess.Authenticate(entity.Principal{
		IdentityID:            identity.ID,
		Role:                  identity.Role,
		Provider:              entity.ProviderX,
		Address:               identity.Address,
		XUserID:               identity.XUserID,
		XUsername:             identity.XUsername,
		XDisplayName:          identity.XDisplayName,
		XProfileImageURL:      identity.XProfileImageURL,
		XAccessTokenExpiresAt: &expiresAt,
	})
	sess.ExtendTTL(srv.sessionTTL)

	srv.log(ctx).Info("X sign-in succeeded",
		slog.String("identityID", identity.ID),
		slog.String("xUsername", identity.XUsername),
		slog.Bool("created", created),
	)
	srv.recorder.succeeded(ctx, entity.ProviderX, identity, created)

	return nil
}

func (srv *xAuthService) CurrentUser(ctx context.Context, sess *entity.Session) (*usecase.XCurrentUserOutput, error) {
	if !sess.IsAuthenticated() || sess.Principal.XUserID == "" {
		return nil, domainerrors.ErrUnauthorized.WithDetails("not authenticated")
	}

	principal := sess.Principal
	if _, err := srv.AccessToken(ctx, principal.IdentityID); err != nil {
		srv.log(ctx).Info("Destroying session without usable X token",
			slog.String("identityID", principal.IdentityID),
			slog.Any("error", err),
		)
		sess.Destroy()

		return nil, domainerrors.ErrSessionExpired
	}

	exists, err := srv.identityRepo.Exists(ctx, principal.IdentityID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, identityDetails(principal.IdentityID))
	}
	if !exists {
		sess.Destroy()

		return nil, domainerrors.ErrUserNotFound
	}

	limits, err := srv.rateLimits.List(ctx, principal.IdentityID)
	if err != nil {
		return nil, err
	}

	output := &usecase.XCurrentUserOutput{
		ID:               principal.IdentityID,
		Role:             sess.Role(),
		XUserID:          principal.XUserID,
		XUsername:        principal.XUsername,
		XDisplayName:     principal.XDisplayName,
		XProfileImageURL: principal.XProfileImageURL,
		RateLimits:       toRateLimitOutputs(limits),
		Status:           entity.SessionAuthenticated,
	}

	active, err := srv.rateLimits.Active(ctx, principal.IdentityID, entity.XProfileEndpoint, http.MethodGet)
	if err != nil {
		return nil, err
	}
	if active != nil {
		until := active.LimitedUntil(srv.now())
		output.ProfileLimited = true
		output.ProfileLimitedUntil = &until
	}

	return output, nil
}

func (srv *xAuthService) AccessToken(ctx context.Context, identityID string) (string, error) {
	identity, err := srv.identityRepo.FindByID(ctx, identityID)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		return "", domainerrors.ErrUserNotFound
	}
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, identityDetails(identityID))
	}

	if identity.HasLiveXAccessToken(srv.now()) {
		if identity.XAccessToken == "" {
			return "", domainerrors.ErrAccessTokenNotFound
		}

		token, err := srv.cipher.Decrypt(ctx, identity.XAccessToken)
		if err != nil {
			return "", domainerrors.NewInternalError(err, "decrypt access token "+identityDetails(identityID))
		}

		return token, nil
	}

	if identity.XRefreshToken == "" {
		return "", domainerrors.ErrRefreshTokenNotFound
	}

	return srv.refresh(ctx, identity)
}

// refresh is attempted exactly once; a failure is terminal for the call.
func (srv *xAuthService) refresh(ctx context.Context, identity *entity.Identity) (string, error) {
	if srv.provider == nil {
		return "", domainerrors.ErrXNotConfigured
	}

	refreshToken, err := srv.cipher.Decrypt(ctx, identity.XRefreshToken)
	if err != nil {
		return "", domainerrors.NewInternalError(err, "decrypt refresh token "+identityDetails(identity.ID))
	}

	grant, err := srv.provider.Refresh(ctx, refreshToken)
	if err != nil {
		srv.log(ctx).Error("Failed to refresh X access token", slog.String("identityID", identity.ID), slog.Any("error", err))

		return "", domainerrors.NewUpstreamError(err, "refresh access token "+identityDetails(identity.ID))
	}
	if grant.RefreshToken == "" {
		grant.RefreshToken = refreshToken
	}

	tokens, err := srv.sealTokens(ctx, grant)
	if err != nil {
		return "", err
	}

	if err := srv.identityRepo.UpdateXTokens(ctx, identity.ID, *tokens); err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "update x tokens "+identityDetails(identity.ID))
	}

	srv.log(ctx).Debug("Refreshed X access token", slog.String("identityID", identity.ID), slog.Time("expiresAt", tokens.ExpiresAt))

	return grant.AccessToken, nil
}

func (srv *xAuthService) sealTokens(ctx context.Context, grant *service.XTokenGrant) (*entity.XTokens, error) {
	accessToken, err := srv.cipher.Encrypt(ctx, grant.AccessToken)
	if err != nil {
		return nil, domainerrors.NewInternalError(err, "encrypt access token")
	}

	refreshToken, err := srv.cipher.Encrypt(ctx, grant.RefreshToken)
	if err != nil {
		return nil, domainerrors.NewInternalError(err, "encrypt refresh token")
	}

	return &entity.XTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    srv.now().Add(grant.ExpiresIn),
	}, nil
}

func (srv *xAuthService) Logout(ctx context.Context, sess *entity.Session) *usecase.SuccessOutput {
	sess.Destroy()
	srv.log(ctx).Debug("X session logged out")

	return &usecase.SuccessOutput{Success: true}
}

func toRateLimitOutputs(limits []entity.RateLimit) []usecase.RateLimitOutput {
	outputs := make([]usecase.RateLimitOutput, 0, len(limits))
	for _, limit := range limits {
		output := usecase.RateLimitOutput{
			Endpoint:    limit.Endpoint,
			Method:      limit.Method,
			Limit:       limit.Limit,
			Remaining:   limit.Remaining,
			Reset:       limit.Reset,
			LastUpdated: limit.LastUpdated,
		}
		if limit.Day != nil {
			output.Day = &usecase.RateLimitWindow{
				Limit:     limit.Day.Limit,
				Remaining: limit.Day.Remaining,
				Reset:     limit.Day.Reset,
			}
		}
		outputs = append(outputs, output)
	}

	return outputs
}
