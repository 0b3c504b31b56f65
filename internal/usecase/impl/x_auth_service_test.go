package impl

import (
	"context"
	"testing"
	"time"

	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/repository"
	"authhub/internal/domain/service"
	mockRepo "authhub/internal/mocks/repository"
	mockService "authhub/internal/mocks/service"
	mockUsecase "authhub/internal/mocks/usecase"
	"authhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type xFixture struct {
	srv        *xAuthService
	repo       *mockRepo.MockIdentityRepository
	provider   *mockService.MockXProvider
	cipher     *mockService.MockTokenCipher
	rateLimits *mockUsecase.MockXRateLimitUsecase
	publisher  *mockService.MockEventPublisher
	metrics    *mockService.MockAuthMetrics
}

func newXFixture(t *testing.T) *xFixture {
	f := &xFixture{
		repo:       mockRepo.NewMockIdentityRepository(t),
		provider:   mockService.NewMockXProvider(t),
		cipher:     mockService.NewMockTokenCipher(t),
		rateLimits: mockUsecase.NewMockXRateLimitUsecase(t),
		publisher:  mockService.NewMockEventPublisher(t),
		metrics:    mockService.NewMockAuthMetrics(t),
	}

	srv := NewXAuthService(XAuthServiceParams{
		IdentityRepo: f.repo,
		Provider:     f.provider,
		Cipher:       f.cipher,
		RateLimits:   f.rateLimits,
		Publisher:    f.publisher,
		Metrics:      f.metrics,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*xAuthService)
	srv.now = fixedClock
	f.srv = srv

	return f
}

func (f *xFixture) expectSeal(ctx context.Context, access, refresh string) {
	f.cipher.EXPECT().Encrypt(ctx, access).Return("enc:"+access, nil)
	f.cipher.EXPECT().Encrypt(ctx, refresh).Return("enc:"+refresh, nil)
}

func TestXAuthService_Login(t *testing.T) {
	f := newXFixture(t)
	sess := newTestSession()

	f.provider.EXPECT().NewAuthorization().Return(&service.XAuthorization{
		URL:          "https://x.com/i/oauth2/authorize?state=st",
		State:        "st",
		CodeVerifier: "cv",
	}, nil)

	url, err := f.srv.Login(context.Background(), sess)

	require.NoError(t, err)
	assert.Equal(t, "https://x.com/i/oauth2/authorize?state=st", url)
	require.NotNil(t, sess.X)
	assert.Equal(t, "st", sess.X.State)
	assert.Equal(t, "cv", sess.X.CodeVerifier)
}

func TestXAuthService_Login_NotConfigured(t *testing.T) {
	srv := NewXAuthService(XAuthServiceParams{Config: newTestConfig(), Logger: newDiscardLogger()})

	_, err := srv.Login(context.Background(), newTestSession())

	require.ErrorIs(t, err, domainerrors.ErrXNotConfigured)
}

func TestXAuthService_Callback_Success(t *testing.T) {
	f := newXFixture(t)
	ctx := context.Background()
	sess := newTestSession()
	sess.BeginXAuthorization("st", "cv")

	profile := &entity.XProfile{UserID: "42", Username: "alice", DisplayName: "Alice"}
	limit := &entity.RateLimit{Endpoint: "users/me", Method: "GET", Limit: 75, Remaining: 74, Reset: testNow.Add(15 * time.Minute).Unix()}
	identity := &entity.Identity{ID: "id-1", Role: entity.RoleUser, XUserID: "42", XUsername: "alice", XDisplayName: "Alice"}

	f.provider.EXPECT().Exchange(ctx, "code", "cv").Return(&service.XTokenGrant{AccessToken: "at", RefreshToken: "rt", ExpiresIn: 2 * time.Hour}, nil)
	f.provider.EXPECT().FetchProfile(ctx, "at").Return(profile, limit, nil)
	f.expectSeal(ctx, "at", "rt")
	f.repo.EXPECT().UpsertXAccount(ctx, *profile, entity.XTokens{
		AccessToken:  "enc:at",
		RefreshToken: "enc:rt",
		ExpiresAt:    testNow.Add(2 * time.Hour),
	}).Return(identity, true, nil)
	f.rateLimits.EXPECT().Record(ctx, "id-1", *limit).Return(nil)
	f.metrics.EXPECT().ObserveAttempt("x", service.OutcomeSuccess).Return()
	f.publisher.EXPECT().PublishAuthEvent(ctx, mock.Anything).Return(nil).Times(2)

	err := f.srv.Callback(ctx, sess, &usecase.XCallbackInput{Code: "code", State: "st"})

	require.NoError(t, err)
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "alice", sess.Principal.XUsername)
	require.NotNil(t, sess.Principal.XAccessTokenExpiresAt)
	assert.Equal(t, testNow.Add(2*time.Hour), *sess.Principal.XAccessTokenExpiresAt)
	assert.Equal(t, 30*24*time.Hour, sess.TTL)
	assert.Nil(t, sess.X, "challenge must be consumed")
}

func TestXAuthService_Callback_StateMismatch(t *testing.T) {
	f := newXFixture(t)
	sess := newTestSession()
	sess.BeginXAuthorization("st", "cv")

	f.metrics.EXPECT().ObserveAttempt("x", service.OutcomeRejected).Return()

	err := f.srv.Callback(context.Background(), sess, &usecase.XCallbackInput{Code: "code", State: "forged"})

	require.ErrorIs(t, err, errStateMismatch)
	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.X)
}

func TestXAuthService_Callback_NoPendingChallenge(t *testing.T) {
	f := newXFixture(t)
	f.metrics.EXPECT().ObserveAttempt("x", service.OutcomeRejected).Return()

	err := f.srv.Callback(context.Background(), newTestSession(), &usecase.XCallbackInput{Code: "code", State: ""})

	require.ErrorIs(t, err, errStateMismatch)
}

func TestXAuthService_Callback_Cancelled(t *testing.T) {
	f := newXFixture(t)
	sess := newTestSession()
	sess.BeginXAuthorization("st", "cv")

	f.metrics.EXPECT().ObserveAttempt("x", service.OutcomeRejected).Return()

	err := f.srv.Callback(context.Background(), sess, &usecase.XCallbackInput{State: "st"})

	require.ErrorIs(t, err, errMissingCode)
}

func TestXAuthService_Callback_ExchangeFails(t *testing.T) {
	f := newXFixture(t)
	ctx := context.Background()
	sess := newTestSession()
	sess.BeginXAuthorization("st", "cv")

	f.provider.EXPECT().Exchange(ctx, "code", "cv").Return(nil, errors.New("invalid_grant"))
	f.metrics.EXPECT().ObserveAttempt("x", service.OutcomeError).Return()

	err := f.srv.Callback(ctx, sess, &usecase.XCallbackInput{Code: "code", State: "st"})

	assert.Equal(t, domainerrors.KindUpstream, domainerrors.KindOf(err))
	assert.False(t, sess.IsAuthenticated())
}

func TestXAuthService_AccessToken_LiveToken(t *testing.T) {
	f := newXFixture(t)
	ctx := context.Background()
	expires := testNow.Add(time.Minute)

	f.repo.EXPECT().FindByID(ctx, "id-1").Return(&entity.Identity{
		ID:                    "id-1",
		XAccessToken:          "enc:at",
		XRefreshToken:         "enc:rt",
		XAccessTokenExpiresAt: &expires,
	}, nil)
	f.cipher.EXPECT().Decrypt(ctx, "enc:at").Return("at", nil)

	token, err := f.srv.AccessToken(ctx, "id-1")

	require.NoError(t, err)
	assert.Equal(t, "at", token)
}

func TestXAuthService_AccessToken_RefreshesExpired(t *testing.T) {
	f := newXFixture(t)
	ctx := context.Background()
	expired := testNow.Add(-time.Second)

	f.repo.EXPECT().FindByID(ctx, "id-1").Return(&entity.Identity{
		ID:                    "id-1",
		XAccessToken:          "enc:old",
		XRefreshToken:         "enc:rt",
		XAccessTokenExpiresAt: &expired,
	}, nil)
	f.cipher.EXPECT().Decrypt(ctx, "enc:rt").Return("rt", nil)
	f.provider.EXPECT().Refresh(ctx, "rt").Return(&service.XTokenGrant{AccessToken: "new-at", RefreshToken: "new-rt", ExpiresIn: time.Hour}, nil)
	f.expectSeal(ctx, "new-at", "new-rt")
	f.repo.EXPECT().UpdateXTokens(ctx, "id-1", entity.XTokens{
		AccessToken:  "enc:new-at",
		RefreshToken: "enc:new-rt",
		ExpiresAt:    testNow.Add(time.Hour),
	}).Return(nil)

	token, err := f.srv.AccessToken(ctx, "id-1")

	require.NoError(t, err)
	assert.Equal(t, "new-at", token)
}

func TestXAuthService_AccessToken_KeepsRefreshTokenWhenNotRotated(t *testing.T) {
	f := newXFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().FindByID(ctx, "id-1").Return(&entity.Identity{ID: "id-1", XRefreshToken: "enc:rt"}, nil)
	f.cipher.EXPECT().Decrypt(ctx, "enc:rt").Return("rt", nil)
	f.provider.EXPECT().Refresh(ctx, "rt").Return(&service.XTokenGrant{AccessToken: "new-at", ExpiresIn: time.Hour}, nil)
	f.expectSeal(ctx, "new-at", "rt")
	f.repo.EXPECT().UpdateXTokens(ctx, "id-1", mock.Anything).Return(nil)

	_, err := f.srv.AccessToken(ctx, "id-1")

	require.NoError(t, err)
}

func TestXAuthService_AccessToken_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("identity missing", func(t *testing.T) {
		f := newXFixture(t)
		f.repo.EXPECT().FindByID(ctx, "id-1").Return(nil, repository.ErrIdentityNotFound)

		_, err := f.srv.AccessToken(ctx, "id-1")
		require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("no refresh token", func(t *testing.T) {
		f := newXFixture(t)
		f.repo.EXPECT().FindByID(ctx, "id-1").Return(&entity.Identity{ID: "id-1"}, nil)

		_, err := f.srv.AccessToken(ctx, "id-1")
		require.ErrorIs(t, err, domainerrors.ErrRefreshTokenNotFound)
	})

	t.Run("live expiry without token", func(t *testing.T) {
		f := newXFixture(t)
		expires := testNow.Add(time.Hour)
		f.repo.EXPECT().FindByID(ctx, "id-1").Return(&entity.Identity{ID: "id-1", XAccessTokenExpiresAt: &expires}, nil)

		_, err := f.srv.AccessToken(ctx, "id-1")
		require.ErrorIs(t, err, domainerrors.ErrAccessTokenNotFound)
	})

	t.Run("refresh rejected once", func(t *testing.T) {
		f := newXFixture(t)
		f.repo.EXPECT().FindByID(ctx, "id-1").Return(&entity.Identity{ID: "id-1", XRefreshToken: "enc:rt"}, nil)
		f.cipher.EXPECT().Decrypt(ctx, "enc:rt").Return("rt", nil)
		f.provider.EXPECT().Refresh(ctx, "rt").Return(nil, errors.New("invalid_request")).Once()

		_, err := f.srv.AccessToken(ctx, "id-1")
		assert.Equal(t, domainerrors.KindUpstream, domainerrors.KindOf(err))
		assert.Contains(t, err.Error(), "identity_id=id-1")
	})
}

func authenticatedXSession() *entity.Session {
	sess := newTestSession()
	sess.Authenticate(entity.Principal{
		IdentityID: "id-1",
		Role:       entity.RoleUser,
		Provider:   entity.ProviderX,
		XUserID:    "42",
		XUsername:  "alice",
	})

	return sess
}

func TestXAuthService_CurrentUser(t *testing.T) {
	f := newXFixture(t)
	ctx := context.Background()
	sess := authenticatedXSession()
	expires := testNow.Add(time.Hour)
	limits := []entity.RateLimit{{Endpoint: "users/me", Method: "GET", Limit: 75, Remaining: 10, Reset: 1, Day: &entity.RateLimitWindow{Limit: 100, Remaining: 5, Reset: 2}}}

	f.repo.EXPECT().FindByID(ctx, "id-1").Return(&entity.Identity{ID: "id-1", XAccessToken: "enc:at", XAccessTokenExpiresAt: &expires}, nil)
	f.cipher.EXPECT().Decrypt(ctx, "enc:at").Return("at", nil)
	f.repo.EXPECT().Exists(ctx, "id-1").Return(true, nil)
	f.rateLimits.EXPECT().List(ctx, "id-1").Return(limits, nil)
	f.rateLimits.EXPECT().Active(ctx, "id-1", entity.XProfileEndpoint, "GET").Return(nil, nil)

	output, err := f.srv.CurrentUser(ctx, sess)

	require.NoError(t, err)
	assert.Equal(t, "alice", output.XUsername)
	require.Len(t, output.RateLimits, 1)
	require.NotNil(t, output.RateLimits[0].Day)
	assert.Equal(t, 5, output.RateLimits[0].Day.Remaining)
	assert.False(t, output.ProfileLimited)
	assert.Nil(t, output.ProfileLimitedUntil)
}

func TestXAuthService_CurrentUser_ProfileLimited(t *testing.T) {
	f := newXFixture(t)
	ctx := context.Background()
	sess := authenticatedXSession()
	expires := testNow.Add(time.Hour)
	reset := testNow.Add(10 * time.Minute)
	limit := entity.RateLimit{Endpoint: "https://api.x.com/2/users/me", Method: "GET", Limit: 75, Remaining: 0, Reset: reset.Unix()}

	f.repo.EXPECT().FindByID(ctx, "id-1").Return(&entity.Identity{ID: "id-1", XAccessToken: "enc:at", XAccessTokenExpiresAt: &expires}, nil)
	f.cipher.EXPECT().Decrypt(ctx, "enc:at").Return("at", nil)
	f.repo.EXPECT().Exists(ctx, "id-1").Return(true, nil)
	f.rateLimits.EXPECT().List(ctx, "id-1").Return([]entity.RateLimit{limit}, nil)
	f.rateLimits.EXPECT().Active(ctx, "id-1", entity.XProfileEndpoint, "GET").Return(&limit, nil)

	output, err := f.srv.CurrentUser(ctx, sess)

	require.NoError(t, err)
	assert.True(t, output.ProfileLimited)
	require.NotNil(t, output.ProfileLimitedUntil)
	assert.True(t, reset.Truncate(time.Second).Equal(*output.ProfileLimitedUntil))
}

func TestXAuthService_CurrentUser_RateLimitLookupFails(t *testing.T) {
	f := newXFixture(t)
	ctx := context.Background()
	sess := authenticatedXSession()
	expires := testNow.Add(time.Hour)
	lookupErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "find rate limit")

	f.repo.EXPECT().FindByID(ctx, "id-1").Return(&entity.Identity{ID: "id-1", XAccessToken: "enc:at", XAccessTokenExpiresAt: &expires}, nil)
	f.cipher.EXPECT().Decrypt(ctx, "enc:at").Return("at", nil)
	f.repo.EXPECT().Exists(ctx, "id-1").Return(true, nil)
	f.rateLimits.EXPECT().List(ctx, "id-1").Return(nil, nil)
	f.rateLimits.EXPECT().Active(ctx, "id-1", entity.XProfileEndpoint, "GET").Return(nil, lookupErr)

	_, err := f.srv.CurrentUser(ctx, sess)

	require.ErrorIs(t, err, lookupErr)
	assert.False(t, sess.Destroyed())
}

func TestXAuthService_CurrentUser_TokenFailureDestroysSession(t *testing.T) {
	f := newXFixture(t)
	ctx := context.Background()
	sess := authenticatedXSession()

	f.repo.EXPECT().FindByID(ctx, "id-1").Return(&entity.Identity{ID: "id-1"}, nil)

	_, err := f.srv.CurrentUser(ctx, sess)

	require.ErrorIs(t, err, domainerrors.ErrSessionExpired)
	assert.True(t, sess.Destroyed())
}

func TestXAuthService_CurrentUser_IdentityDeleted(t *testing.T) {
	f := newXFixture(t)
	ctx := context.Background()
	sess := authenticatedXSession()
	expires := testNow.Add(time.Hour)

	f.repo.EXPECT().FindByID(ctx, "id-1").Return(&entity.Identity{ID: "id-1", XAccessToken: "enc:at", XAccessTokenExpiresAt: &expires}, nil)
	f.cipher.EXPECT().Decrypt(ctx, "enc:at").Return("at", nil)
	f.repo.EXPECT().Exists(ctx, "id-1").Return(false, nil)

	_, err := f.srv.CurrentUser(ctx, sess)

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.True(t, sess.Destroyed())
}

func TestXAuthService_CurrentUser_Unauthenticated(t *testing.T) {
	f := newXFixture(t)

	_, err := f.srv.CurrentUser(context.Background(), newTestSession())

	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
