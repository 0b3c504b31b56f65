package impl

import (
	"context"
	"testing"
	"time"

	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/service"
	mockRepo "authhub/internal/mocks/repository"
	mockService "authhub/internal/mocks/service"
	"authhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type whatsAppFixture struct {
	srv       *whatsAppAuthService
	repo      *mockRepo.MockIdentityRepository
	messaging *mockService.MockMessagingClient
	limiter   *mockService.MockSendLimiter
	publisher *mockService.MockEventPublisher
	metrics   *mockService.MockAuthMetrics
	clock     time.Time
}

func newWhatsAppFixture(t *testing.T) *whatsAppFixture {
	f := &whatsAppFixture{
		repo:      mockRepo.NewMockIdentityRepository(t),
		messaging: mockService.NewMockMessagingClient(t),
		limiter:   mockService.NewMockSendLimiter(t),
		publisher: mockService.NewMockEventPublisher(t),
		metrics:   mockService.NewMockAuthMetrics(t),
		clock:     testNow,
	}

	srv := NewWhatsAppAuthService(WhatsAppAuthServiceParams{
		IdentityRepo: f.repo,
		Messaging:    f.messaging,
		Limiter:      f.limiter,
		Publisher:    f.publisher,
		Metrics:      f.metrics,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*whatsAppAuthService)
	srv.now = func() time.Time { return f.clock }
	srv.newCode = func() (string, error) { return "482913", nil }
	f.srv = srv

	return f
}

func (f *whatsAppFixture) sendOTP(t *testing.T, sess *entity.Session) {
	t.Helper()
	ctx := context.Background()

	f.limiter.EXPECT().Allow(ctx, "otp:send:15551234567").Return(true, time.Duration(0), nil).Once()
	f.messaging.EXPECT().SendTemplateMessage(ctx, "15551234567", service.TemplateMessage{
		Name:         "otp_verification",
		Language:     "en_US",
		BodyParams:   []string{"482913"},
		ButtonParams: []string{"482913"},
	}).Return(nil).Once()
	f.metrics.EXPECT().ObserveOTPSent().Return().Once()

	output, err := f.srv.SendOTP(ctx, sess, &usecase.SendOTPInput{PhoneNumber: "+15551234567"})
	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, otpSentMessage, output.Message)
}

func TestWhatsAppAuthService_RoundTrip(t *testing.T) {
	f := newWhatsAppFixture(t)
	ctx := context.Background()
	sess := newTestSession()
	f.sendOTP(t, sess)

	identity := &entity.Identity{ID: "id-7", Role: entity.RoleUser, WhatsAppPhone: "15551234567"}
	f.repo.EXPECT().FindOrCreateByWhatsAppPhone(ctx, "15551234567").Return(identity, true, nil)
	f.metrics.EXPECT().ObserveAttempt("whatsapp", service.OutcomeSuccess).Return()
	f.publisher.EXPECT().PublishAuthEvent(ctx, mock.Anything).Return(nil).Times(2)

	f.clock = testNow.Add(10 * time.Minute)
	output, err := f.srv.VerifyOTP(ctx, sess, &usecase.VerifyOTPInput{OTPCode: "482913"})

	require.NoError(t, err)
	assert.Equal(t, entity.SessionAuthenticated, output.Status)
	assert.Equal(t, "15551234567", output.WhatsAppPhone)
	assert.Equal(t, "id-7", output.MongoID)
	assert.Nil(t, sess.OTP)
}

func TestWhatsAppAuthService_VerifyOTP_Expired(t *testing.T) {
	f := newWhatsAppFixture(t)
	sess := newTestSession()
	f.sendOTP(t, sess)
	f.metrics.EXPECT().ObserveAttempt("whatsapp", service.OutcomeRejected).Return()

	f.clock = testNow.Add(10*time.Minute + time.Second)
	_, err := f.srv.VerifyOTP(context.Background(), sess, &usecase.VerifyOTPInput{OTPCode: "482913"})

	require.ErrorIs(t, err, domainerrors.ErrOTPExpired)
	assert.Nil(t, sess.OTP)
}

func TestWhatsAppAuthService_VerifyOTP_MismatchKeepsOTP(t *testing.T) {
	f := newWhatsAppFixture(t)
	sess := newTestSession()
	f.sendOTP(t, sess)
	f.metrics.EXPECT().ObserveAttempt("whatsapp", service.OutcomeRejected).Return()

	_, err := f.srv.VerifyOTP(context.Background(), sess, &usecase.VerifyOTPInput{OTPCode: "000000"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
	assert.Equal(t, "Invalid OTP code", domainerrors.ErrInvalidOTP.Message())
	require.NotNil(t, sess.OTP)
	assert.Equal(t, "482913", sess.OTP.Code)
}

func TestWhatsAppAuthService_VerifyOTP_TooManyAttempts(t *testing.T) {
	f := newWhatsAppFixture(t)
	ctx := context.Background()
	sess := newTestSession()
	f.sendOTP(t, sess)
	f.metrics.EXPECT().ObserveAttempt("whatsapp", service.OutcomeRejected).Return().Times(3)

	for range 2 {
		_, err := f.srv.VerifyOTP(ctx, sess, &usecase.VerifyOTPInput{OTPCode: "000000"})
		require.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
	}
	_, err := f.srv.VerifyOTP(ctx, sess, &usecase.VerifyOTPInput{OTPCode: "000000"})

	require.ErrorIs(t, err, domainerrors.ErrTooManyOTPAttempts)
	assert.Equal(t, domainerrors.KindRateLimited, domainerrors.KindOf(err))
	assert.Nil(t, sess.OTP)
}

func TestWhatsAppAuthService_VerifyOTP_InputErrors(t *testing.T) {
	f := newWhatsAppFixture(t)
	f.metrics.EXPECT().ObserveAttempt("whatsapp", service.OutcomeRejected).Return().Times(2)

	_, err := f.srv.VerifyOTP(context.Background(), newTestSession(), &usecase.VerifyOTPInput{})
	require.ErrorIs(t, err, domainerrors.ErrOTPRequired)

	_, err = f.srv.VerifyOTP(context.Background(), newTestSession(), &usecase.VerifyOTPInput{OTPCode: "123456"})
	require.ErrorIs(t, err, domainerrors.ErrNoOTP)
}

func TestWhatsAppAuthService_SendOTP_InvalidPhone(t *testing.T) {
	f := newWhatsAppFixture(t)

	for _, phone := range []string{"", "15551234567", "+0123456789", "+1234567", "+1234567890123456", "+1555abc4567"} {
		_, err := f.srv.SendOTP(context.Background(), newTestSession(), &usecase.SendOTPInput{PhoneNumber: phone})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPhoneNumber, phone)
	}
}

func TestWhatsAppAuthService_SendOTP_RateLimited(t *testing.T) {
	f := newWhatsAppFixture(t)
	ctx := context.Background()
	sess := newTestSession()

	f.limiter.EXPECT().Allow(ctx, "otp:send:15551234567").Return(false, 20*time.Minute, nil)

	_, err := f.srv.SendOTP(ctx, sess, &usecase.SendOTPInput{PhoneNumber: "+15551234567"})

	require.ErrorIs(t, err, domainerrors.ErrTooManyOTPRequests)
	assert.Nil(t, sess.OTP)
}

func TestWhatsAppAuthService_SendOTP_LimiterUnavailable(t *testing.T) {
	f := newWhatsAppFixture(t)
	ctx := context.Background()

	f.limiter.EXPECT().Allow(ctx, "otp:send:15551234567").Return(false, time.Duration(0), errors.New("redis down"))

	_, err := f.srv.SendOTP(ctx, newTestSession(), &usecase.SendOTPInput{PhoneNumber: "+15551234567"})

	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}

func TestWhatsAppAuthService_SendOTP_DeliveryFails(t *testing.T) {
	f := newWhatsAppFixture(t)
	ctx := context.Background()
	sess := newTestSession()

	f.limiter.EXPECT().Allow(ctx, mock.Anything).Return(true, time.Duration(0), nil)
	f.messaging.EXPECT().SendTemplateMessage(ctx, "15551234567", mock.Anything).Return(errors.New("template not approved"))

	_, err := f.srv.SendOTP(ctx, sess, &usecase.SendOTPInput{PhoneNumber: "+15551234567"})

	assert.Equal(t, domainerrors.KindUpstream, domainerrors.KindOf(err))
	assert.Nil(t, sess.OTP)
}

func TestWhatsAppAuthService_Session(t *testing.T) {
	f := newWhatsAppFixture(t)
	sess := newTestSession()

	_, err := f.srv.Session(context.Background(), sess)
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	sess.Authenticate(entity.Principal{IdentityID: "id-7", Provider: entity.ProviderWhatsApp, WhatsAppPhone: "15551234567"})
	output, err := f.srv.Session(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "15551234567", output.WhatsAppPhone)

	assert.True(t, f.srv.SignOut(context.Background(), sess).Success)
	assert.True(t, sess.Destroyed())
}

func TestGenerateOTP(t *testing.T) {
	for range 100 {
		code, err := generateOTP()
		require.NoError(t, err)
		assert.Regexp(t, `^\d{6}$`, code)
	}
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "+155*****567", maskPhone("+15551234567"))
	assert.Equal(t, "****", maskPhone("1234"))
}
