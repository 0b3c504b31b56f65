package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"math/big"
	"regexp"
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

const otpSentMessage = "OTP sent successfully to your WhatsApp number"

// phonePattern accepts E.164 numbers with 8 to 15 digits.
var phonePattern = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

type whatsAppAuthService struct {
	identityRepo repository.IdentityRepository
	messaging    service.MessagingClient
	limiter      service.SendLimiter
	recorder     *authRecorder
	template     string
	language     string
	otp          config.OTPConfig
	logger       *slog.Logger
	now          func() time.Time
	newCode      func() (string, error)
}

// WhatsAppAuthServiceParams holds dependencies for WhatsAppAuthService, injected by Fx.
type WhatsAppAuthServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	Messaging    service.MessagingClient `optional:"true"`
	Limiter      service.SendLimiter
	Publisher    service.EventPublisher
	Metrics      service.AuthMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewWhatsAppAuthService creates the WhatsApp OTP use case.
func NewWhatsAppAuthService(params WhatsAppAuthServiceParams) usecase.WhatsAppAuthUsecase {
	srv := &whatsAppAuthService{
		identityRepo: params.IdentityRepo,
		messaging:    params.Messaging,
		limiter:      params.Limiter,
		recorder:     newAuthRecorder(params.Publisher, params.Metrics, params.Logger),
		otp:          params.Config.OTPSettings(),
		logger:       params.Logger,
		now:          time.Now,
		newCode:      generateOTP,
	}
	if wa := params.Config.WhatsApp; wa != nil {
		srv.template = wa.Template
		srv.language = wa.Language
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *whatsAppAuthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *whatsAppAuthService) SendOTP(ctx context.Context, sess *entity.Session, input *usecase.SendOTPInput) (*usecase.SendOTPOutput, error) {
	if !phonePattern.MatchString(input.PhoneNumber) {
		return nil, domainerrors.ErrInvalidPhoneNumber
	}
	if srv.messaging == nil {
		return nil, domainerrors.ErrWhatsAppNotConfigured
	}

	phone := entity.NormalizePhone(input.PhoneNumber)
	masked := maskPhone(input.PhoneNumber)

	allowed, retryAfter, err := srv.limiter.Allow(ctx, "otp:send:"+phone)
	if err != nil {
		srv.log(ctx).Error("OTP send limiter unavailable", slog.String("phone", masked), slog.Any("error", err))

		return nil, domainerrors.NewInternalError(err, "otp send limiter")
	}
	if !allowed {
		srv.log(ctx).Warn("OTP send limit reached", slog.String("phone", masked), slog.Duration("retryAfter", retryAfter))

		return nil, domainerrors.ErrTooManyOTPRequests.WithDetails("retry_after=" + retryAfter.Round(time.Second).String())
	}

	code, err := srv.newCode()
	if err != nil {
		return nil, domainerrors.NewInternalError(err, "generate otp")
	}

	template := service.TemplateMessage{
		Name:         srv.template,
		Language:     srv.language,
		BodyParams:   []string{code},
		ButtonParams: []string{code},
	}
	if err := srv.messaging.SendTemplateMessage(ctx, phone, template); err != nil {
		srv.log(ctx).Error("Failed to deliver OTP", slog.String("phone", masked), slog.Any("error", err))

		return nil, domainerrors.NewUpstreamError(err, "send whatsapp otp")
	}

	expiresAt := srv.now().Add(srv.otp.TTL)
	sess.BeginOTP(code, phone, expiresAt)
	srv.recorder.otpSent()

	srv.log(ctx).Info("OTP sent successfully", slog.String("phone", masked), slog.Time("expiresAt", expiresAt))

	return &usecase.SendOTPOutput{Success: true, Message: otpSentMessage}, nil
}

func (srv *whatsAppAuthService) VerifyOTP(ctx context.Context, sess *entity.Session, input *usecase.VerifyOTPInput) (*usecase.WhatsAppSessionOutput, error) {
	output, err := srv.verifyOTP(ctx, sess, input)
	if err != nil {
		srv.recorder.failed(entity.ProviderWhatsApp, err)

		return nil, err
	}

	return output, nil
}

func (srv *whatsAppAuthService) verifyOTP(ctx context.Context, sess *entity.Session, input *usecase.VerifyOTPInput) (*usecase.WhatsAppSessionOutput, error) {
	if input.OTPCode == "" {
		return nil, domainerrors.ErrOTPRequired
	}

	pending := sess.OTP
	if pending == nil || pending.Code == "" || pending.Phone == "" {
		return nil, domainerrors.ErrNoOTP
	}

	if pending.Expired(srv.now()) {
		sess.ClearOTP()

		return nil, domainerrors.ErrOTPExpired
	}

	if subtle.ConstantTimeCompare([]byte(pending.Code), []byte(input.OTPCode)) != 1 {
		attempts := sess.RecordOTPFailure()
		srv.log(ctx).Info("Invalid OTP code", slog.String("phone", maskPhone(pending.Phone)), slog.Int("attempts", attempts))
		if attempts >= srv.otp.MaxAttempts {
			sess.ClearOTP()

			return nil, domainerrors.ErrTooManyOTPAttempts
		}

		return nil, domainerrors.ErrInvalidOTP
	}

	phone := pending.Phone
	sess.ClearOTP()

	identity, created, err := srv.identityRepo.FindOrCreateByWhatsAppPhone(ctx, phone)
	if err != nil {
		srv.log(ctx).Error("Failed to resolve identity for phone", slog.String("phone", maskPhone(phone)), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "find or create identity by whatsapp phone")
	}

	sess.Authenticate(entity.Principal{
		IdentityID:    identity.ID,
		Role:          identity.Role,
		Provider:      entity.ProviderWhatsApp,
		WhatsAppPhone: identity.WhatsAppPhone,
	})

	srv.log(ctx).Info("WhatsApp sign-in succeeded", slog.String("identityID", identity.ID), slog.Bool("created", created))
	srv.recorder.succeeded(ctx, entity.ProviderWhatsApp, identity, created)

	return srv.sessionOutput(sess), nil
}

func (srv *whatsAppAuthService) Session(_ context.Context, sess *entity.Session) (*usecase.WhatsAppSessionOutput, error) {
	if !sess.IsAuthenticated() || sess.Principal.WhatsAppPhone == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	return srv.sessionOutput(sess), nil
}

func (srv *whatsAppAuthService) SignOut(ctx context.Context, sess *entity.Session) *usecase.SuccessOutput {
	sess.Destroy()
	srv.log(ctx).Debug("WhatsApp session signed out")

	return &usecase.SuccessOutput{Success: true}
}

func (srv *whatsAppAuthService) sessionOutput(sess *entity.Session) *usecase.WhatsAppSessionOutput {
	return &usecase.WhatsAppSessionOutput{
		MongoID:       sess.Principal.IdentityID,
		Role:          sess.Role(),
		WhatsAppPhone: sess.Principal.WhatsAppPhone,
		Status:        entity.SessionAuthenticated,
	}
}

var otpRange = big.NewInt(1000000)

// generateOTP returns six uniformly random digits; leading zeros are kept.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpRange)
	if err != nil {
		return "", errors.Wrap(err, "failed to read random otp")
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
