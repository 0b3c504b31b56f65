package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/repository"
	"authhub/internal/domain/service"
	"authhub/internal/domain/siwe"
	"authhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type evmAuthService struct {
	identityRepo repository.IdentityRepository
	chains       service.ChainClientResolver
	recorder     *authRecorder
	logger       *slog.Logger
	now          func() time.Time
	newNonce     func() (string, error)
}

// EVMAuthServiceParams holds dependencies for EVMAuthService, injected by Fx.
type EVMAuthServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	Chains       service.ChainClientResolver
	Publisher    service.EventPublisher
	Metrics      service.AuthMetrics
	Logger       *slog.Logger
}

// NewEVMAuthService creates the Sign-In with Ethereum use case.
func NewEVMAuthService(params EVMAuthServiceParams) usecase.EVMAuthUsecase {
	return &evmAuthService{
		identityRepo: params.IdentityRepo,
		chains:       params.Chains,
		recorder:     newAuthRecorder(params.Publisher, params.Metrics, params.Logger),
		logger:       params.Logger,
		now:          time.Now,
		newNonce:     siwe.GenerateNonce,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *evmAuthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *evmAuthService) Nonce(ctx context.Context, sess *entity.Session) (string, error) {
	nonce, err := srv.newNonce()
	if err != nil {
		return "", domainerrors.NewInternalError(err, "generate nonce")
	}

	sess.IssueNonce(nonce)
	srv.log(ctx).Debug("Issued SIWE nonce", slog.String("sessionID", sess.ID))

	return nonce, nil
}

// Verify checks the signature before the nonce so that a forged message
// always ends the session, while a stale nonce on a genuine signature leaves
// it untouched.
func (srv *evmAuthService) Verify(ctx context.Context, sess *entity.Session, input *usecase.EVMVerifyInput) (*usecase.SuccessOutput, error) {
	output, err := srv.verify(ctx, sess, input)
	if err != nil {
		srv.recorder.failed(entity.ProviderEVM, err)

		return nil, err
	}

	return output, nil
}

func (srv *evmAuthService) verify(ctx context.Context, sess *entity.Session, input *usecase.EVMVerifyInput) (*usecase.SuccessOutput, error) {
	msg, err := siwe.Parse(input.Message)
	if err != nil {
		return nil, domainerrors.ErrInvalidSIWEMessage.WithDetails(err.Error())
	}

	client, err := srv.chains.Client(msg.ChainID)
	if errors.Is(err, service.ErrUnsupportedChain) {
		return nil, domainerrors.ErrUnsupportedChain.WithDetails(chainDetails(msg.ChainID))
	}
	if err != nil {
		return nil, domainerrors.NewUpstreamError(err, chainDetails(msg.ChainID))
	}

	valid, err := client.VerifyMessage(ctx, msg.Address, input.Message, input.Signature)
	if err != nil {
		srv.log(ctx).Error("Signature verification call failed",
			slog.Uint64("chainID", msg.ChainID),
			slog.String("address", msg.Address),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewUpstreamError(err, chainDetails(msg.ChainID))
	}
	if valid && msg.ValidAt(srv.now()) != nil {
		valid = false
	}
	if !valid {
		srv.log(ctx).Warn("Rejected SIWE signature", slog.String("address", msg.Address), slog.Uint64("chainID", msg.ChainID))
		sess.Destroy()

		return nil, domainerrors.ErrInvalidSignature
	}

	nonce := sess.Nonce()
	if nonce == "" || msg.Nonce != nonce {
		return nil, domainerrors.ErrInvalidNonce
	}

	identity, created, err := srv.identityRepo.FindOrCreateByAddress(ctx, entity.NormalizeAddress(msg.Address))
	if err != nil {
		srv.log(ctx).Error("Failed to resolve identity for address", slog.String("address", msg.Address), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "find or create identity by address")
	}

	sess.ConsumeNonce()
	sess.Authenticate(entity.Principal{
		IdentityID: identity.ID,
		Role:       identity.Role,
		Provider:   entity.ProviderEVM,
		Address:    identity.Address,
	})

	srv.log(ctx).Info("EVM sign-in succeeded", slog.String("identityID", identity.ID), slog.Bool("created", created))
	srv.recorder.succeeded(ctx, entity.ProviderEVM, identity, created)

	return &usecase.SuccessOutput{Success: true}, nil
}

func (srv *evmAuthService) Session(_ context.Context, sess *entity.Session) (*usecase.EVMSessionOutput, error) {
	if !sess.IsAuthenticated() || sess.Principal.Address == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	return &usecase.EVMSessionOutput{
		ID:      sess.Principal.IdentityID,
		Address: sess.Principal.Address,
		Role:    sess.Role(),
		Status:  entity.SessionAuthenticated,
	}, nil
}

func (srv *evmAuthService) SignOut(ctx context.Context, sess *entity.Session) *usecase.SuccessOutput {
	sess.Destroy()
	srv.log(ctx).Debug("EVM session signed out")

	return &usecase.SuccessOutput{Success: true}
}
