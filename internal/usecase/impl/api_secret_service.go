package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/repository"
	"authhub/internal/domain/service"
	"authhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const apiSecretBytes = 32

type apiSecretService struct {
	identityRepo repository.IdentityRepository
	hasher       service.SecretHasher
	metrics      service.AuthMetrics
	logger       *slog.Logger
	now          func() time.Time
}

// APISecretServiceParams holds dependencies for APISecretService, injected by Fx.
type APISecretServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	Hasher       service.SecretHasher
	Metrics      service.AuthMetrics
	Logger       *slog.Logger
}

// NewAPISecretService creates the api secret use case.
func NewAPISecretService(params APISecretServiceParams) usecase.APISecretUsecase {
	return &apiSecretService{
		identityRepo: params.IdentityRepo,
		hasher:       params.Hasher,
		metrics:      params.Metrics,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *apiSecretService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *apiSecretService) Create(ctx context.Context, identityID string, input *usecase.CreateAPISecretInput) (*usecase.CreateAPISecretOutput, error) {
	raw := make([]byte, apiSecretBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, domainerrors.NewInternalError(errors.Wrap(err, "failed to read random"), "generate api secret")
	}
	secret := hex.EncodeToString(raw)

	hashed, err := srv.hasher.Hash(secret)
	if err != nil {
		return nil, domainerrors.NewInternalError(err, "hash api secret")
	}

	now := srv.now()
	record := entity.APISecret{
		Key:          uuid.NewString(),
		Title:        strings.TrimSpace(input.Title),
		HashedSecret: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.identityRepo.AddAPISecret(ctx, identityID, record); err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "add api secret "+identityDetails(identityID))
	}

	srv.log(ctx).Info("Created api secret", slog.String("identityID", identityID), slog.String("key", record.Key))

	return &usecase.CreateAPISecretOutput{Key: record.Key, Secret: secret, Title: record.Title}, nil
}

func (srv *apiSecretService) List(ctx context.Context, identityID string) ([]usecase.APISecretSummary, error) {
	identity, err := srv.identityRepo.FindByID(ctx, identityID)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, identityDetails(identityID))
	}

	summaries := make([]usecase.APISecretSummary, 0, len(identity.APISecrets))
	for _, secret := range identity.APISecrets {
		summaries = append(summaries, usecase.APISecretSummary{
			Key:       secret.Key,
			Title:     secret.Title,
			CreatedAt: secret.CreatedAt,
			UpdatedAt: secret.UpdatedAt,
		})
	}

	return summaries, nil
}

func (srv *apiSecretService) Revoke(ctx context.Context, identityID, key string) error {
	err := srv.identityRepo.RemoveAPISecret(ctx, identityID, key)
	if errors.Is(err, repository.ErrAPISecretNotFound) || errors.Is(err, repository.ErrIdentityNotFound) {
		return domainerrors.ErrAPISecretNotFound
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "remove api secret "+identityDetails(identityID))
	}

	srv.log(ctx).Info("Revoked api secret", slog.String("identityID", identityID), slog.String("key", key))

	return nil
}

func (srv *apiSecretService) Authenticate(ctx context.Context, credential string) (*entity.Principal, error) {
	principal, err := srv.authenticate(ctx, credential)
	if srv.metrics != nil {
		outcome := service.OutcomeSuccess
		if err != nil {
			outcome = service.OutcomeRejected
			if domainerrors.KindOf(err) == domainerrors.KindInternal {
				outcome = service.OutcomeError
			}
		}
		srv.metrics.ObserveAttempt(string(entity.ProviderAPIKey), outcome)
	}

	return principal, err
}

func (srv *apiSecretService) authenticate(ctx context.Context, credential string) (*entity.Principal, error) {
	key, secret, ok := strings.Cut(credential, ":")
	if !ok || key == "" || secret == "" {
		return nil, domainerrors.ErrUnauthorized.WithDetails("malformed bearer token")
	}

	identity, err := srv.identityRepo.FindByAPISecretKey(ctx, key)
	if errors.Is(err, repository.ErrAPISecretNotFound) || errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, domainerrors.ErrUnauthorized.WithDetails("no matching api secret")
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find api secret")
	}

	record, found := identity.FindAPISecret(key)
	if !found || !srv.hasher.Check(secret, record.HashedSecret) {
		srv.log(ctx).Warn("Rejected api secret", slog.String("key", key))

		return nil, domainerrors.ErrUnauthorized.WithDetails("invalid api secret")
	}

	return &entity.Principal{
		IdentityID:    identity.ID,
		Role:          identity.Role,
		Provider:      entity.ProviderAPIKey,
		Address:       identity.Address,
		XUserID:       identity.XUserID,
		XUsername:     identity.XUsername,
		WhatsAppPhone: identity.WhatsAppPhone,
	}, nil
}
