package cmd

import (
	"context"

	"authhub/config"
	"authhub/internal/delivery"
	"authhub/internal/delivery/http"
	"authhub/internal/delivery/http/middleware"
	"authhub/internal/delivery/http/router/handler"
	"authhub/internal/delivery/http/session"
	"authhub/internal/domain/constants"
	"authhub/internal/infra/auth"
	"authhub/internal/infra/crypto"
	"authhub/internal/infra/evm"
	logs "authhub/internal/infra/log"
	"authhub/internal/infra/metrics"
	"authhub/internal/infra/persistence/memory"
	"authhub/internal/infra/persistence/mongo"
	"authhub/internal/infra/persistence/postgres"
	"authhub/internal/infra/pubsub"
	"authhub/internal/infra/ratelimit"
	"authhub/internal/infra/whatsapp"
	"authhub/internal/infra/x"
	"authhub/internal/usecase/impl"

	"go.uber.org/fx"
)

func injectInfra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			context.Background,
		),
	)
}

// injectRepo binds the repositories of the configured storage driver.
func injectRepo(driver string) fx.Option {
	switch driver {
	case constants.StorageDriverPostgres:
		return fx.Provide(
			postgres.New,
			postgres.NewIdentityRepository,
			postgres.NewRateLimitRepository,
			postgres.NewSessionRepository,
		)
	case constants.StorageDriverMemory:
		return fx.Provide(
			memory.NewStore,
			memory.NewIdentityRepository,
			memory.NewRateLimitRepository,
			memory.NewSessionRepository,
		)
	default:
		return fx.Provide(
			mongo.New,
			mongo.NewIdentityRepository,
			mongo.NewRateLimitRepository,
			mongo.NewSessionRepository,
		)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewCookieSigner,
			crypto.NewTokenCipher,
			evm.NewChainRegistry,
			x.NewClient,
			whatsapp.NewClient,
			ratelimit.NewSendLimiter,
			metrics.New,
			metrics.NewAuthMetrics,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEVMAuthService,
			impl.NewXAuthService,
			impl.NewXRateLimitService,
			impl.NewWhatsAppAuthService,
			impl.NewUserService,
			impl.NewAPISecretService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			session.NewManager,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEVMHandler,
			handler.NewXHandler,
			handler.NewWhatsAppHandler,
			handler.NewUserHandler,
			handler.NewAPISecretHandler,
			handler.NewMaintenanceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}
