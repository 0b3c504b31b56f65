package cmd

import (
	"testing"

	"authhub/config"
	"authhub/internal/domain/constants"
	"authhub/internal/domain/service"
	logs "authhub/internal/infra/log"
	"authhub/internal/infra/pubsub"
	"authhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

var storageDrivers = []string{
	constants.StorageDriverMemory,
	constants.StorageDriverMongo,
	constants.StorageDriverPostgres,
}

func testConfig(driver string) *config.Config {
	cfg := &config.Config{}
	cfg.Storage.Driver = driver

	return cfg
}

func TestServeGraph_ResolvesForEveryDriver(t *testing.T) {
	for _, driver := range storageDrivers {
		t.Run(driver, func(t *testing.T) {
			cfg := testConfig(driver)

			err := fx.ValidateApp(
				fx.NopLogger,
				injectInfra(cfg),
				injectRepo(driver),
				injectService(),
				injectUsecase(),
				injectMiddleware(),
				injectHandler(),
				injectDelivery(),
				fx.Invoke(startServer),
			)
			assert.NoError(t, err)
		})
	}
}

func TestMaintenanceGraph_ResolvesForEveryDriver(t *testing.T) {
	for _, driver := range storageDrivers {
		t.Run(driver, func(t *testing.T) {
			var (
				rateLimits usecase.XRateLimitUsecase
				sessions   usecase.SessionUsecase
			)

			err := fx.ValidateApp(maintenanceOptions(testConfig(driver), fx.Populate(&rateLimits, &sessions))...)
			assert.NoError(t, err)
		})
	}
}

func TestEventPublisher_RequiresContextProvider(t *testing.T) {
	cfg := testConfig(constants.StorageDriverMemory)
	invoke := fx.Invoke(func(service.EventPublisher) {})

	err := fx.ValidateApp(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(logs.New),
		pubsub.Module,
		invoke,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context.Context")

	err = fx.ValidateApp(
		fx.NopLogger,
		injectInfra(cfg),
		pubsub.Module,
		invoke,
	)
	assert.NoError(t, err)
}
