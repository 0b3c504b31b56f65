package cmd

import (
	"context"
	"fmt"
	"time"

	"authhub/config"
	"authhub/internal/domain/lifecycle"
	"authhub/internal/errors"
	"authhub/internal/usecase"
	"authhub/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var maintenanceTimeout time.Duration

var maintenanceCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "One-off store maintenance jobs",
}

var cleanupRateLimitsCmd = &cobra.Command{
	Use:   "cleanup-rate-limits",
	Short: "Remove X rate-limit snapshots whose windows have all reset",
	RunE: func(cmd *cobra.Command, args []string) error {
		var rateLimits usecase.XRateLimitUsecase

		return runMaintenance(cmd, fx.Populate(&rateLimits), func(ctx context.Context) (int64, error) {
			return rateLimits.Cleanup(ctx)
		})
	},
}

var cleanupSessionsCmd = &cobra.Command{
	Use:   "cleanup-sessions",
	Short: "Remove expired sessions from stores without native expiry",
	RunE: func(cmd *cobra.Command, args []string) error {
		var sessions usecase.SessionUsecase

		return runMaintenance(cmd, fx.Populate(&sessions), func(ctx context.Context) (int64, error) {
			return sessions.PurgeExpired(ctx)
		})
	},
}

func init() {
	maintenanceCmd.PersistentFlags().DurationVar(&maintenanceTimeout, "timeout", time.Minute, "Deadline for the job")
	maintenanceCmd.AddCommand(cleanupRateLimitsCmd, cleanupSessionsCmd)
	rootCmd.AddCommand(maintenanceCmd)
}

// runMaintenance starts only the storage graph, runs job and prints the
// number of removed records.
func runMaintenance(cmd *cobra.Command, populate fx.Option, job func(ctx context.Context) (int64, error)) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	app := fx.New(maintenanceOptions(cfg, populate)...)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(cmd.Context(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start storage")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	ctx, cancelJob := context.WithTimeout(cmd.Context(), maintenanceTimeout)
	defer cancelJob()

	removed, err := job(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: removed %d records\n", cmd.Name(), removed)

	return nil
}

// maintenanceOptions wires the storage graph and the cleanup use cases only.
func maintenanceOptions(cfg *config.Config, populate fx.Option) []fx.Option {
	return []fx.Option{
		fx.NopLogger,
		injectInfra(cfg),
		injectRepo(cfg.Storage.Driver),
		fx.Provide(
			impl.NewXRateLimitService,
			impl.NewSessionService,
		),
		populate,
	}
}
