package cmd

import (
	"context"
	"log/slog"

	"authhub/config"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		app := fx.New(
			injectInfra(cfg),
			injectRepo(cfg.Storage.Driver),
			injectService(),
			injectUsecase(),
			injectMiddleware(),
			injectHandler(),
			injectDelivery(),
			fx.Invoke(
				startServer,
			),
		)
		if err := app.Err(); err != nil {
			return err
		}
		app.Run()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// startServer runs every delivery once the start hooks have completed and
// shuts the app down if one of them fails.
func startServer(params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(context.Background()); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						_ = params.Shutdown(fx.ExitCode(1))
					}
				}()
			}

			return nil
		},
	})
}
