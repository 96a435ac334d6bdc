// Command cleanlocations runs one retention sweep and exits. It is meant to
// be scheduled externally (cron, systemd timer) when the bridge's built-in
// sweep interval is disabled.
package main

import (
	"context"
	"log/slog"
	"os"

	"canpestre/config"
	logs "canpestre/internal/infra/log"
	"canpestre/internal/infra/persistence/postgres"
	"canpestre/internal/usecase"
	"canpestre/internal/usecase/impl"

	"go.uber.org/fx"
)

type sweepParams struct {
	fx.In
	fx.Shutdowner

	Logger      *slog.Logger
	RetentionUC usecase.RetentionUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		fx.Invoke(
			runSweep,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewLocationRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRetentionService,
		),
	)
}

func runSweep(ctx context.Context, params sweepParams) {
	go func() {
		deleted, err := params.RetentionUC.SweepOnce(ctx)
		if err != nil {
			params.Logger.Error("Retention sweep failed", slog.Any("error", err))
			if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
				params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
				os.Exit(1)
			}

			return
		}

		params.Logger.Info("Retention sweep finished", slog.Int64("deleted", deleted))
		if shutdownErr := params.Shutdown(); shutdownErr != nil {
			params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
			os.Exit(1)
		}
	}()
}
