package main

import (
	"context"
	"log/slog"
	"os"

	"canpestre/config"
	"canpestre/internal/delivery"
	"canpestre/internal/delivery/bridge"
	"canpestre/internal/infra/forward"
	logs "canpestre/internal/infra/log"
	"canpestre/internal/infra/mqtt"
	"canpestre/internal/infra/persistence/postgres"
	"canpestre/internal/usecase"
	"canpestre/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		// Expose the forwarder config for the HTTP sink
		func(cfg *config.Config) *config.ForwarderConfig {
			if cfg == nil || cfg.Forwarder == nil {
				return &config.ForwarderConfig{}
			}

			return cfg.Forwarder
		},
		logs.New,
		context.Background,
		postgres.New,
		forward.NewHTTPForwarder,
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
			impl.NewLocationService,
			impl.NewRetentionService,
			impl.NewIngestService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			// Each supervision round gets a brand-new subscriber so restarts
			// always begin from a fresh broker connection.
			func(cfg *config.Config, ingest usecase.IngestUsecase, logger *slog.Logger) bridge.RunnerFactory {
				return func() bridge.Runner {
					return mqtt.NewSubscriber(cfg.MQTT, ingest, logger)
				}
			},
			fx.Annotate(
				bridge.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start bridge", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
