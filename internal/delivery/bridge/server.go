// Package bridge runs the broker-to-store location pipeline as a supervised
// long-running delivery.
package bridge

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"canpestre/config"
	"canpestre/internal/delivery"
	"canpestre/internal/usecase"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Runner is one subscriber incarnation. Run blocks until the connection ends;
// a Runner is never reused after Run returns.
type Runner interface {
	Run(ctx context.Context) error
}

// RunnerFactory builds a fresh Runner for each supervision round, so every
// restart starts from a clean connection.
type RunnerFactory func() Runner

// ServerParams holds dependencies for the bridge server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	NewRunner   RunnerFactory
	RetentionUC usecase.RetentionUsecase
}

type bridgeServer struct {
	cfg         *config.Config
	logger      *slog.Logger
	newRunner   RunnerFactory
	retentionUC usecase.RetentionUsecase

	// mu guards cancel: Serve writes it on its own goroutine while the fx
	// OnStop hook reads it during shutdown.
	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewServer creates the supervised bridge delivery.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &bridgeServer{
		cfg:         params.Cfg,
		logger:      params.Logger,
		newRunner:   params.NewRunner,
		retentionUC: params.RetentionUC,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve supervises the subscriber: every exit, clean or not, is followed by a
// fixed backoff and a brand-new runner. Only ctx cancellation ends the loop.
func (s *bridgeServer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	if s.cfg.Retention.SweepInterval > 0 {
		go s.sweepLoop(ctx)
	}

	policy := backoff.WithContext(
		backoff.NewConstantBackOff(s.cfg.Bridge.RestartBackoff), ctx)

	for {
		runner := s.newRunner()

		err := runner.Run(ctx)
		if ctx.Err() != nil {
			s.logger.Info("Bridge supervisor stopping", slog.Any("cause", ctx.Err()))

			return ctx.Err()
		}

		s.logger.Error("Subscriber exited, restarting",
			slog.Any("error", err),
			slog.Duration("backoff", s.cfg.Bridge.RestartBackoff))

		delay := policy.NextBackOff()
		if delay == backoff.Stop {
			return ctx.Err()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

// sweepLoop prunes old locations on a fixed interval for deployments that do
// not schedule cmd/cleanlocations externally.
func (s *bridgeServer) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Retention.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.retentionUC.SweepOnce(ctx); err != nil {
				s.logger.Error("Retention sweep failed", slog.Any("error", err))
			}
		}
	}
}

func (s *bridgeServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down bridge")

	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel == nil {
		return errors.New("bridge was never started")
	}
	cancel()

	return nil
}
