package impl

import (
	"context"
	"log/slog"
	"time"

	"canpestre/config"
	"canpestre/internal/domain/repository"
	"canpestre/internal/usecase"
)

type retentionService struct {
	locationRepo repository.LocationRepository
	config       *config.Config
	logger       *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewRetentionService creates a new retention service instance
func NewRetentionService(locationRepo repository.LocationRepository, cfg *config.Config, logger *slog.Logger) usecase.RetentionUsecase {
	return &retentionService{
		locationRepo: locationRepo,
		config:       cfg,
		logger:       logger,
		now:          time.Now,
	}
}

// SweepOnce deletes every location older than the rolling retention horizon.
// The cutoff is computed once per sweep so a slow delete cannot widen the
// window mid-flight.
func (s *retentionService) SweepOnce(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.config.Retention.Horizon)

	deleted, err := s.locationRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	s.logger.Info("retention sweep completed",
		slog.Time("cutoff", cutoff),
		slog.Int64("deleted", deleted))

	return deleted, nil
}
