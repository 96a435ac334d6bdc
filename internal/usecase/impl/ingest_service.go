package impl

import (
	"context"
	"log/slog"

	"canpestre/internal/domain/service"
	"canpestre/internal/usecase"
)

type ingestService struct {
	locationUsecase usecase.LocationUsecase
	forwarder       service.LocationForwarder
	logger          *slog.Logger
}

// NewIngestService creates a new ingest service instance
func NewIngestService(
	locationUsecase usecase.LocationUsecase,
	forwarder service.LocationForwarder,
	logger *slog.Logger,
) usecase.IngestUsecase {
	return &ingestService{
		locationUsecase: locationUsecase,
		forwarder:       forwarder,
		logger:          logger,
	}
}

// HandleMessage processes one broker message end to end. Every fault here is
// local to the message: it is logged and absorbed so the subscription keeps
// consuming. Forwarding is attempted even when the store rejects the sample,
// so a database outage does not blind the secondary sink.
func (s *ingestService) HandleMessage(ctx context.Context, topic string, payload []byte) error {
	normalized, err := NormalizeLocationEvent(payload)
	if err != nil {
		s.logger.Warn("discarding malformed location message",
			slog.String("topic", topic),
			slog.Int("bytes", len(payload)),
			slog.Any("error", err))

		return nil
	}

	location, err := s.locationUsecase.RegisterLocation(ctx, normalized)
	if err != nil {
		s.logger.Error("failed to store location",
			slog.String("topic", topic),
			slog.Int64("mascota", normalized.MascotaID),
			slog.Any("error", err))
	} else {
		s.logger.Info("location stored",
			slog.Int64("id", location.ID),
			slog.Int64("mascota", location.MascotaID),
			slog.String("latitude", location.Latitude.String()),
			slog.String("longitude", location.Longitude.String()))
	}

	if err := s.forwarder.Forward(ctx, normalized); err != nil {
		s.logger.Warn("failed to forward location",
			slog.Int64("mascota", normalized.MascotaID),
			slog.Any("error", err))
	}

	return nil
}
