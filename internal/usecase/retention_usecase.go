package usecase

import "context"

// RetentionUsecase prunes location history past the configured horizon.
type RetentionUsecase interface {
	// SweepOnce deletes every sample older than the retention horizon and
	// returns the number of rows removed.
	SweepOnce(ctx context.Context) (int64, error)
}
