package usecase

import (
	"context"
	"time"

	"canpestre/internal/domain/entity"
)

// LocationQuery carries the optional filters accepted by location reads. Any
// nil field is left out of the query; the page size is always capped by the
// repository regardless of Limit.
type LocationQuery struct {
	PetID   *int64
	Since   *time.Time
	AfterID *int64
	Limit   int
}

// LocationUsecase defines the interface for location tracking use cases
type LocationUsecase interface {
	// RegisterLocation validates and persists one GPS sample for a pet
	RegisterLocation(ctx context.Context, location *entity.NormalizedLocation) (*entity.Location, error)

	// LatestLocation returns the most recent sample for a pet
	LatestLocation(ctx context.Context, petID int64) (*entity.Location, error)

	// ListLocations returns samples matching the query, newest first unless
	// a cursor is set
	ListLocations(ctx context.Context, query LocationQuery) ([]*entity.Location, error)
}
