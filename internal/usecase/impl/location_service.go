package impl

import (
	"context"

	"canpestre/internal/domain/entity"
	"canpestre/internal/domain/repository"
	"canpestre/internal/usecase"
)

type locationService struct {
	locationRepo repository.LocationRepository
}

// NewLocationService creates a new location service instance
func NewLocationService(locationRepo repository.LocationRepository) usecase.LocationUsecase {
	return &locationService{
		locationRepo: locationRepo,
	}
}

// RegisterLocation persists one validated GPS sample. History is kept in
// full: earlier samples for the same pet are never touched.
func (s *locationService) RegisterLocation(ctx context.Context, normalized *entity.NormalizedLocation) (*entity.Location, error) {
	location := &entity.Location{
		MascotaID: normalized.MascotaID,
		Latitude:  normalized.Latitude,
		Longitude: normalized.Longitude,
	}

	if err := s.locationRepo.CreateLocation(ctx, location); err != nil {
		return nil, err
	}

	return location, nil
}

// LatestLocation returns the most recent sample for a pet.
func (s *locationService) LatestLocation(ctx context.Context, petID int64) (*entity.Location, error) {
	location, err := s.locationRepo.FindLatestByPet(ctx, petID)
	if err != nil {
		return nil, err
	}

	return location, nil
}

// ListLocations returns samples matching the query. The repository enforces
// the page cap and picks the ordering from the cursor mode.
func (s *locationService) ListLocations(ctx context.Context, query usecase.LocationQuery) ([]*entity.Location, error) {
	filter := repository.LocationFilter{
		PetID:   query.PetID,
		Since:   query.Since,
		AfterID: query.AfterID,
		Limit:   query.Limit,
	}

	locations, err := s.locationRepo.FindLocations(ctx, filter)
	if err != nil {
		return nil, err
	}

	return locations, nil
}
