package postgres

import (
	"context"
	"time"

	"canpestre/internal/domain/entity"
	domainerrors "canpestre/internal/domain/errors"
	"canpestre/internal/domain/repository"
	"canpestre/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// CreateLocation appends a new GPS sample for a pet.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationPetMissing
		}
		if isNotNullConstraintViolation(err) || isNumericRangeViolation(err) {
			return domainerrors.ErrLocationValidation.WithDetails(err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	// Update the entity with generated values
	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt
	location.IsActive = locationM.IsActive

	return nil
}

// FindLocations returns rows matching the filter. The page cap is enforced
// here unconditionally; ordering follows the filter's cursor mode.
func (repo *locationRepository) FindLocations(ctx context.Context, filter repository.LocationFilter) ([]*entity.Location, error) {
	filter = filter.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.LocationModel{})
	if filter.PetID != nil {
		query = query.Where("mascota_id = ?", *filter.PetID)
	}
	if filter.Since != nil {
		query = query.Where("created_at >= ?", *filter.Since)
	}
	if filter.AfterID != nil {
		query = query.Where("id > ?", *filter.AfterID)
	}

	if filter.Ascending() {
		query = query.Order("id ASC")
	} else {
		query = query.Order("created_at DESC")
	}

	var locationModels []*model.LocationModel
	if err := query.Limit(filter.Limit).Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// FindLatestByPet returns the most recent sample for a pet.
func (repo *locationRepository) FindLatestByPet(ctx context.Context, petID int64) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("mascota_id = ?", petID).
		Order("created_at DESC").
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest location")
	}

	return toLocationDomain(&locationM), nil
}

// DeleteOlderThan removes every sample created strictly before cutoff.
// Deletion is by age only; is_active is never consulted.
func (repo *locationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.LocationModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete old locations")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:        data.ID,
		MascotaID: data.MascotaID,
		Latitude:  entity.Coordinate{Decimal: data.Latitude},
		Longitude: entity.Coordinate{Decimal: data.Longitude},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		IsActive:  data.IsActive,
	}
}

// fromLocationDomain converts a domain Location entity to a GORM LocationModel.
func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:        data.ID,
		MascotaID: data.MascotaID,
		Latitude:  data.Latitude.Decimal,
		Longitude: data.Longitude.Decimal,
		IsActive:  true,
	}
}
