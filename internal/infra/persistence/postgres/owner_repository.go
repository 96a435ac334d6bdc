package postgres

import (
	"context"

	"canpestre/internal/domain/entity"
	domainerrors "canpestre/internal/domain/errors"
	"canpestre/internal/domain/repository"
	"canpestre/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ownerRepository implements the repository.OwnerRepository interface.
type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository is the constructor for ownerRepository.
func NewOwnerRepository(db *gorm.DB) repository.OwnerRepository {
	return &ownerRepository{
		db: db,
	}
}

// CreateOwner persists a new owner record.
func (repo *ownerRepository) CreateOwner(ctx context.Context, owner *entity.Owner) error {
	ownerM := fromOwnerDomain(owner)

	if err := repo.db.WithContext(ctx).Create(ownerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create owner")
	}

	owner.ID = ownerM.ID
	owner.FechaCreacion = ownerM.FechaCreacion

	return nil
}

// FindOwnerByID returns the owner with the given id.
func (repo *ownerRepository) FindOwnerByID(ctx context.Context, id int64) (*entity.Owner, error) {
	var ownerM model.OwnerModel

	if err := repo.db.WithContext(ctx).First(&ownerM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner")
	}

	return toOwnerDomain(&ownerM), nil
}

// FindAllOwners returns every owner ordered by id.
func (repo *ownerRepository) FindAllOwners(ctx context.Context) ([]*entity.Owner, error) {
	var ownerModels []*model.OwnerModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&ownerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find owners")
	}

	owners := make([]*entity.Owner, 0, len(ownerModels))
	for _, ownerM := range ownerModels {
		owners = append(owners, toOwnerDomain(ownerM))
	}

	return owners, nil
}

// UpdateOwner saves the full state of an existing owner.
func (repo *ownerRepository) UpdateOwner(ctx context.Context, owner *entity.Owner) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OwnerModel{}).
		Where("id = ?", owner.ID).
		Updates(map[string]any{
			"nombre":    owner.Nombre,
			"apellido":  owner.Apellido,
			"email":     owner.Email,
			"telefono":  owner.Telefono,
			"direccion": owner.Direccion,
			"ciudad":    owner.Ciudad,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update owner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOwnerNotFound
	}

	return nil
}

// DeleteOwner removes an owner. Pets and their locations cascade at the
// database level.
func (repo *ownerRepository) DeleteOwner(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.OwnerModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete owner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOwnerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOwnerDomain converts a GORM OwnerModel to a domain Owner entity.
func toOwnerDomain(data *model.OwnerModel) *entity.Owner {
	if data == nil {
		return nil
	}

	return &entity.Owner{
		ID:            data.ID,
		Nombre:        data.Nombre,
		Apellido:      data.Apellido,
		Email:         data.Email,
		Telefono:      data.Telefono,
		Direccion:     data.Direccion,
		Ciudad:        data.Ciudad,
		FechaCreacion: data.FechaCreacion,
	}
}

// fromOwnerDomain converts a domain Owner entity to a GORM OwnerModel.
func fromOwnerDomain(data *entity.Owner) *model.OwnerModel {
	if data == nil {
		return nil
	}

	return &model.OwnerModel{
		ID:        data.ID,
		Nombre:    data.Nombre,
		Apellido:  data.Apellido,
		Email:     data.Email,
		Telefono:  data.Telefono,
		Direccion: data.Direccion,
		Ciudad:    data.Ciudad,
	}
}
