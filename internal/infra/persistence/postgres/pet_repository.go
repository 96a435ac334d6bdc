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

// petRepository implements the repository.PetRepository interface.
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(db *gorm.DB) repository.PetRepository {
	return &petRepository{
		db: db,
	}
}

// CreatePet persists a new pet record.
func (repo *petRepository) CreatePet(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	if err := repo.db.WithContext(ctx).Create(petM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPetOwnerMissing
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pet")
	}

	pet.ID = petM.ID
	pet.FechaCreacion = petM.FechaCreacion

	return nil
}

// FindPetByID returns the pet with the given id, including its owner.
func (repo *petRepository) FindPetByID(ctx context.Context, id int64) (*entity.Pet, error) {
	var petM model.PetModel

	if err := repo.db.WithContext(ctx).
		Preload("Dueno").
		First(&petM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet")
	}

	return toPetDomain(&petM), nil
}

// FindAllPets returns every pet, owners included, ordered by id.
func (repo *petRepository) FindAllPets(ctx context.Context) ([]*entity.Pet, error) {
	var petModels []*model.PetModel

	if err := repo.db.WithContext(ctx).
		Preload("Dueno").
		Order("id ASC").
		Find(&petModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pets")
	}

	pets := make([]*entity.Pet, 0, len(petModels))
	for _, petM := range petModels {
		pets = append(pets, toPetDomain(petM))
	}

	return pets, nil
}

// UpdatePet saves the full state of an existing pet.
func (repo *petRepository) UpdatePet(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	result := repo.db.WithContext(ctx).
		Model(&model.PetModel{}).
		Where("id = ?", pet.ID).
		Updates(map[string]any{
			"nombre":           petM.Nombre,
			"peso":             petM.Peso,
			"edad":             petM.Edad,
			"especie":          petM.Especie,
			"raza":             petM.Raza,
			"imagen":           petM.Imagen,
			"fecha_nacimiento": petM.FechaNacimiento,
			"dueno_id":         petM.DuenoID,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrPetOwnerMissing
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update pet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPetNotFound
	}

	return nil
}

// DeletePet removes a pet. Location rows cascade at the database level.
func (repo *petRepository) DeletePet(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.PetModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete pet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPetNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPetDomain converts a GORM PetModel to a domain Pet entity.
func toPetDomain(data *model.PetModel) *entity.Pet {
	if data == nil {
		return nil
	}

	pet := &entity.Pet{
		ID:              data.ID,
		Nombre:          data.Nombre,
		Peso:            data.Peso,
		Edad:            data.Edad,
		Especie:         data.Especie,
		Raza:            data.Raza,
		Imagen:          data.Imagen,
		FechaNacimiento: data.FechaNacimiento,
		FechaCreacion:   data.FechaCreacion,
		DuenoID:         data.DuenoID,
	}
	if data.Dueno != nil {
		pet.DuenoInfo = toOwnerDomain(data.Dueno)
	}

	return pet
}

// fromPetDomain converts a domain Pet entity to a GORM PetModel.
func fromPetDomain(data *entity.Pet) *model.PetModel {
	if data == nil {
		return nil
	}

	return &model.PetModel{
		ID:              data.ID,
		Nombre:          data.Nombre,
		Peso:            data.Peso,
		Edad:            data.Edad,
		Especie:         data.Especie,
		Raza:            data.Raza,
		Imagen:          data.Imagen,
		FechaNacimiento: data.FechaNacimiento,
		DuenoID:         data.DuenoID,
	}
}
