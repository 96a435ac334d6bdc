package impl

import (
	"context"

	"canpestre/internal/domain/entity"
	"canpestre/internal/domain/repository"
	"canpestre/internal/usecase"

	"github.com/pkg/errors"
)

type petService struct {
	petRepo      repository.PetRepository
	locationRepo repository.LocationRepository
}

// NewPetService creates a new pet service instance
func NewPetService(petRepo repository.PetRepository, locationRepo repository.LocationRepository) usecase.PetUsecase {
	return &petService{
		petRepo:      petRepo,
		locationRepo: locationRepo,
	}
}

// CreatePet registers a new pet under an existing owner
func (s *petService) CreatePet(ctx context.Context, input *usecase.PetInput) (*entity.Pet, error) {
	pet := &entity.Pet{
		Nombre:          input.Nombre,
		Peso:            input.Peso,
		Edad:            input.Edad,
		Especie:         input.Especie,
		Raza:            input.Raza,
		Imagen:          input.Imagen,
		FechaNacimiento: input.FechaNacimiento,
		DuenoID:         input.DuenoID,
	}

	if err := s.petRepo.CreatePet(ctx, pet); err != nil {
		return nil, err
	}

	// Re-read so the response carries owner info like every other pet read.
	return s.petRepo.FindPetByID(ctx, pet.ID)
}

// GetPet retrieves a single pet by id, owner info and latest location included
func (s *petService) GetPet(ctx context.Context, id int64) (*entity.Pet, error) {
	pet, err := s.petRepo.FindPetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.attachLatestLocation(ctx, pet); err != nil {
		return nil, err
	}

	return pet, nil
}

// ListPets retrieves all pets, owner info and latest location included
func (s *petService) ListPets(ctx context.Context) ([]*entity.Pet, error) {
	pets, err := s.petRepo.FindAllPets(ctx)
	if err != nil {
		return nil, err
	}

	for _, pet := range pets {
		if err := s.attachLatestLocation(ctx, pet); err != nil {
			return nil, err
		}
	}

	return pets, nil
}

// attachLatestLocation fills UltimaUbicacion; a pet with no samples is left
// as-is.
func (s *petService) attachLatestLocation(ctx context.Context, pet *entity.Pet) error {
	location, err := s.locationRepo.FindLatestByPet(ctx, pet.ID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil
		}

		return err
	}

	pet.UltimaUbicacion = location

	return nil
}

// UpdatePet replaces the mutable fields of an existing pet
func (s *petService) UpdatePet(ctx context.Context, id int64, input *usecase.PetInput) (*entity.Pet, error) {
	pet := &entity.Pet{
		ID:              id,
		Nombre:          input.Nombre,
		Peso:            input.Peso,
		Edad:            input.Edad,
		Especie:         input.Especie,
		Raza:            input.Raza,
		Imagen:          input.Imagen,
		FechaNacimiento: input.FechaNacimiento,
		DuenoID:         input.DuenoID,
	}

	if err := s.petRepo.UpdatePet(ctx, pet); err != nil {
		return nil, err
	}

	return s.petRepo.FindPetByID(ctx, id)
}

// DeletePet removes a pet and, through cascades, its locations
func (s *petService) DeletePet(ctx context.Context, id int64) error {
	return s.petRepo.DeletePet(ctx, id)
}
