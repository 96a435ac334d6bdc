package repository

import (
	"context"

	"canpestre/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for pet persistence.
var (
	// ErrPetNotFound is returned when a pet is not found.
	ErrPetNotFound = errors.New("pet not found")
	// ErrPetOwnerMissing is returned when a pet references an owner id that
	// does not exist.
	ErrPetOwnerMissing = errors.New("pet references missing owner")
)

// PetRepository defines the interface for pet-related database operations.
type PetRepository interface {
	// CreatePet persists a new pet and fills in generated fields.
	CreatePet(ctx context.Context, pet *entity.Pet) error

	// FindPetByID retrieves a pet by id, with owner info attached.
	FindPetByID(ctx context.Context, id int64) (*entity.Pet, error)

	// FindAllPets retrieves every pet, with owner info attached.
	FindAllPets(ctx context.Context) ([]*entity.Pet, error)

	// UpdatePet overwrites the mutable fields of an existing pet.
	UpdatePet(ctx context.Context, pet *entity.Pet) error

	// DeletePet removes a pet; its locations cascade away with it.
	DeletePet(ctx context.Context, id int64) error
}
