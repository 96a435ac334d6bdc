package usecase

import (
	"context"
	"time"

	"canpestre/internal/domain/entity"
)

// PetInput represents the input for creating or updating a pet. Imagen is the
// photo as a base64 string, kept opaque end to end.
type PetInput struct {
	Nombre          string     `json:"nombre" validate:"required,max=100"`
	Peso            float64    `json:"peso" validate:"gte=0"`
	Edad            int        `json:"edad" validate:"gte=0"`
	Especie         string     `json:"especie" validate:"max=100"`
	Raza            string     `json:"raza" validate:"max=100"`
	Imagen          string     `json:"imagen"`
	FechaNacimiento *time.Time `json:"fecha_nacimiento"`
	DuenoID         int64      `json:"dueño" validate:"required,gt=0"`
}

// PetUsecase defines the interface for pet management use cases
type PetUsecase interface {
	// CreatePet registers a new pet under an existing owner
	CreatePet(ctx context.Context, input *PetInput) (*entity.Pet, error)

	// GetPet retrieves a single pet by id, owner info included
	GetPet(ctx context.Context, id int64) (*entity.Pet, error)

	// ListPets retrieves all pets, owner info included
	ListPets(ctx context.Context) ([]*entity.Pet, error)

	// UpdatePet replaces the mutable fields of an existing pet
	UpdatePet(ctx context.Context, id int64, input *PetInput) (*entity.Pet, error)

	// DeletePet removes a pet and, through cascades, its locations
	DeletePet(ctx context.Context, id int64) error
}
