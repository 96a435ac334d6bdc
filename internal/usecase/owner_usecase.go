package usecase

import (
	"context"

	"canpestre/internal/domain/entity"
)

// OwnerInput represents the input for creating or updating an owner.
type OwnerInput struct {
	Nombre    string `json:"nombre" validate:"required,max=100"`
	Apellido  string `json:"apellido" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Telefono  string `json:"telefono" validate:"max=100"`
	Direccion string `json:"direccion" validate:"max=100"`
	Ciudad    string `json:"ciudad" validate:"max=100"`
}

// OwnerUsecase defines the interface for owner management use cases
type OwnerUsecase interface {
	// CreateOwner registers a new owner
	CreateOwner(ctx context.Context, input *OwnerInput) (*entity.Owner, error)

	// GetOwner retrieves a single owner by id
	GetOwner(ctx context.Context, id int64) (*entity.Owner, error)

	// ListOwners retrieves all owners
	ListOwners(ctx context.Context) ([]*entity.Owner, error)

	// UpdateOwner replaces the mutable fields of an existing owner
	UpdateOwner(ctx context.Context, id int64, input *OwnerInput) (*entity.Owner, error)

	// DeleteOwner removes an owner and, through cascades, its pets
	DeleteOwner(ctx context.Context, id int64) error
}
