package impl

import (
	"context"

	"canpestre/internal/domain/entity"
	"canpestre/internal/domain/repository"
	"canpestre/internal/usecase"
)

type ownerService struct {
	ownerRepo repository.OwnerRepository
}

// NewOwnerService creates a new owner service instance
func NewOwnerService(ownerRepo repository.OwnerRepository) usecase.OwnerUsecase {
	return &ownerService{
		ownerRepo: ownerRepo,
	}
}

// CreateOwner registers a new owner
func (s *ownerService) CreateOwner(ctx context.Context, input *usecase.OwnerInput) (*entity.Owner, error) {
	owner := &entity.Owner{
		Nombre:    input.Nombre,
		Apellido:  input.Apellido,
		Email:     input.Email,
		Telefono:  input.Telefono,
		Direccion: input.Direccion,
		Ciudad:    input.Ciudad,
	}

	if err := s.ownerRepo.CreateOwner(ctx, owner); err != nil {
		return nil, err
	}

	return owner, nil
}

// GetOwner retrieves a single owner by id
func (s *ownerService) GetOwner(ctx context.Context, id int64) (*entity.Owner, error) {
	owner, err := s.ownerRepo.FindOwnerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return owner, nil
}

// ListOwners retrieves all owners
func (s *ownerService) ListOwners(ctx context.Context) ([]*entity.Owner, error) {
	owners, err := s.ownerRepo.FindAllOwners(ctx)
	if err != nil {
		return nil, err
	}

	return owners, nil
}

// UpdateOwner replaces the mutable fields of an existing owner
func (s *ownerService) UpdateOwner(ctx context.Context, id int64, input *usecase.OwnerInput) (*entity.Owner, error) {
	owner := &entity.Owner{
		ID:        id,
		Nombre:    input.Nombre,
		Apellido:  input.Apellido,
		Email:     input.Email,
		Telefono:  input.Telefono,
		Direccion: input.Direccion,
		Ciudad:    input.Ciudad,
	}

	if err := s.ownerRepo.UpdateOwner(ctx, owner); err != nil {
		return nil, err
	}

	return s.ownerRepo.FindOwnerByID(ctx, id)
}

// DeleteOwner removes an owner and, through cascades, its pets
func (s *ownerService) DeleteOwner(ctx context.Context, id int64) error {
	return s.ownerRepo.DeleteOwner(ctx, id)
}
