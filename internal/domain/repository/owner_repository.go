package repository

import (
	"context"

	"canpestre/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrOwnerNotFound is returned when an owner is not found.
var ErrOwnerNotFound = errors.New("owner not found")

// OwnerRepository defines the interface for owner-related database operations.
type OwnerRepository interface {
	// CreateOwner persists a new owner and fills in generated fields.
	CreateOwner(ctx context.Context, owner *entity.Owner) error

	// FindOwnerByID retrieves an owner by id.
	FindOwnerByID(ctx context.Context, id int64) (*entity.Owner, error)

	// FindAllOwners retrieves every owner.
	FindAllOwners(ctx context.Context) ([]*entity.Owner, error)

	// UpdateOwner overwrites the mutable fields of an existing owner.
	UpdateOwner(ctx context.Context, owner *entity.Owner) error

	// DeleteOwner removes an owner; its pets (and their locations) cascade.
	DeleteOwner(ctx context.Context, id int64) error
}
