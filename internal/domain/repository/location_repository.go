// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"canpestre/internal/domain/entity"

	"github.com/pkg/errors"
)

// MaxLocationPageSize caps every location query; clients cannot raise it.
const MaxLocationPageSize = 100

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when no location matches a lookup.
	ErrLocationNotFound = errors.New("location not found")
	// ErrLocationPetMissing is returned when an insert references a pet id
	// that does not exist (foreign key violation at the store boundary).
	ErrLocationPetMissing = errors.New("location references missing pet")
)

// LocationFilter selects location rows. Zero-value fields are ignored.
type LocationFilter struct {
	// PetID restricts results to one pet.
	PetID *int64
	// Since keeps rows with created_at >= Since (time window).
	Since *time.Time
	// AfterID keeps rows with id > AfterID (forward cursor). When set,
	// results are ordered ascending by id so the cursor is stable.
	AfterID *int64
	// Limit caps the page size; normalized to MaxLocationPageSize.
	Limit int
}

// Normalize clamps the page size into (0, MaxLocationPageSize].
func (f LocationFilter) Normalize() LocationFilter {
	if f.Limit <= 0 || f.Limit > MaxLocationPageSize {
		f.Limit = MaxLocationPageSize
	}

	return f
}

// Ascending reports whether results should be ordered oldest-first. Cursor
// paging needs ascending ids; everything else is most-recent-first.
func (f LocationFilter) Ascending() bool {
	return f.AfterID != nil
}

// LocationRepository defines the interface for location persistence.
type LocationRepository interface {
	// CreateLocation appends a new sample. The store assigns id, created_at
	// and updated_at. Referencing an unknown pet fails with
	// ErrLocationPetMissing.
	CreateLocation(ctx context.Context, location *entity.Location) error

	// FindLocations returns rows matching the filter, capped at
	// MaxLocationPageSize, ordered per filter.Ascending.
	FindLocations(ctx context.Context, filter LocationFilter) ([]*entity.Location, error)

	// FindLatestByPet returns the most recent sample for a pet, or
	// ErrLocationNotFound.
	FindLatestByPet(ctx context.Context, petID int64) (*entity.Location, error)

	// DeleteOlderThan hard-deletes every row with created_at strictly before
	// cutoff and returns the number of rows removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
