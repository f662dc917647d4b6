package employee

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the requested employee does not exist.
var ErrNotFound = errors.New("employee not found")

type Repository interface {
	Count(ctx context.Context) (int64, error)
	GetAll(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	// Create assigns an identifier and prepends the record.
	Create(ctx context.Context, data Employee) (Employee, error)
	// Update replaces the record in place, preserving its list position.
	// Returns ErrNotFound when no record carries the identifier.
	Update(ctx context.Context, data Employee) (Employee, error)
	Delete(ctx context.Context, id int64) error
	// ResetToDefault discards all records and restores the seed dataset.
	ResetToDefault(ctx context.Context) ([]Employee, error)
	// Clear discards all records, leaving an empty directory.
	Clear(ctx context.Context) error
}
