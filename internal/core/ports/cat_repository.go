package ports

import (
	"context"
	"time"

	"github.com/catatlas/cat-registry/internal/core/domain"
)

// CatUpdateFields carries a set-field update; nil members are left untouched.
// The owner-facing path only ever populates CatName, Weight and Birthdate;
// the admin path may populate everything.
type CatUpdateFields struct {
	CatName   *string
	Weight    *float64
	Birthdate *time.Time
	OwnerID   *string
	Location  *domain.Point
	Filename  *string
}

// Empty reports whether the update would touch no fields at all.
func (f CatUpdateFields) Empty() bool {
	return f.CatName == nil && f.Weight == nil && f.Birthdate == nil &&
		f.OwnerID == nil && f.Location == nil && f.Filename == nil
}

// CatRepository defines persistence operations for cat records.
type CatRepository interface {
	Insert(ctx context.Context, cat *domain.Cat) (*domain.Cat, error)
	// FindByID retrieves a cat with its owner reference expanded.
	FindByID(ctx context.Context, id string) (*domain.Cat, error)
	FindAll(ctx context.Context) ([]domain.Cat, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Cat, error)
	// FindWithinPolygon returns cats whose location lies within or on the
	// boundary of the given ring (closed containment).
	FindWithinPolygon(ctx context.Context, polygon domain.Polygon) ([]domain.Cat, error)
	// Update applies the non-nil fields and returns the updated record, or
	// domain.ErrCatNotFound when the id no longer exists.
	Update(ctx context.Context, id string, fields CatUpdateFields) (*domain.Cat, error)
	// Delete removes the record and returns the deleted snapshot, or
	// domain.ErrCatNotFound when the id no longer exists.
	Delete(ctx context.Context, id string) (*domain.Cat, error)
}
