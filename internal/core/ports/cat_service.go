package ports

import (
	"context"
	"time"

	"github.com/catatlas/cat-registry/internal/core/domain"
)

// CreateCatInput carries the client draft plus the media pipeline result.
// Filename and Location are attached by the upload step before the service
// is invoked; the client cannot set them directly.
type CreateCatInput struct {
	CatName   string
	Weight    float64
	Birthdate time.Time
	Filename  string
	Location  domain.Point
}

// UpdateCatInput is the owner-facing patch. Nil fields are not touched.
type UpdateCatInput struct {
	CatName   *string
	Weight    *float64
	Birthdate *time.Time
}

// Empty reports whether the patch carries no fields.
func (p UpdateCatInput) Empty() bool {
	return p.CatName == nil && p.Weight == nil && p.Birthdate == nil
}

// AdminUpdateCatInput is the admin-facing patch: any field may change,
// including the owner reference, location and stored filename.
type AdminUpdateCatInput struct {
	UpdateCatInput
	OwnerID  *string
	Location *domain.Point
	Filename *string
}

// CatService defines the use-case operations for cat records.
type CatService interface {
	Create(ctx context.Context, identity *domain.Identity, input CreateCatInput) (*domain.Cat, error)
	GetByID(ctx context.Context, id string) (*domain.Cat, error)
	ListAll(ctx context.Context) ([]domain.Cat, error)
	ListByOwner(ctx context.Context, identity *domain.Identity) ([]domain.Cat, error)
	// ListByArea takes the raw "lat,lng" viewport corner strings from the
	// query and returns every cat inside the rectangle, boundary included.
	ListByArea(ctx context.Context, topRight, bottomLeft string) ([]domain.Cat, error)
	UpdateOwned(ctx context.Context, identity *domain.Identity, id string, patch UpdateCatInput) (*domain.Cat, error)
	UpdateAsAdmin(ctx context.Context, identity *domain.Identity, id string, patch AdminUpdateCatInput) (*domain.Cat, error)
	DeleteOwned(ctx context.Context, identity *domain.Identity, id string) (*domain.Cat, error)
	DeleteAsAdmin(ctx context.Context, identity *domain.Identity, id string) (*domain.Cat, error)
}
