package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/catatlas/cat-registry/internal/core/domain"
	"github.com/catatlas/cat-registry/internal/core/ports"
)

// CatService orchestrates cat record use cases: validate input, run the
// authorization rules, apply the change through the repository, and shape
// the result.
type CatService struct {
	repo   ports.CatRepository
	users  ports.UserRepository
	cache  ports.AreaCache
	logger zerolog.Logger
}

// NewCatService builds a CatService. cache may be nil; area queries then go
// straight to the store.
func NewCatService(repo ports.CatRepository, users ports.UserRepository, cache ports.AreaCache, logger zerolog.Logger) *CatService {
	return &CatService{repo: repo, users: users, cache: cache, logger: logger}
}

// Create persists a new cat owned by the caller. The draft must already
// carry the media pipeline result (stored filename + derived location).
func (s *CatService) Create(ctx context.Context, identity *domain.Identity, input ports.CreateCatInput) (*domain.Cat, error) {
	if err := domain.Authorize(identity, domain.ActionCreate, ""); err != nil {
		return nil, err
	}
	if input.Filename == "" {
		return nil, domain.ErrMediaRequired
	}
	if input.CatName == "" || input.Weight <= 0 || input.Birthdate.IsZero() {
		return nil, fmt.Errorf("%w: cat_name, weight and birthdate are required", domain.ErrValidation)
	}
	if !input.Location.Valid() {
		return nil, fmt.Errorf("%w: location out of range", domain.ErrValidation)
	}

	// The owner reference must point at an existing account.
	owner, err := s.users.FindByID(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve owner: %w", err)
	}

	cat := &domain.Cat{
		CatName:   input.CatName,
		Weight:    input.Weight,
		Filename:  input.Filename,
		Birthdate: input.Birthdate,
		Location:  input.Location,
		OwnerID:   owner.ID,
	}

	created, err := s.repo.Insert(ctx, cat)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create cat")
		return nil, err
	}
	created.Owner = owner.Summary()

	s.logger.Info().Str("cat_id", created.ID).Str("owner_id", owner.ID).Msg("cat created")
	return created, nil
}

// GetByID returns a single cat with its owner expanded. Reads are public.
func (s *CatService) GetByID(ctx context.Context, id string) (*domain.Cat, error) {
	return s.repo.FindByID(ctx, id)
}

// ListAll returns every cat with owners expanded. Reads are public.
func (s *CatService) ListAll(ctx context.Context) ([]domain.Cat, error) {
	return s.repo.FindAll(ctx)
}

// ListByOwner returns the caller's own cats.
func (s *CatService) ListByOwner(ctx context.Context, identity *domain.Identity) ([]domain.Cat, error) {
	if err := domain.Authorize(identity, domain.ActionReadOwn, ""); err != nil {
		return nil, err
	}
	return s.repo.FindByOwner(ctx, identity.ID)
}

// ListByArea parses the two corner strings, builds the containment ring and
// queries the store. Results for identical corners are served from the cache
// for a short window; a failing cache never fails the query.
func (s *CatService) ListByArea(ctx context.Context, topRight, bottomLeft string) ([]domain.Cat, error) {
	tr, err := domain.ParsePoint(topRight)
	if err != nil {
		return nil, err
	}
	bl, err := domain.ParsePoint(bottomLeft)
	if err != nil {
		return nil, err
	}

	polygon, err := domain.RectangleBounds(tr, bl)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		cats, hit, cacheErr := s.cache.Get(ctx, topRight, bottomLeft)
		if cacheErr != nil {
			s.logger.Warn().Err(cacheErr).Msg("area cache read failed, querying store")
		} else if hit {
			return cats, nil
		}
	}

	cats, err := s.repo.FindWithinPolygon(ctx, polygon)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cacheErr := s.cache.Set(ctx, topRight, bottomLeft, cats); cacheErr != nil {
			s.logger.Warn().Err(cacheErr).Msg("area cache write failed")
		}
	}
	return cats, nil
}

// UpdateOwned applies an owner patch restricted to cat_name, weight and
// birthdate. The record is fetched first so ownership is checked against the
// stored owner reference; a concurrent delete between the check and the
// update surfaces as ErrCatNotFound.
func (s *CatService) UpdateOwned(ctx context.Context, identity *domain.Identity, id string, patch ports.UpdateCatInput) (*domain.Cat, error) {
	if patch.Empty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	cat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(identity, domain.ActionUpdateOwn, cat.OwnerID); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, ports.CatUpdateFields{
		CatName:   patch.CatName,
		Weight:    patch.Weight,
		Birthdate: patch.Birthdate,
	})
}

// UpdateAsAdmin applies a patch that may touch any field, including the
// owner reference, location and stored filename.
func (s *CatService) UpdateAsAdmin(ctx context.Context, identity *domain.Identity, id string, patch ports.AdminUpdateCatInput) (*domain.Cat, error) {
	if err := domain.Authorize(identity, domain.ActionUpdateAny, ""); err != nil {
		return nil, err
	}
	if patch.Location != nil && !patch.Location.Valid() {
		return nil, fmt.Errorf("%w: location out of range", domain.ErrValidation)
	}
	if patch.OwnerID != nil {
		if _, err := s.users.FindByID(ctx, *patch.OwnerID); err != nil {
			return nil, fmt.Errorf("resolve new owner: %w", err)
		}
	}

	updated, err := s.repo.Update(ctx, id, ports.CatUpdateFields{
		CatName:   patch.CatName,
		Weight:    patch.Weight,
		Birthdate: patch.Birthdate,
		OwnerID:   patch.OwnerID,
		Location:  patch.Location,
		Filename:  patch.Filename,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("cat_id", id).Str("admin_id", identity.ID).Msg("cat updated by admin")
	return updated, nil
}

// DeleteOwned removes the caller's own cat and returns the deleted snapshot.
// Calling it again for the same id yields ErrCatNotFound.
func (s *CatService) DeleteOwned(ctx context.Context, identity *domain.Identity, id string) (*domain.Cat, error) {
	cat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(identity, domain.ActionDeleteOwn, cat.OwnerID); err != nil {
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("cat_id", id).Str("owner_id", identity.ID).Msg("cat deleted")
	return deleted, nil
}

// DeleteAsAdmin removes any cat.
func (s *CatService) DeleteAsAdmin(ctx context.Context, identity *domain.Identity, id string) (*domain.Cat, error) {
	if err := domain.Authorize(identity, domain.ActionDeleteAny, ""); err != nil {
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("cat_id", id).Str("admin_id", identity.ID).Msg("cat deleted by admin")
	return deleted, nil
}
