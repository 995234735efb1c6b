package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/catatlas/cat-registry/internal/core/domain"
	"github.com/catatlas/cat-registry/internal/core/ports"
)

// UserService implements account use cases. Signup always assigns the user
// role; nothing in the payload can escalate it.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates a new account with a bcrypt-hashed credential.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*ports.UserProfile, error) {
	if input.UserName == "" || input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: user_name, email and password are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		UserName:     input.UserName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return profileOf(created), nil
}

// GetByID returns the public projection of an account.
func (s *UserService) GetByID(ctx context.Context, id string) (*ports.UserProfile, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return profileOf(user), nil
}

// ListAll returns the stored records as-is. The hash stays out of JSON via
// the domain tag, but role remains visible; see DESIGN.md on this contract.
func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// UpdateSelf changes user_name and/or email on the caller's own account.
// The target is derived from the identity, never from a client-supplied id.
func (s *UserService) UpdateSelf(ctx context.Context, identity *domain.Identity, patch ports.UpdateUserInput) (*ports.UserProfile, error) {
	if identity == nil || identity.ID == "" {
		return nil, domain.ErrUnauthenticated
	}

	if patch.UserName == nil && patch.Email == nil {
		user, err := s.repo.FindByID(ctx, identity.ID)
		if err != nil {
			return nil, err
		}
		return profileOf(user), nil
	}

	updated, err := s.repo.Update(ctx, identity.ID, ports.UserUpdateFields{
		UserName: patch.UserName,
		Email:    patch.Email,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", identity.ID).Msg("user updated")
	return profileOf(updated), nil
}

// DeleteSelf removes the caller's own account. Cats owned by the account are
// left in place; their owner reference dangles (known gap, not cascaded).
func (s *UserService) DeleteSelf(ctx context.Context, identity *domain.Identity) (*ports.DeletedUser, error) {
	if identity == nil || identity.ID == "" {
		return nil, domain.ErrUnauthenticated
	}

	deleted, err := s.repo.Delete(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", identity.ID).Msg("user deleted")
	return &ports.DeletedUser{UserName: deleted.UserName, Email: deleted.Email}, nil
}

// Introspect echoes the verified identity with password and role stripped.
func (s *UserService) Introspect(identity *domain.Identity) (*ports.UserProfile, error) {
	if identity == nil || identity.ID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return &ports.UserProfile{ID: identity.ID, UserName: identity.UserName, Email: identity.Email}, nil
}

func profileOf(u *domain.User) *ports.UserProfile {
	return &ports.UserProfile{ID: u.ID, UserName: u.UserName, Email: u.Email}
}
