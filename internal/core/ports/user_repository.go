package ports

import (
	"context"

	"github.com/catatlas/cat-registry/internal/core/domain"
)

// UserUpdateFields carries the self-service patch; nil members are untouched.
type UserUpdateFields struct {
	UserName *string
	Email    *string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, fields UserUpdateFields) (*domain.User, error)
	// Delete removes the account and returns the deleted snapshot.
	Delete(ctx context.Context, id string) (*domain.User, error)
}
