package ports

import (
	"context"

	"github.com/catatlas/cat-registry/internal/core/domain"
)

// RegisterUserInput is the signup draft. Role is deliberately absent: every
// account is created with the user role regardless of payload.
type RegisterUserInput struct {
	UserName string
	Email    string
	Password string
}

// UserProfile is the public projection of an account: no hash, no role.
type UserProfile struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

// UpdateUserInput is the self-service patch. Nil fields are not touched.
type UpdateUserInput struct {
	UserName *string
	Email    *string
}

// DeletedUser is the narrowed snapshot returned after self-deletion.
type DeletedUser struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

// UserService defines the use-case operations for accounts.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*UserProfile, error)
	GetByID(ctx context.Context, id string) (*UserProfile, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	// UpdateSelf always targets the caller's own account.
	UpdateSelf(ctx context.Context, identity *domain.Identity, patch UpdateUserInput) (*UserProfile, error)
	DeleteSelf(ctx context.Context, identity *domain.Identity) (*DeletedUser, error)
	// Introspect echoes the caller's identity with credential fields
	// stripped; it never touches the store.
	Introspect(identity *domain.Identity) (*UserProfile, error)
}
