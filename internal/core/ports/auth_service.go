package ports

import (
	"context"

	"github.com/catatlas/cat-registry/internal/core/domain"
)

// AuthService verifies credentials and issues bearer tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
