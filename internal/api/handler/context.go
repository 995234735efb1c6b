package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/catatlas/cat-registry/internal/core/domain"
)

// currentIdentity extracts the identity injected by the Auth middleware.
// Handlers behind Auth get a guaranteed non-nil identity; public handlers
// that call this without the middleware receive a 401.
func currentIdentity(c echo.Context) (*domain.Identity, error) {
	identity, ok := c.Get("identity").(*domain.Identity)
	if !ok || identity.ID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
