package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/catatlas/cat-registry/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp["error"]
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"cat not found", domain.ErrCatNotFound, http.StatusNotFound},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized},
		{"not authorized", domain.ErrNotAuthorized, http.StatusForbidden},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid bounds", domain.ErrInvalidBounds, http.StatusBadRequest},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"media required", domain.ErrMediaRequired, http.StatusBadRequest},
		{"no fields", domain.ErrNoFieldsToUpdate, http.StatusBadRequest},
		{"unsupported media", domain.ErrUnsupportedMedia, http.StatusUnsupportedMediaType},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("code = %d, want %d", code, tc.code)
			}
			if msg == "" {
				t.Error("empty error message")
			}
		})
	}
}

// Wrapped domain errors must resolve the same way the bare sentinel does.
func TestErrorHandler_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("resolve owner: %w", domain.ErrUserNotFound)
	code, _ := renderError(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("code = %d, want 404", code)
	}
}

// Missing records and permission failures must stay distinguishable.
func TestErrorHandler_NotFoundVsForbidden(t *testing.T) {
	notFound, _ := renderError(t, domain.ErrCatNotFound)
	forbidden, _ := renderError(t, domain.ErrNotAuthorized)
	if notFound == forbidden {
		t.Fatalf("404 and 403 collapsed into %d", notFound)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", code)
	}
	if msg != "missing authorization header" {
		t.Errorf("msg = %q", msg)
	}
}

func TestErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	code, msg := renderError(t, errors.New("connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", code)
	}
	if msg != "internal server error" {
		t.Errorf("internal cause leaked: %q", msg)
	}
}
