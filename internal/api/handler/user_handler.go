package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/catatlas/cat-registry/internal/core/ports"
)

// UserHandler handles HTTP requests for account operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /v1/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   userProfileResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /v1/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userProfileResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	profile, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Register handles POST /v1/users — signup.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "Signup details"
// @Success      201   {object}  userMessageResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, userMessageResponse{Message: "User added", Data: profile})
}

// UpdateSelf handles PUT /v1/users — always targets the caller's account.
//
// @Summary      Update the caller's account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  userMessageResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/users [put]
func (h *UserHandler) UpdateSelf(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.UpdateSelf(c.Request().Context(), identity, ports.UpdateUserInput{
		UserName: req.UserName,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userMessageResponse{Message: "User updated", Data: profile})
}

// DeleteSelf handles DELETE /v1/users.
//
// @Summary      Delete the caller's account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userMessageResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/users [delete]
func (h *UserHandler) DeleteSelf(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.DeleteSelf(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userMessageResponse{Message: "User deleted", Data: deleted})
}

// Introspect handles GET /v1/users/token — echoes the verified identity.
//
// @Summary      Inspect the caller's token
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userProfileResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/users/token [get]
func (h *UserHandler) Introspect(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Introspect(identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
