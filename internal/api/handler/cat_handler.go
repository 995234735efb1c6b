package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/catatlas/cat-registry/internal/api/metrics"
	"github.com/catatlas/cat-registry/internal/core/domain"
	"github.com/catatlas/cat-registry/internal/core/ports"
)

// uploadField is the multipart form field carrying the cat photo.
const uploadField = "cat"

// CatHandler handles HTTP requests for cat records.
type CatHandler struct {
	service  ports.CatService
	pipeline ports.MediaPipeline
}

func NewCatHandler(service ports.CatService, pipeline ports.MediaPipeline) *CatHandler {
	return &CatHandler{service: service, pipeline: pipeline}
}

// List handles GET /v1/cats.
//
// @Summary      List all cats
// @Tags         cats
// @Produce      json
// @Success      200  {array}   catResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/cats [get]
func (h *CatHandler) List(c echo.Context) error {
	cats, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCatListResponse(cats))
}

// Get handles GET /v1/cats/:id.
//
// @Summary      Get a cat by id
// @Tags         cats
// @Produce      json
// @Param        id   path      string  true  "Cat id"
// @Success      200  {object}  catResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/cats/{id} [get]
func (h *CatHandler) Get(c echo.Context) error {
	cat, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCatResponse(cat))
}

// ListByArea handles GET /v1/cats/area?topRight=lat,lng&bottomLeft=lat,lng.
//
// @Summary      List cats inside a map viewport
// @Tags         cats
// @Produce      json
// @Param        topRight    query     string  true  "Top-right corner as \"lat,lng\""
// @Param        bottomLeft  query     string  true  "Bottom-left corner as \"lat,lng\""
// @Success      200         {array}   catResponse
// @Failure      400         {object}  errorResponse
// @Router       /v1/cats/area [get]
func (h *CatHandler) ListByArea(c echo.Context) error {
	topRight := c.QueryParam("topRight")
	bottomLeft := c.QueryParam("bottomLeft")

	start := time.Now()
	cats, err := h.service.ListByArea(c.Request().Context(), topRight, bottomLeft)
	metrics.AreaQueryDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AreaQueriesTotal.WithLabelValues("invalid").Inc()
		return err
	}

	metrics.AreaQueriesTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, toCatListResponse(cats))
}

// ListOwn handles GET /v1/cats/user — the caller's own cats.
//
// @Summary      List the caller's cats
// @Tags         cats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   catResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/cats/user [get]
func (h *CatHandler) ListOwn(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	cats, err := h.service.ListByOwner(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCatListResponse(cats))
}

// Create handles POST /v1/cats: multipart photo upload plus the cat draft.
//
// @Summary      Create a cat
// @Tags         cats
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        cat        formData  file    true  "Cat photo (EXIF GPS becomes the location)"
// @Param        cat_name   formData  string  true  "Name"
// @Param        weight     formData  number  true  "Weight in kg"
// @Param        birthdate  formData  string  true  "Birthdate (2006-01-02)"
// @Success      201  {object}  catMessageResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      415  {object}  errorResponse
// @Router       /v1/cats [post]
func (h *CatHandler) Create(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var form createCatForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	birthdate, err := parseBirthdate(form.Birthdate)
	if err != nil {
		return err
	}

	upload, err := readUpload(c)
	if err != nil {
		return err
	}

	media, err := h.pipeline.Ingest(c.Request().Context(), *upload)
	if err != nil {
		metrics.MediaIngestsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.MediaIngestsTotal.WithLabelValues("ok").Inc()

	cat, err := h.service.Create(c.Request().Context(), identity, ports.CreateCatInput{
		CatName:   form.CatName,
		Weight:    form.Weight,
		Birthdate: birthdate,
		Filename:  media.Filename,
		Location:  media.Location,
	})
	if err != nil {
		return err
	}

	metrics.CatsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, catMessageResponse{Message: "Cat added", Data: toCatResponse(cat)})
}

// Update handles PUT /v1/cats/:id — the owner patch.
//
// @Summary      Update the caller's cat
// @Tags         cats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Cat id"
// @Param        body  body      updateCatRequest  true  "Fields to update"
// @Success      200   {object}  catMessageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/cats/{id} [put]
func (h *CatHandler) Update(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req updateCatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cat, err := h.service.UpdateOwned(c.Request().Context(), identity, c.Param("id"), ports.UpdateCatInput{
		CatName:   req.CatName,
		Weight:    req.Weight,
		Birthdate: req.Birthdate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catMessageResponse{Message: "Cat modified", Data: toCatResponse(cat)})
}

// Delete handles DELETE /v1/cats/:id — owner-only deletion.
//
// @Summary      Delete the caller's cat
// @Tags         cats
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Cat id"
// @Success      200  {object}  catMessageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/cats/{id} [delete]
func (h *CatHandler) Delete(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	cat, err := h.service.DeleteOwned(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catMessageResponse{Message: "Cat deleted", Data: toCatResponse(cat)})
}

// AdminUpdate handles PUT /v1/cats/admin/:id — any field may change.
//
// @Summary      Update any cat (admin)
// @Tags         cats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Cat id"
// @Param        body  body      adminUpdateCatRequest  true  "Fields to update"
// @Success      200   {object}  catMessageResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/cats/admin/{id} [put]
func (h *CatHandler) AdminUpdate(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req adminUpdateCatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := ports.AdminUpdateCatInput{
		UpdateCatInput: ports.UpdateCatInput{
			CatName:   req.CatName,
			Weight:    req.Weight,
			Birthdate: req.Birthdate,
		},
		OwnerID:  req.Owner,
		Filename: req.Filename,
	}
	if req.Location != nil {
		patch.Location = &domain.Point{Lat: req.Location.Lat, Lng: req.Location.Lng}
	}

	cat, err := h.service.UpdateAsAdmin(c.Request().Context(), identity, c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catMessageResponse{Message: "Cat modified", Data: toCatResponse(cat)})
}

// AdminDelete handles DELETE /v1/cats/admin/:id.
//
// @Summary      Delete any cat (admin)
// @Tags         cats
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Cat id"
// @Success      200  {object}  catMessageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/cats/admin/{id} [delete]
func (h *CatHandler) AdminDelete(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	cat, err := h.service.DeleteAsAdmin(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catMessageResponse{Message: "Cat deleted", Data: toCatResponse(cat)})
}

// readUpload pulls the photo out of the multipart form.
func readUpload(c echo.Context) (*ports.MediaUpload, error) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		return nil, domain.ErrMediaRequired
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	return &ports.MediaUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// parseBirthdate accepts a plain date or a full RFC 3339 timestamp and
// rejects dates in the future.
func parseBirthdate(s string) (time.Time, error) {
	bd, err := time.Parse("2006-01-02", s)
	if err != nil {
		bd, err = time.Parse(time.RFC3339, s)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: birthdate must be 2006-01-02 or RFC 3339", domain.ErrValidation)
	}
	if bd.After(time.Now()) {
		return time.Time{}, fmt.Errorf("%w: birthdate cannot be in the future", domain.ErrValidation)
	}
	return bd, nil
}
