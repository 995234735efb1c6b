package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// createCatForm is the multipart form accompanying the photo upload.
// Filename and location never come from the client; the media pipeline
// derives them from the stored file. Birthdate accepts "2006-01-02" or
// RFC 3339 and must not be in the future.
type createCatForm struct {
	CatName   string  `form:"cat_name"  validate:"required"`
	Weight    float64 `form:"weight"    validate:"required,gt=0"`
	Birthdate string  `form:"birthdate" validate:"required"`
}

// updateCatRequest is the owner patch: only these three fields may change.
type updateCatRequest struct {
	CatName   *string    `json:"cat_name,omitempty"`
	Weight    *float64   `json:"weight,omitempty"   validate:"omitempty,gt=0"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
}

type locationRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// adminUpdateCatRequest may additionally reassign owner, location and the
// stored filename.
type adminUpdateCatRequest struct {
	CatName   *string          `json:"cat_name,omitempty"`
	Weight    *float64         `json:"weight,omitempty"   validate:"omitempty,gt=0"`
	Birthdate *time.Time       `json:"birthdate,omitempty"`
	Owner     *string          `json:"owner,omitempty"`
	Location  *locationRequest `json:"location,omitempty"`
	Filename  *string          `json:"filename,omitempty"`
}

type ownerResponse struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

type locationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type catResponse struct {
	ID        string           `json:"id"`
	CatName   string           `json:"cat_name"`
	Weight    float64          `json:"weight"`
	Filename  string           `json:"filename"`
	Birthdate time.Time        `json:"birthdate"`
	Location  locationResponse `json:"location"`
	Owner     *ownerResponse   `json:"owner,omitempty"`
}

type catMessageResponse struct {
	Message string      `json:"message"`
	Data    catResponse `json:"data"`
}
