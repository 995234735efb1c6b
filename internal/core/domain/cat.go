package domain

import (
	"errors"
	"time"
)

var ErrCatNotFound = errors.New("cat not found")
var ErrMediaRequired = errors.New("no file uploaded")
var ErrUnsupportedMedia = errors.New("unsupported media type")
var ErrNoFieldsToUpdate = errors.New("no fields to update")

// OwnerSummary is the public view of a cat's owner embedded in responses.
type OwnerSummary struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

// Cat is the core aggregate: a geotagged record linked to its owning user.
// Filename and Location are fixed at creation by the media pipeline; only the
// admin update path may overwrite them afterwards.
type Cat struct {
	ID        string       `json:"id"`
	CatName   string       `json:"cat_name"`
	Weight    float64      `json:"weight"`
	Filename  string       `json:"filename"`
	Birthdate time.Time    `json:"birthdate"`
	Location  Point        `json:"location"`
	OwnerID   string       `json:"-"`
	Owner     OwnerSummary `json:"owner"`
	CreatedAt time.Time    `json:"created_at"`
}
