package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrValidation = errors.New("invalid input")

// User models a registered account. Role is assigned at signup and never
// changed through this API; the bcrypt hash never leaves the process.
type User struct {
	ID           string    `json:"id"`
	UserName     string    `json:"user_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Summary returns the public projection used when a user appears as the
// owner of another record.
func (u *User) Summary() OwnerSummary {
	return OwnerSummary{ID: u.ID, UserName: u.UserName, Email: u.Email}
}
