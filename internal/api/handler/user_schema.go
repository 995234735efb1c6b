package handler

// registerUserRequest is the signup payload. A "role" key in the raw body is
// simply ignored; accounts always start as plain users.
type registerUserRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
}

type updateUserRequest struct {
	UserName *string `json:"user_name,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}

type userProfileResponse struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

type userMessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
