package models

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	UserName  string  `json:"userName"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Avatar    *string `json:"avatar"`
}

// LoginRequest is the payload of POST /api/auth/login. Either Email or
// UserName identifies the account; both fields are interchangeable.
type LoginRequest struct {
	Email    string `json:"email"`
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// Login returns whichever login identifier the client supplied,
// preferring the email.
func (r LoginRequest) Login() string {
	if r.Email != "" {
		return r.Email
	}
	return r.UserName
}

// ChangePasswordRequest is the payload of PATCH /api/auth/password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// CreateTaskRequest is the payload of POST /api/tasks. The owner is always
// taken from the authenticated context, never from the body.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
