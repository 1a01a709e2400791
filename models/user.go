package models

// Role is the coarse permission class of an authenticated user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the identity part of a session. It is persisted as JSON in the
// identity slot, so the tags follow the API's user object.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// Role derives the role from the admin flag.
func (u User) Role() Role {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// DisplayName returns the full name when known, otherwise the username.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// RegisterRequest is the body of POST /auth/register.
// ConfirmPassword never leaves the client.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,notblank"`
	FullName        string `json:"full_name" validate:"required,notblank"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"-" validate:"eqfield=Password"`
}

// RegisterResponse is the answer of POST /auth/register.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  *int64 `json:"user_id,omitempty"`
}

// LoginRequest holds the form fields of POST /auth/login.
type LoginRequest struct {
	Username string `validate:"required,notblank"`
	Password string `validate:"required"`
}

// LoginResponse is the answer of POST /auth/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user"`
}
