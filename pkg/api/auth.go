package api

// User is the public view of an account.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// Tokens is a JWT access and refresh pair.
type Tokens struct {
	Access           string `json:"access"`
	Refresh          string `json:"refresh"`
	AccessExpiresAt  int64  `json:"access_expires_at"`
	RefreshExpiresAt int64  `json:"refresh_expires_at"`
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
}

type RegisterResponse struct {
	User   *User  `json:"user"`
	Tokens Tokens `json:"tokens"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User   *User  `json:"user"`
	Tokens Tokens `json:"tokens"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

type RefreshResponse struct {
	Access          string `json:"access"`
	AccessExpiresAt int64  `json:"access_expires_at"`
}

type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

type LogoutResponse struct{}

type CurrentUserRequest struct{}

type CurrentUserResponse struct {
	User *User `json:"user"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type ChangePasswordResponse struct{}

// DeleteAccountRequest confirms the deletion with the current password.
type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type DeleteAccountResponse struct{}
