package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	User         UserResponse `json:"user"`
}

type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3"`
	Name     string  `json:"name"     validate:"required"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     string  `json:"role"     validate:"required,oneof=admin cashier"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role"     validate:"omitempty,oneof=admin cashier"`
	Active   *bool   `json:"active"`
}

type UserResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	Role     string  `json:"role"`
	Active   bool    `json:"active"`
}
