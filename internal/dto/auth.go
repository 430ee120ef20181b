package dto

// LoginRequest defines the credentials for a login attempt.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the access token and the signed-in profile.
type LoginResponse struct {
	Token string             `json:"token"`
	User  TeamMemberResponse `json:"user"`
}

// LogoutResponse acknowledges an (idempotent) logout.
type LogoutResponse struct {
	Success bool `json:"success"`
}

// ExchangeCodeRequest defines the body of the Google code-exchange endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
