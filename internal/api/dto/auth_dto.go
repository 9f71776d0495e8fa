package dto

// LoginRequest payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse payload. The capitalized key is part of the wire
// contract with existing clients.
type LoginResponse struct {
	Token string `json:"Token"`
}
