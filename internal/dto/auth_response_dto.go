package dto

// LoginRequest defines the credentials for username/password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the application JWT issued on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}
