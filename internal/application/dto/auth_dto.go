package dto

// LoginRequest entrada de POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token JWT emitido.
type LoginResponse struct {
	Token string `json:"token"`
}
