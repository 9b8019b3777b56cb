package dto

// LoginRequest represents the staff login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"Admin123!"`
}

// UserResponse represents the public view of a staff account
type UserResponse struct {
	ID          int64  `json:"id" example:"1"`
	Username    string `json:"username" example:"admin"`
	DisplayName string `json:"displayName,omitempty" example:"Equipe WebCiclo"`
}

// LoginResponse represents a successful authentication result
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn" example:"28800"`
	User      UserResponse `json:"user"`
}
