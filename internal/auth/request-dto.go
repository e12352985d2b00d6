package auth

// LoginRequest carries the only credential this system has: a username.
type LoginRequest struct {
	Username string `json:"username" binding:"required" validate:"required,min=1,max=100"`
}
