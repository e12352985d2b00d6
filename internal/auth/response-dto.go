package auth

import "time"

// LoginResponse is returned after a session has been established. The
// session token itself travels in the cookie, not the body.
type LoginResponse struct {
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}
