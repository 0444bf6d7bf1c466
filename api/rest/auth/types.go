package auth

// UserResponse is the authenticated identity returned by /api/me
type UserResponse struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}
