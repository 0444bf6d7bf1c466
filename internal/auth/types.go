package auth

// Claims is the identity attribute set carried inside a session token.
// A token is minted once at sign-in and replaced wholesale on
// re-authentication, never mutated.
type Claims struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Picture   string `json:"picture,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// IdentityClaims are the attributes decoded from the provider's ID token.
type IdentityClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
