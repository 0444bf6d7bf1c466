package auth

import (
	"net/http"

	"github.com/aydnep/upwork-cover-ai/internal/errors"
	"github.com/gin-gonic/gin"
)

// Resolve returns the claims carried by the request's session cookie, or nil
// when the request is anonymous. Absent, malformed, and expired sessions all
// look the same to callers. Read-only: never touches the response.
func Resolve(r *http.Request, codec *Codec) *Claims {
	cookies := ParseCookies(r.Header.Get("Cookie"))

	token, ok := cookies[SessionCookie]
	if !ok || token == "" {
		return nil
	}

	claims, err := codec.Verify(token)
	if err != nil {
		return nil
	}

	return claims
}

// RequireAuth rejects requests without a valid session before any other
// collaborator runs, and adds the identity to the request context
func RequireAuth(codec *Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Resolve(c.Request, codec)
		if claims == nil {
			errors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set("user_email", claims.Email)
		c.Set("user_name", claims.Name)
		c.Set("user_picture", claims.Picture)

		c.Next()
	}
}

// CurrentUser extracts the identity set by RequireAuth
func CurrentUser(c *gin.Context) (*Claims, bool) {
	email := c.GetString("user_email")
	if email == "" {
		return nil, false
	}

	return &Claims{
		Email:   email,
		Name:    c.GetString("user_name"),
		Picture: c.GetString("user_picture"),
	}, true
}
