package auth

import (
	stderrors "errors"
	"net/http"

	"github.com/aydnep/upwork-cover-ai/internal/auth"
	"github.com/aydnep/upwork-cover-ai/internal/errors"
	"github.com/aydnep/upwork-cover-ai/internal/logger"
	"github.com/gin-gonic/gin"
)

// GoogleHandler starts the OAuth flow: a fresh state nonce and PKCE verifier
// go into short-lived transaction cookies, then the browser is redirected to
// the provider's consent screen
func GoogleHandler(flow *auth.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := auth.GenerateState()
		if err != nil {
			errors.InternalError(c, "failed to start sign-in", err)
			return
		}

		verifier := auth.GenerateVerifier()
		secure := auth.RequestIsSecure(c.Request)

		header := c.Writer.Header()
		header.Add("Set-Cookie", auth.BuildCookie(auth.StateCookie, state, auth.TransactionMaxAge, secure))
		header.Add("Set-Cookie", auth.BuildCookie(auth.VerifierCookie, verifier, auth.TransactionMaxAge, secure))

		c.Redirect(http.StatusFound, flow.AuthorizationURL(c.Request, state, verifier))
	}
}

// CallbackHandler completes the OAuth flow: validates the returned state
// against the transaction cookie, exchanges the code, mints the session
// token, and cleans up the transaction cookies. Every validation or exchange
// failure is a 400; nothing is retried.
func CallbackHandler(flow *auth.Flow, codec *auth.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("code")
		state := c.Query("state")

		cookies := auth.ParseCookies(c.Request.Header.Get("Cookie"))
		storedState := cookies[auth.StateCookie]
		verifier := cookies[auth.VerifierCookie]

		// a missing or mismatched state is hostile or expired, never retried
		if code == "" || state == "" || storedState == "" || verifier == "" || state != storedState {
			errors.BadRequest(c, "invalid oauth callback", nil)
			return
		}

		claims, err := flow.Exchange(c.Request.Context(), c.Request, code, verifier)
		if err != nil {
			if stderrors.Is(err, auth.ErrNoEmail) {
				errors.BadRequest(c, "no email in identity token", nil)
				return
			}

			logger.ErrorErr(err, "oauth code exchange failed")
			errors.BadRequest(c, "failed to validate authorization code", nil)

			return
		}

		token, err := codec.Mint(claims.Email, claims.Name, claims.Picture)
		if err != nil {
			errors.InternalError(c, "failed to create session", err)
			return
		}

		secure := auth.RequestIsSecure(c.Request)

		header := c.Writer.Header()
		header.Add("Set-Cookie", auth.BuildCookie(auth.SessionCookie, token, auth.SessionMaxAge, secure))
		header.Add("Set-Cookie", auth.ClearCookie(auth.StateCookie, secure))
		header.Add("Set-Cookie", auth.ClearCookie(auth.VerifierCookie, secure))

		logger.Info("user signed in", "email", claims.Email)

		c.Redirect(http.StatusFound, "/")
	}
}

// LogoutHandler clears the session cookie and redirects to the root.
// Logging out an anonymous caller is a no-op success, so there is no
// authentication check.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		secure := auth.RequestIsSecure(c.Request)
		c.Writer.Header().Add("Set-Cookie", auth.ClearCookie(auth.SessionCookie, secure))

		c.Redirect(http.StatusFound, "/")
	}
}

// MeHandler returns the authenticated identity
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := auth.CurrentUser(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		c.JSON(http.StatusOK, UserResponse{
			Email:   claims.Email,
			Name:    claims.Name,
			Picture: claims.Picture,
		})
	}
}
