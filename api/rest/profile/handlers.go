package profile

import (
	stderrors "errors"
	"net/http"

	"github.com/aydnep/upwork-cover-ai/internal/auth"
	"github.com/aydnep/upwork-cover-ai/internal/errors"
	"github.com/aydnep/upwork-cover-ai/internal/profiles"
	"github.com/gin-gonic/gin"
)

// GetHandler returns the caller's saved profile. A user who has not saved
// one yet gets a null profile, not an error.
func GetHandler(store profiles.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := auth.CurrentUser(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		profile, err := store.Get(c.Request.Context(), claims.Email)
		if err != nil {
			if stderrors.Is(err, profiles.ErrNotFound) {
				c.JSON(http.StatusOK, ProfileResponse{Profile: nil})
				return
			}

			errors.InternalError(c, "failed to load profile", err)

			return
		}

		c.JSON(http.StatusOK, ProfileResponse{Profile: profile})
	}
}

// PutHandler validates and saves the caller's profile, replacing any
// previous version wholesale.
func PutHandler(store profiles.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := auth.CurrentUser(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		var profile profiles.Profile
		if err := c.ShouldBindJSON(&profile); err != nil {
			errors.BadRequest(c, "invalid request body", err)
			return
		}

		if err := profile.Validate(); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if err := store.Put(c.Request.Context(), claims.Email, &profile); err != nil {
			errors.InternalError(c, "failed to save profile", err)
			return
		}

		c.JSON(http.StatusOK, SaveResponse{Success: true})
	}
}
