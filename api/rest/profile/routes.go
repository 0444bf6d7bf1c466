package profile

import (
	"github.com/aydnep/upwork-cover-ai/internal/profiles"
	"github.com/gin-gonic/gin"
)

// registers the profile routes on an authenticated group
func RegisterRoutes(group *gin.RouterGroup, store profiles.Store) {
	group.GET("/profile", GetHandler(store))
	group.PUT("/profile", PutHandler(store))
}
