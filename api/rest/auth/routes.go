package auth

import (
	"github.com/aydnep/upwork-cover-ai/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers the OAuth flow routes at the application root
func RegisterRoutes(router *gin.Engine, flow *auth.Flow, codec *auth.Codec) {
	router.GET("/auth/google", GoogleHandler(flow))
	router.GET(auth.CallbackPath, CallbackHandler(flow, codec))
	router.POST("/auth/logout", LogoutHandler())
}
