package main

import (
	"github.com/aydnep/upwork-cover-ai/api/rest/auth"
	"github.com/aydnep/upwork-cover-ai/api/rest/generate"
	"github.com/aydnep/upwork-cover-ai/api/rest/health"
	"github.com/aydnep/upwork-cover-ai/api/rest/pages"
	"github.com/aydnep/upwork-cover-ai/api/rest/profile"
	"github.com/aydnep/upwork-cover-ai/api/rest/scrape"
	internalauth "github.com/aydnep/upwork-cover-ai/internal/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	// CORS only matters for a separately hosted frontend
	if len(server.config.AllowedOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = server.config.AllowedOrigins
		corsConfig.AllowCredentials = true
		router.Use(cors.New(corsConfig))
	}

	router.GET("/", pages.IndexHandler(server.codec, server.config.ScrapingEnabled()))
	router.GET("/health", health.Handler)

	auth.RegisterRoutes(router, server.flow, server.codec)

	api := router.Group("/api", internalauth.RequireAuth(server.codec))

	{
		api.GET("/me", auth.MeHandler())

		profile.RegisterRoutes(api, server.profileStore)
		scrape.RegisterRoutes(api, server.scraper, server.llm)
		generate.RegisterRoutes(api, server.profileStore, server.llm)
	}
}
