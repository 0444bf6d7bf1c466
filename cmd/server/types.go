package main

import (
	"github.com/aydnep/upwork-cover-ai/internal/auth"
	"github.com/aydnep/upwork-cover-ai/internal/config"
	"github.com/aydnep/upwork-cover-ai/internal/llm"
	"github.com/aydnep/upwork-cover-ai/internal/profiles"
	"github.com/aydnep/upwork-cover-ai/internal/scraper"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	config       *config.Config
	codec        *auth.Codec
	flow         *auth.Flow
	profileStore profiles.Store
	llm          *llm.Client
	scraper      *scraper.Client // nil when no Firecrawl key is configured
	router       *gin.Engine

	// backend handles held for shutdown; at most one is non-nil
	db         *pgxpool.Pool
	redisStore *profiles.RedisStore
}
