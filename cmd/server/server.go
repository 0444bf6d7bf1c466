package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aydnep/upwork-cover-ai/internal/auth"
	"github.com/aydnep/upwork-cover-ai/internal/config"
	"github.com/aydnep/upwork-cover-ai/internal/llm"
	"github.com/aydnep/upwork-cover-ai/internal/logger"
	"github.com/aydnep/upwork-cover-ai/internal/profiles"
	"github.com/aydnep/upwork-cover-ai/internal/scraper"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	server := &Server{
		config: cfg,
		codec:  auth.NewCodec(cfg.JWTSecret),
		flow:   auth.NewFlow(cfg.GoogleClientID, cfg.GoogleClientSecret),
		llm:    llm.NewClient(cfg.GroqAPIKey),
	}

	if cfg.ScrapingEnabled() {
		server.scraper = scraper.NewClient(cfg.FirecrawlAPIKey)
	} else {
		logger.Warn("FIRECRAWL_API_KEY not set, scraping endpoints disabled")
	}

	if err := server.initProfileStore(); err != nil {
		return nil, err
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server.router = gin.Default()
	RegisterRoutes(server.router, server)

	return server, nil
}

// initProfileStore connects the configured storage backend
func (s *Server) initProfileStore() error {
	switch s.config.ProfileStore {
	case config.StoreRedis:
		store, err := profiles.NewRedisStoreFromURL(s.config.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to connect redis profile store: %w", err)
		}

		s.redisStore = store
		s.profileStore = store

		logger.Info("profile store connected", "backend", config.StoreRedis)

	case config.StorePostgres:
		db, err := newPostgresPool(s.config.DatabaseURL)
		if err != nil {
			return err
		}

		s.db = db
		s.profileStore = profiles.NewPostgresStore(db)

		logger.Info("profile store connected", "backend", config.StorePostgres)

	default:
		return fmt.Errorf("unknown profile store backend: %q", s.config.ProfileStore)
	}

	return nil
}

func newPostgresPool(connString string) (*pgxpool.Pool, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// small pool, this service runs against pooled serverless Postgres
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// PgBouncer in transaction mode doesn't support prepared statements
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Close releases the storage backend connections
func (s *Server) Close() {
	if s.redisStore != nil {
		s.redisStore.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	}

	if s.db != nil {
		s.db.Close()
	}
}
