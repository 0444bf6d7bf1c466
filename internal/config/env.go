package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	googleClientID := os.Getenv("GOOGLE_CLIENT_ID")
	googleClientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	jwtSecret := os.Getenv("JWT_SECRET")
	groqKey := os.Getenv("GROQ_API_KEY")
	firecrawlKey := os.Getenv("FIRECRAWL_API_KEY")
	profileStore := os.Getenv("PROFILE_STORE")
	redisURL := os.Getenv("REDIS_URL")
	databaseURL := os.Getenv("DATABASE_URL")
	environment := os.Getenv("ENVIRONMENT")

	if googleClientID == "" || googleClientSecret == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET environment variables are required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if groqKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY environment variable is required")
	}

	if profileStore == "" {
		profileStore = StoreRedis
	}

	switch profileStore {
	case StoreRedis:
		if redisURL == "" {
			return nil, fmt.Errorf("REDIS_URL environment variable is required when PROFILE_STORE=redis")
		}
	case StorePostgres:
		if databaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required when PROFILE_STORE=postgres")
		}
	default:
		return nil, fmt.Errorf("unsupported PROFILE_STORE %q (expected redis or postgres)", profileStore)
	}

	if environment == "" {
		environment = "development"
	}

	var origins []string

	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	return &Config{
		GoogleClientID:     googleClientID,
		GoogleClientSecret: googleClientSecret,
		JWTSecret:          jwtSecret,
		GroqAPIKey:         groqKey,
		FirecrawlAPIKey:    firecrawlKey,
		ProfileStore:       profileStore,
		RedisURL:           redisURL,
		DatabaseURL:        databaseURL,
		AllowedOrigins:     origins,
		Environment:        environment,
	}, nil
}
