package config

// profile storage backends
const (
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

type Config struct {
	GoogleClientID     string
	GoogleClientSecret string
	JWTSecret          string
	GroqAPIKey         string
	FirecrawlAPIKey    string // optional, scraping endpoints return 501 when empty
	ProfileStore       string // redis | postgres
	RedisURL           string
	DatabaseURL        string
	AllowedOrigins     []string // optional CORS origins for a separately hosted frontend
	Environment        string
}

// reports whether scraping and profile import are available
func (c *Config) ScrapingEnabled() bool {
	return c.FirecrawlAPIKey != ""
}
