package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the admin API reads from the environment.
type Config struct {
	Port           string
	AppEnv         string
	CmsDBURL       string
	EcommerceDBURL string
	RedisURL       string
	JWTSecret      string
	AllowedOrigins []string

	RateLimitRequests int
	RateLimitWindow   time.Duration
	ListCacheTTL      time.Duration
	ScreenStateTTL    time.Duration
	ExportRowLimit    int
}

// Load reads .env (when present) and the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "8081"),
		AppEnv:         getEnv("APP_ENV", "development"),
		CmsDBURL:       getEnv("CMS_DB_URL", localURL("modeva_cms_backend")),
		EcommerceDBURL: getEnv("ECOMMERCE_DB_URL", localURL("modeva_ecommerce")),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001"}),

		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		ListCacheTTL:      getEnvDuration("LIST_CACHE_TTL", 30*time.Second),
		ScreenStateTTL:    getEnvDuration("SCREEN_STATE_TTL", 12*time.Hour),
		ExportRowLimit:    getEnvInt("EXPORT_ROW_LIMIT", 500),
	}
}

func (c Config) IsProduction() bool { return c.AppEnv == "production" }

func localURL(dbName string) string {
	return "postgres://" + getEnv("DB_USER", "postgres") + ":" + getEnv("DB_PASSWORD", "") +
		"@" + getEnv("DB_HOST", "localhost") + ":" + getEnv("DB_PORT", "5432") +
		"/" + dbName + "?sslmode=disable"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return d
}

func getEnvList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
