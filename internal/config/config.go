// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is used when JWT_SECRET is unset. main refuses it in production.
const DefaultJWTSecret = "your-secret-key"

// Config holds all runtime configuration for the service.
type Config struct {
	DatabaseURL string
	JWTSecret   string
	Port        string
	AppEnv      string

	// StorageRoot is the absolute directory holding products/ and videos/.
	StorageRoot string
	// PublicBaseURL prefixes every returned file URL, without a trailing slash.
	PublicBaseURL string

	AllowedOrigins    []string
	RateLimitWindow   time.Duration
	RateLimitRequests int

	LogLevel  string
	LogFormat string
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, reading from environment")
	}

	port := getEnv("APP_PORT", "3003")

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", databaseURLFromParts()),
		JWTSecret:   getEnv("JWT_SECRET", DefaultJWTSecret),
		Port:        port,
		AppEnv:      getEnv("APP_ENV", "development"),

		StorageRoot:   absPath(getEnv("STORAGE_ROOT", "storage")),
		PublicBaseURL: strings.TrimRight(getEnv("FILES_PUBLIC_BASE_URL", "http://localhost:"+port), "/"),

		AllowedOrigins:    splitList(getEnv("FRONTEND_URL", "*")),
		RateLimitWindow:   time.Duration(getEnvInt("RATE_LIMIT_TTL", 60)) * time.Second,
		RateLimitRequests: getEnvInt("RATE_LIMIT_LIMIT", 60),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// databaseURLFromParts builds a DSN from the discrete DB_* variables.
func databaseURLFromParts() string {
	sslMode := "disable"
	if getEnv("DB_SSL", "false") == "true" {
		sslMode = "require"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(getEnv("DB_USERNAME", "postgres"), getEnv("DB_PASSWORD", "admin@123")),
		Host:     fmt.Sprintf("%s:%s", getEnv("DB_HOST", "localhost"), getEnv("DB_PORT", "5432")),
		Path:     "/" + getEnv("DB_NAME", "ksrDb"),
		RawQuery: "sslmode=" + sslMode,
	}
	return u.String()
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid integer", slog.String("key", key), slog.String("value", v))
		return fallback
	}
	return n
}
