// Package config loads runtime configuration from a .env file (if present)
// and environment variables.
package config

import (
	"log"
	"net"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment. It is
// built once at startup and treated as read-only afterwards.
type Config struct {
	Addr   string // listen address, e.g. ":5000"
	AppEnv string

	LogLevel  string
	LogFormat string // "json" or "text"

	// Object storage. Endpoint is optional: when empty the client targets
	// AWS S3 in Region; set it to e.g. "localhost:9000" for a local MinIO.
	Bucket      string
	Region      string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	// Database probe target.
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

// Load reads configuration, applying the documented defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Addr:   ":" + getEnv("PORT", "5000"),
		AppEnv: getEnv("APP_ENV", "development"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		Bucket:      getEnv("S3_BUCKET", ""),
		Region:      getEnv("AWS_DEFAULT_REGION", "us-east-1"),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),

		DBHost:     getEnv("DB_HOST", ""),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "postgres"),
		DBPort:     getEnv("DB_PORT", "5432"),
	}
}

// DatabaseURL assembles a postgres connection URL from the discrete DB_*
// settings.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   net.JoinHostPort(c.DBHost, c.DBPort),
		Path:   "/" + c.DBName,
	}
	return u.String()
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
