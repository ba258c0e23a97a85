package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Server   ServerConfig
	Media    MediaConfig
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string //nolint:gosec // G117: DB connection config
	DBName   string
	SSLMode  string
	MaxConns int
}

// AuthConfig holds token verification settings.
type AuthConfig struct {
	TokenSecret string //nolint:gosec // G117: JWT signing secret config
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string
}

// MediaConfig holds S3 presigning settings.
type MediaConfig struct {
	Region string
	Bucket string
}

// Load reads configuration from environment variables.
// Defaults are safe for local development only. In production,
// sensitive values (token secret, DB password) must be set explicitly.
func Load() (*Config, error) {
	dbPort, err := getEnvInt("PORTAL_DB_PORT", 5432)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	dbMaxConns, err := getEnvInt("PORTAL_DB_MAX_CONNS", 25)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	readTimeout, err := getEnvDuration("PORTAL_SERVER_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	writeTimeout, err := getEnvDuration("PORTAL_SERVER_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	corsOrigins := getEnvList("PORTAL_CORS_ORIGINS", []string{"http://localhost:5173"})

	cfg := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("PORTAL_DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("PORTAL_DB_USER", "portal"),
			Password: getEnv("PORTAL_DB_PASSWORD", ""),
			DBName:   getEnv("PORTAL_DB_NAME", "portal_dev"),
			SSLMode:  getEnv("PORTAL_DB_SSLMODE", "disable"),
			MaxConns: dbMaxConns,
		},
		Auth: AuthConfig{
			TokenSecret: getEnv("PORTAL_TOKEN_SECRET", ""),
		},
		Server: ServerConfig{
			Addr:         getEnv("PORTAL_SERVER_ADDR", ":8080"),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			CORSOrigins:  corsOrigins,
		},
		Media: MediaConfig{
			Region: getEnv("PORTAL_S3_REGION", "us-east-2"),
			Bucket: getEnv("PORTAL_S3_BUCKET", ""),
		},
	}

	err = cfg.validate()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	return cfg, nil
}

// validate checks required fields and value bounds.
func (c *Config) validate() error {
	// Token secret is required (no insecure default).
	if c.Auth.TokenSecret == "" {
		return errors.New("PORTAL_TOKEN_SECRET is required")
	}
	if len(c.Auth.TokenSecret) < 32 {
		return errors.New("PORTAL_TOKEN_SECRET must be at least 32 characters")
	}

	if c.Media.Bucket == "" {
		return errors.New("PORTAL_S3_BUCKET is required")
	}

	if c.Database.SSLMode == "disable" {
		log.Warn().Msg("PORTAL_DB_SSLMODE=disable is insecure for production; set to 'require' or 'verify-full'")
	}

	// Bounds checks.
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("PORTAL_DB_PORT must be 1-65535, got %d", c.Database.Port)
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("PORTAL_DB_MAX_CONNS must be >= 1, got %d", c.Database.MaxConns)
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("PORTAL_SERVER_READ_TIMEOUT must be positive, got %s", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("PORTAL_SERVER_WRITE_TIMEOUT must be positive, got %s", c.Server.WriteTimeout)
	}

	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as int: %w", key, v, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as duration: %w", key, v, err)
	}
	return d, nil
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
