package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	ServiceName string
	Version     string
	LogLevel    string
	LogFormat   string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	APIKey         string // API key for authentication
	TrustedProxies []string

	// Payment gateway collaborator
	GatewayBaseURL   string
	GatewaySecretKey string

	// Streaming subscription pricing, in minor currency units
	StreamingPriceCents int

	// Periodic jobs
	ReconcileIntervalMinutes int

	// Event bus resilience
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	// Event log retention, in days
	EventLogRetentionDays int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:      getEnv("ENVIRONMENT", "dev"),
		ServiceName:      getEnv("SERVICE_NAME", "coursecast"),
		Version:          getEnv("SERVICE_VERSION", "dev"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBName:           getEnv("DB_NAME", "coursecast"),
		APIKey:           getEnv("API_KEY", ""),
		GatewayBaseURL:   getEnv("GATEWAY_BASE_URL", "https://api.stripe.com"),
		GatewaySecretKey: getEnv("GATEWAY_SECRET_KEY", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	priceStr := getEnv("STREAMING_PRICE_CENTS", "2900")
	price, err := strconv.Atoi(priceStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STREAMING_PRICE_CENTS value: %w", err)
	}
	cfg.StreamingPriceCents = price

	reconcileStr := getEnv("RECONCILE_INTERVAL_MINUTES", "60")
	reconcile, err := strconv.Atoi(reconcileStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RECONCILE_INTERVAL_MINUTES value: %w", err)
	}
	cfg.ReconcileIntervalMinutes = reconcile

	retriesStr := getEnv("EVENT_MAX_RETRIES", "3")
	retries, err := strconv.Atoi(retriesStr)
	if err != nil {
		return nil, fmt.Errorf("invalid EVENT_MAX_RETRIES value: %w", err)
	}
	cfg.EventMaxRetries = retries

	retryDelayStr := getEnv("EVENT_RETRY_DELAY", "5s")
	retryDelay, err := time.ParseDuration(retryDelayStr)
	if err != nil {
		return nil, fmt.Errorf("invalid EVENT_RETRY_DELAY value: %w", err)
	}
	cfg.EventRetryDelay = retryDelay

	cfg.EventDeadLetterPath = getEnv("EVENT_DEAD_LETTER_PATH", "data/events/dead_letter.jsonl")

	retentionStr := getEnv("EVENT_LOG_RETENTION_DAYS", "90")
	retention, err := strconv.Atoi(retentionStr)
	if err != nil {
		return nil, fmt.Errorf("invalid EVENT_LOG_RETENTION_DAYS value: %w", err)
	}
	cfg.EventLogRetentionDays = retention

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, trimmed)
			}
		}
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
