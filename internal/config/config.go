package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Common
	Environment string
	LogLevel    string

	Server   ServerConfig
	Data     DataConfig
	Chart    ChartConfig
	Position PositionConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int
	HealthCheckPort int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DataConfig holds bar data source configuration
type DataConfig struct {
	// File is a path to a JSON series document. Empty means the
	// built-in deterministic mock series is used.
	File   string
	Ticker string
	// MockDays is the number of daily bars the mock series generates.
	MockDays int
}

// ChartConfig holds the logical canvas and tooltip dimensions
type ChartConfig struct {
	Width         float64
	Height        float64
	Inset         float64
	TooltipWidth  float64
	TooltipHeight float64
	DefaultRange  string
}

// PositionConfig holds the illustrative holding parameters
type PositionConfig struct {
	Shares    float64
	CostBasis float64
}

// Load loads configuration from environment variables.
// It automatically loads a .env file if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Server: ServerConfig{
			Port:            getEnvAsInt("CHART_PORT", 8080),
			HealthCheckPort: getEnvAsInt("CHART_HEALTH_PORT", 8081),
			ReadTimeout:     getEnvAsDuration("CHART_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvAsDuration("CHART_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getEnvAsDuration("CHART_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Data: DataConfig{
			File:     getEnv("DATA_FILE", ""),
			Ticker:   getEnv("DATA_TICKER", "TECH"),
			MockDays: getEnvAsInt("DATA_MOCK_DAYS", 180),
		},
		Chart: ChartConfig{
			Width:         getEnvAsFloat("CHART_WIDTH", 800),
			Height:        getEnvAsFloat("CHART_HEIGHT", 320),
			Inset:         getEnvAsFloat("CHART_INSET", 20),
			TooltipWidth:  getEnvAsFloat("CHART_TOOLTIP_WIDTH", 120),
			TooltipHeight: getEnvAsFloat("CHART_TOOLTIP_HEIGHT", 56),
			DefaultRange:  getEnv("CHART_DEFAULT_RANGE", "1M"),
		},
		Position: PositionConfig{
			Shares:    getEnvAsFloat("POSITION_SHARES", 120),
			CostBasis: getEnvAsFloat("POSITION_COST_BASIS", 108.5),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("CHART_PORT must be a valid port, got %d", c.Server.Port)
	}
	if c.Data.Ticker == "" {
		return fmt.Errorf("DATA_TICKER is required")
	}
	if c.Chart.Width <= 2*c.Chart.Inset {
		return fmt.Errorf("CHART_WIDTH must exceed twice the inset")
	}
	if c.Chart.Height <= 2*c.Chart.Inset {
		return fmt.Errorf("CHART_HEIGHT must exceed twice the inset")
	}
	if c.Data.MockDays < 0 {
		return fmt.Errorf("DATA_MOCK_DAYS must be non-negative, got %d", c.Data.MockDays)
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return floatValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
