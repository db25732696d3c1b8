package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	MemoryDatabase = ":memory:"

	SegmentStrategyAuto   = "auto"
	SegmentStrategyWindow = "window"
	SegmentStrategyMemory = "memory"
)

type Config struct {
	App          AppConfig
	Database     DatabaseConfig
	Segmentation SegmentationConfig
	Log          LogConfig
	Metrics      MetricsConfig
}

type AppConfig struct {
	Environment string
}

type DatabaseConfig struct {
	Path           string
	MaxConnections int
	LogLevel       string
}

type SegmentationConfig struct {
	Strategy string
}

type LogConfig struct {
	Level  string
	Format string
}

type MetricsConfig struct {
	TextfilePath string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; variables already set win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARNING: failed to load .env file: %v", err)
	}

	config := &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Path:           getEnv("CDMS_DB_PATH", "db/cdms.db"),
			MaxConnections: getIntEnv("CDMS_DB_MAX_CONNECTIONS", 1),
			LogLevel:       getEnv("CDMS_DB_LOG_LEVEL", "silent"),
		},
		Segmentation: SegmentationConfig{
			Strategy: strings.ToLower(getEnv("CDMS_SEGMENT_STRATEGY", SegmentStrategyAuto)),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "warn")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
		Metrics: MetricsConfig{
			TextfilePath: getEnv("METRICS_TEXTFILE", ""),
		},
	}

	// every :memory: connection is a separate database
	if config.Database.IsMemory() || config.Database.MaxConnections < 1 {
		config.Database.MaxConnections = 1
	}

	return config
}

// Validate checks values that cannot be defaulted silently
func (c *Config) Validate() error {
	switch c.Segmentation.Strategy {
	case SegmentStrategyAuto, SegmentStrategyWindow, SegmentStrategyMemory:
	default:
		return fmt.Errorf("invalid CDMS_SEGMENT_STRATEGY %q: must be one of auto, window, memory", c.Segmentation.Strategy)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", c.Log.Format)
	}

	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("CDMS_DB_PATH must not be empty")
	}

	return nil
}

func (c *DatabaseConfig) IsMemory() bool {
	return c.Path == MemoryDatabase
}

// DSN returns the sqlite connection string. The busy timeout makes a second
// invocation wait while another one holds the write lock.
func (c *DatabaseConfig) DSN() string {
	if c.IsMemory() {
		return c.Path
	}
	return fmt.Sprintf("file:%s?_busy_timeout=5000", c.Path)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
