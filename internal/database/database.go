package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cdms/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// windowFunctionsSince is the first SQLite release with NTILE and friends
var windowFunctionsSince = [3]int{3, 25, 0}

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	if !cfg.IsMemory() {
		if dir := filepath.Dir(cfg.Path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	}

	db, err := gorm.Open(sqlite.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxConnections)
	if cfg.IsMemory() {
		// closing the last connection drops an in-memory database
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// EnsureSchema brings the customer table and its region index up to the
// latest migration
func (db *DB) EnsureSchema() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := NewMigrationRunner(sqlDB, nil).RunMigrations(); err != nil {
		return fmt.Errorf("failed to migrate customer_data table: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SupportsWindowFunctions reports whether the linked SQLite library can run
// NTILE(...) OVER (...) queries
func (db *DB) SupportsWindowFunctions() (bool, error) {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return false, err
	}
	return SupportsWindowFunctions(sqlDB)
}

// SupportsWindowFunctions queries sqlite_version() and compares it against
// the first release that shipped window functions
func SupportsWindowFunctions(sqlDB *sql.DB) (bool, error) {
	var version string
	if err := sqlDB.QueryRow("SELECT sqlite_version()").Scan(&version); err != nil {
		return false, fmt.Errorf("failed to read sqlite version: %w", err)
	}

	parsed, err := parseVersion(version)
	if err != nil {
		return false, err
	}

	for i := range parsed {
		if parsed[i] != windowFunctionsSince[i] {
			return parsed[i] > windowFunctionsSince[i], nil
		}
	}
	return true, nil
}

func parseVersion(version string) ([3]int, error) {
	var parsed [3]int
	parts := strings.Split(strings.TrimSpace(version), ".")
	if len(parts) < 2 {
		return parsed, fmt.Errorf("unrecognized sqlite version %q", version)
	}
	for i := 0; i < len(parts) && i < len(parsed); i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return parsed, fmt.Errorf("unrecognized sqlite version %q: %w", version, err)
		}
		parsed[i] = n
	}
	return parsed, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "info":
		return logger.Info
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}

// Initialize opens the database described by cfg and ensures the schema
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := db.EnsureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
