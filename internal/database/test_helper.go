package database

import (
	"testing"

	"cdms/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a private in-memory store with the customer schema.
// The single connection keeps every query on the same in-memory database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(config.MemoryDatabase), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Path:           config.MemoryDatabase,
			MaxConnections: 1,
		},
	}

	if err := testDB.EnsureSchema(); err != nil {
		t.Fatalf("failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// CleanupTestDB empties the customer table and resets its sequence
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM customer_data").Error; err != nil {
		t.Logf("failed to cleanup table customer_data: %v", err)
	}
	if err := db.Exec("DELETE FROM sqlite_sequence WHERE name = 'customer_data'").Error; err != nil {
		t.Logf("failed to reset customer_data sequence: %v", err)
	}
}
