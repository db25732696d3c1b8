package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const (
	migrationsDir   = "migrations"
	migrationsTable = "schema_migrations"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrationRunner applies the embedded schema migrations
type MigrationRunner struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewMigrationRunner creates a new migration runner. A nil logger uses
// slog.Default.
func NewMigrationRunner(db *sql.DB, logger *slog.Logger) *MigrationRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &MigrationRunner{
		db:     db,
		logger: logger,
	}
}

// newMigrate builds a migrate instance over the runner's connection. The
// instance is never closed because closing it would close mr.db too.
func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	driver, err := sqlite3.WithInstance(mr.db, &sqlite3.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return nil, fmt.Errorf("failed to create sqlite3 migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations executes all pending migrations
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		mr.logger.Warn("database is in dirty state, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		mr.logger.Debug("no new migrations to apply", "version", version)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	mr.logger.Debug("applied migrations", "from", version, "to", newVersion)
	return nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}
