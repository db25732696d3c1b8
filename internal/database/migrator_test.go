package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, nil)

	assert.NotNil(t, runner)
	assert.Equal(t, db, runner.db)
	assert.NotNil(t, runner.logger)
}

func TestRunMigrations_CreatesSchema(t *testing.T) {
	testDB := SetupTestDB(t)
	sqlDB, err := testDB.DB.DB()
	require.NoError(t, err)

	version, dirty, err := NewMigrationRunner(sqlDB, nil).GetMigrationStatus()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	assert.True(t, testDB.Migrator().HasTable("customer_data"))
	assert.True(t, testDB.Migrator().HasIndex("customer_data", "idx_customer_data_state"))
}

func TestRunMigrations_Idempotent(t *testing.T) {
	testDB := SetupTestDB(t)
	sqlDB, err := testDB.DB.DB()
	require.NoError(t, err)

	runner := NewMigrationRunner(sqlDB, nil)
	assert.NoError(t, runner.RunMigrations())
	assert.NoError(t, runner.RunMigrations())

	version, _, err := runner.GetMigrationStatus()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
}

func TestRunMigrations_ForcesDirtyVersion(t *testing.T) {
	testDB := SetupTestDB(t)
	sqlDB, err := testDB.DB.DB()
	require.NoError(t, err)

	_, err = sqlDB.Exec("UPDATE schema_migrations SET dirty = 1")
	require.NoError(t, err)

	runner := NewMigrationRunner(sqlDB, nil)
	require.NoError(t, runner.RunMigrations())

	_, dirty, err := runner.GetMigrationStatus()
	require.NoError(t, err)
	assert.False(t, dirty)
}

func TestRunMigrations_RejectsNegativeAmountRows(t *testing.T) {
	testDB := SetupTestDB(t)

	err := testDB.Exec(`INSERT INTO customer_data
		(first_name, last_name, email, phone, state, purchase_amount)
		VALUES ('a', 'b', 'a@b.co', '5551234567', 'CA', -1)`).Error

	assert.Error(t, err)
}

func TestRunMigrations_DriverFailure(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: creating the version table is refused
	err = NewMigrationRunner(db, nil).RunMigrations()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create sqlite3 migration driver")
}
