package testdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// IsIntegrationTestEnvironment returns true if the DATABASE_URL environment
// variable is set, indicating that integration tests can be run.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// GetTestDatabaseURL returns the database URL for tests.
// It checks DATABASE_URL and TASKAPI_TEST_DB_URL in that order.
func GetTestDatabaseURL() string {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return dbURL
	}
	return os.Getenv("TASKAPI_TEST_DB_URL")
}

// GetTestDBWithT returns a migrated, empty database for testing. It skips the
// test when no database URL is configured and closes the handle on cleanup.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("DATABASE_URL or TASKAPI_TEST_DB_URL not set - skipping integration test")
	}

	db, err := postgres.Open(config.DatabaseConfig{URL: dbURL, MaxOpenConns: 5})
	require.NoError(t, err, "Failed to open database connection")
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err = postgres.Migrate(ctx, db, postgres.MigrateOptions{Attempts: 3, Delay: time.Second})
	require.NoError(t, err, "Failed to run migrations")

	ResetTasks(t, db)
	return db
}

// ResetTasks empties the tasks table and restarts its id sequence.
func ResetTasks(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	_, err := db.ExecContext(ctx, "TRUNCATE tasks RESTART IDENTITY")
	require.NoError(t, err, "Failed to truncate tasks")
}
