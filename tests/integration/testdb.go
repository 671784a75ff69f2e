// Package integration provides integration testing utilities for the supplier relay.
// It uses testcontainers to spin up a real PostgreSQL database for the sync log.
package integration

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/supplierhub/relay/internal/infrastructure/migration"
	"github.com/supplierhub/relay/internal/infrastructure/persistence"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm/logger"
)

var (
	// Shared container for all tests in the package
	sharedContainer    testcontainers.Container
	sharedContainerMu  sync.Mutex
	sharedContainerDSN string
)

// TestDB represents a test database connection
type TestDB struct {
	*persistence.Database
	SqlDB     *sql.DB
	Container testcontainers.Container
	DSN       string
	t         *testing.T
}

// NewTestDB returns a connection to the shared PostgreSQL container with
// the embedded migrations applied. Tables are truncated before returning.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	sharedContainerMu.Lock()
	defer sharedContainerMu.Unlock()

	ctx := context.Background()

	if sharedContainer == nil {
		container, err := tcpostgres.Run(ctx,
			"postgres:16-alpine",
			tcpostgres.WithDatabase("relay_test"),
			tcpostgres.WithUsername("postgres"),
			tcpostgres.WithPassword("relay123"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		require.NoError(t, err, "Failed to start PostgreSQL container")

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err, "Failed to get connection string")

		sharedContainer = container
		sharedContainerDSN = dsn

		// Run migrations once on a dedicated connection; closing the
		// migrator also closes it.
		migrationDB, err := sql.Open("postgres", dsn)
		require.NoError(t, err, "Failed to open migration connection")
		m, err := migration.New(migrationDB, "", nil)
		require.NoError(t, err, "Failed to create migrator")
		require.NoError(t, m.Up(), "Failed to run migrations")
		_ = m.Close()
	}

	db := connectToDatabase(t, sharedContainerDSN)
	sqlDB, err := db.SQLDB()
	require.NoError(t, err)

	testDB := &TestDB{
		Database:  db,
		SqlDB:     sqlDB,
		Container: sharedContainer,
		DSN:       sharedContainerDSN,
		t:         t,
	}
	testDB.CleanTables()

	t.Cleanup(func() {
		_ = testDB.Database.Close()
	})

	return testDB
}

// CleanTables truncates every table except the migration bookkeeping
func (tdb *TestDB) CleanTables() {
	tdb.t.Helper()

	var tables []string
	err := tdb.DB.Raw(`
		SELECT tablename FROM pg_tables
		WHERE schemaname = 'public'
		AND tablename != 'schema_migrations'
	`).Scan(&tables).Error
	require.NoError(tdb.t, err, "Failed to get table names")

	for _, table := range tables {
		if err := tdb.DB.Exec("TRUNCATE TABLE " + table).Error; err != nil {
			tdb.t.Logf("Warning: Failed to truncate table %s: %v", table, err)
		}
	}
}

// connectToDatabase opens the sync log database the way the server does
func connectToDatabase(t *testing.T, dsn string) *persistence.Database {
	t.Helper()

	// Minimal logging unless TEST_DB_DEBUG is set
	gormLogger := logger.Default.LogMode(logger.Silent)
	if os.Getenv("TEST_DB_DEBUG") != "" {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := persistence.Open(gormpostgres.Open(dsn), persistence.DriverPostgres, gormLogger)
	require.NoError(t, err, "Failed to connect to database")
	return db
}

// CleanupSharedContainer terminates the shared container.
// Call it from TestMain after m.Run.
func CleanupSharedContainer() {
	sharedContainerMu.Lock()
	defer sharedContainerMu.Unlock()

	if sharedContainer != nil {
		_ = sharedContainer.Terminate(context.Background())
		sharedContainer = nil
		sharedContainerDSN = ""
	}
}
