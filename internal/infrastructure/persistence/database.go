package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/supplierhub/relay/internal/infrastructure/config"
	"github.com/supplierhub/relay/internal/infrastructure/persistence/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Database holds the sync log connection
type Database struct {
	DB     *gorm.DB
	driver string
}

// NewDatabase opens the sync log store described by cfg. A nil gormLog
// silences GORM.
func NewDatabase(cfg config.SyncLogConfig, gormLog gormlogger.Interface) (*Database, error) {
	dialector, err := dialectorFor(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := Open(dialector, cfg.Driver, gormLog)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.SQLDB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Open wraps an already configured dialector. Tests use it with sqlmock.
func Open(dialector gorm.Dialector, driver string, gormLogger gormlogger.Interface) (*Database, error) {
	if gormLogger == nil {
		gormLogger = gormlogger.Default.LogMode(gormlogger.Silent)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &Database{DB: db, driver: driver}, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	case DriverPostgres:
		return postgres.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported sync log driver %q", driver)
}

// Driver returns the configured driver name
func (d *Database) Driver() string {
	return d.driver
}

// System returns the db.system value used on trace spans
func (d *Database) System() string {
	if d.driver == DriverPostgres {
		return "postgresql"
	}
	return d.driver
}

// Migrate creates or updates the sync log table
func (d *Database) Migrate() error {
	if err := d.DB.AutoMigrate(&models.SyncLogModel{}); err != nil {
		return fmt.Errorf("failed to migrate sync log table: %w", err)
	}
	return nil
}

// ErrSchemaMissing is returned when a PostgreSQL store has not been migrated
var ErrSchemaMissing = errors.New("sync_logs table does not exist, run the migrate command")

// EnsureSchema prepares the store for use. SQLite is migrated in place;
// PostgreSQL schemas are owned by the versioned migrations and only checked.
func (d *Database) EnsureSchema() error {
	if d.driver == DriverSQLite {
		return d.Migrate()
	}
	if !d.DB.Migrator().HasTable(&models.SyncLogModel{}) {
		return ErrSchemaMissing
	}
	return nil
}

// SQLDB returns the underlying connection pool
func (d *Database) SQLDB() (*sql.DB, error) {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.SQLDB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks if the database connection is alive
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.SQLDB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
