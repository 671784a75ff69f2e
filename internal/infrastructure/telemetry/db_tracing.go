package telemetry

import (
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database tracing.
type DBTracingConfig struct {
	Enabled bool
	// DBSystem is reported as db.system, e.g. "postgresql" or "sqlite"
	DBSystem string
	// IncludeQueryVariables puts bound values into db.statement. Dev only.
	IncludeQueryVariables bool
	SlowQueryThreshold    time.Duration
	// TracerProvider overrides the global provider
	TracerProvider trace.TracerProvider
}

// DefaultDBTracingConfig returns the secure defaults for database tracing.
func DefaultDBTracingConfig(dbSystem string) DBTracingConfig {
	return DBTracingConfig{
		Enabled:            true,
		DBSystem:           dbSystem,
		SlowQueryThreshold: 200 * time.Millisecond,
	}
}

const slowQueryStartKey = "telemetry:query_start"

// RegisterDBTracing installs the otelgorm plugin on db and flags slow
// statements on their span.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	opts := []otelgorm.Option{
		otelgorm.WithDBName(cfg.DBSystem),
		otelgorm.WithAttributes(attribute.String("db.system", cfg.DBSystem)),
	}
	if !cfg.IncludeQueryVariables {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if cfg.TracerProvider != nil {
		opts = append(opts, otelgorm.WithTracerProvider(cfg.TracerProvider))
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	if cfg.SlowQueryThreshold > 0 {
		if err := registerSlowQueryCallbacks(db, cfg.SlowQueryThreshold); err != nil {
			return err
		}
	}

	logger.Info("Database tracing enabled",
		zap.String("db_system", cfg.DBSystem),
		zap.Duration("slow_query_threshold", cfg.SlowQueryThreshold),
	)
	return nil
}

func registerSlowQueryCallbacks(db *gorm.DB, threshold time.Duration) error {
	start := func(tx *gorm.DB) {
		tx.InstanceSet(slowQueryStartKey, time.Now())
	}
	finish := func(tx *gorm.DB) {
		v, ok := tx.InstanceGet(slowQueryStartKey)
		if !ok {
			return
		}
		elapsed := time.Since(v.(time.Time))
		if elapsed <= threshold {
			return
		}
		span := trace.SpanFromContext(tx.Statement.Context)
		if !span.IsRecording() {
			return
		}
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
		)
	}

	cb := db.Callback()
	if err := cb.Create().Before("gorm:create").Register("telemetry:slow_start_create", start); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("telemetry:slow_finish_create", finish); err != nil {
		return err
	}
	if err := cb.Query().Before("gorm:query").Register("telemetry:slow_start_query", start); err != nil {
		return err
	}
	return cb.Query().After("gorm:query").Register("telemetry:slow_finish_query", finish)
}
