package telemetry

import (
	"context"
	"database/sql"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AttrDBPoolState labels db_pool_connections
var AttrDBPoolState = attribute.Key("db.pool.state")

// RegisterDBPoolMetrics reports the sync log connection pool on every
// collection. Unregister the returned registration before closing sqlDB.
func RegisterDBPoolMetrics(meter metric.Meter, sqlDB *sql.DB) (metric.Registration, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	connections, err := meter.Int64ObservableGauge(
		"db_pool_connections",
		metric.WithDescription("Number of connections in the pool by state"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gauge db_pool_connections: %w", err)
	}
	maxOpen, err := meter.Int64ObservableGauge(
		"db_pool_connections_max",
		metric.WithDescription("Maximum number of open connections"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gauge db_pool_connections_max: %w", err)
	}

	return meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := sqlDB.Stats()
		o.ObserveInt64(maxOpen, int64(stats.MaxOpenConnections))
		o.ObserveInt64(connections, int64(stats.Idle), metric.WithAttributes(AttrDBPoolState.String("idle")))
		o.ObserveInt64(connections, int64(stats.InUse), metric.WithAttributes(AttrDBPoolState.String("in_use")))
		o.ObserveInt64(connections, int64(stats.OpenConnections), metric.WithAttributes(AttrDBPoolState.String("open")))
		return nil
	}, connections, maxOpen)
}
