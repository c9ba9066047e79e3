package metrics

import (
	"database/sql"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Package-level metric variables, set by RegisterDBMetrics and read by the
// GORM callbacks and the stats collector. When nil (metrics not registered)
// recording is skipped.
var (
	dbQueriesTotal       *prometheus.CounterVec
	dbQueryDuration      *prometheus.HistogramVec
	dbConnectionsOpen    prometheus.Gauge
	dbConnectionsMax     prometheus.Gauge
	dbConnectionsWaiting prometheus.Gauge
	dbOnce               sync.Once
)

// RegisterDBMetrics registers database metrics on the provided registry.
// A nil registry is a no-op.
func RegisterDBMetrics(reg *prometheus.Registry) {
	if reg == nil {
		return
	}

	dbOnce.Do(func() { registerDBMetrics(reg) })
}

func registerDBMetrics(reg *prometheus.Registry) {
	dbQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "devhome_db_queries_total",
			Help: "Total number of database queries executed.",
		},
		[]string{"operation"},
	)

	dbQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "devhome_db_query_duration_seconds",
			Help:    "Duration of database queries in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	dbConnectionsOpen = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "devhome_db_connections_open",
		Help: "Number of open database connections.",
	})

	dbConnectionsMax = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "devhome_db_connections_max",
		Help: "Maximum number of open database connections.",
	})

	dbConnectionsWaiting = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "devhome_db_connections_waiting",
		Help: "Number of database connections waited for.",
	})

	reg.MustRegister(
		dbQueriesTotal,
		dbQueryDuration,
		dbConnectionsOpen,
		dbConnectionsMax,
		dbConnectionsWaiting,
	)
}

// RegisterGORMCallbacks installs Before/After callbacks for Create, Query,
// Update, and Delete that time each operation. The callbacks never execute
// SQL themselves. A nil db is a no-op.
func RegisterGORMCallbacks(db *gorm.DB) {
	if db == nil {
		return
	}

	before := func(tx *gorm.DB) {
		tx.InstanceSet("obs:start_time", time.Now())
	}

	db.Callback().Create().Before("gorm:create").Register("obs:before_create", before)
	db.Callback().Create().After("gorm:create").Register("obs:after_create", makeAfterCallback("create"))

	db.Callback().Query().Before("gorm:query").Register("obs:before_query", before)
	db.Callback().Query().After("gorm:query").Register("obs:after_query", makeAfterCallback("query"))

	db.Callback().Update().Before("gorm:update").Register("obs:before_update", before)
	db.Callback().Update().After("gorm:update").Register("obs:after_update", makeAfterCallback("update"))

	db.Callback().Delete().Before("gorm:delete").Register("obs:before_delete", before)
	db.Callback().Delete().After("gorm:delete").Register("obs:after_delete", makeAfterCallback("delete"))
}

func makeAfterCallback(operation string) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		recordDBMetric(tx, operation)
	}
}

func recordDBMetric(tx *gorm.DB, operation string) {
	if tx == nil {
		return
	}

	v, ok := tx.InstanceGet("obs:start_time")
	if !ok {
		return
	}
	startTime, ok := v.(time.Time)
	if !ok {
		return
	}

	duration := time.Since(startTime).Seconds()

	if dbQueriesTotal != nil {
		dbQueriesTotal.WithLabelValues(operation).Inc()
	}
	if dbQueryDuration != nil {
		dbQueryDuration.WithLabelValues(operation).Observe(duration)
	}
}

// StartDBStatsCollector launches a goroutine that periodically reads
// sql.DBStats and updates the connection gauges. A nil sqlDB is a no-op.
func StartDBStatsCollector(sqlDB *sql.DB, interval time.Duration) {
	if sqlDB == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			stats := sqlDB.Stats()

			if dbConnectionsOpen != nil {
				dbConnectionsOpen.Set(float64(stats.OpenConnections))
			}
			if dbConnectionsMax != nil {
				dbConnectionsMax.Set(float64(stats.MaxOpenConnections))
			}
			if dbConnectionsWaiting != nil {
				dbConnectionsWaiting.Set(float64(stats.WaitCount))
			}
		}
	}()
}
