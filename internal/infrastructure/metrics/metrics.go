package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Balance metrics
	BalancesComputed prometheus.Counter
	CacheHits        prometheus.Counter

	// Banking metrics
	BankOperations  *prometheus.CounterVec
	BankingDuration prometheus.Histogram

	// Pool metrics
	PoolsCreated  prometheus.Counter
	PoolsRejected *prometheus.CounterVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Outbox metrics
	EventsPublished prometheus.Counter
	PublishErrors   prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Balance metrics
		BalancesComputed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fueleu_balances_computed_total",
			Help: "Total number of compliance balances computed",
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fueleu_balance_cache_hits_total",
			Help: "Total number of balance reads served from cache",
		}),

		// Banking metrics
		BankOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fueleu_bank_operations_total",
				Help: "Total banking operations by type",
			},
			[]string{"operation"},
		),
		BankingDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fueleu_banking_duration_seconds",
			Help:    "Duration of banking operations",
			Buckets: prometheus.DefBuckets,
		}),

		// Pool metrics
		PoolsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fueleu_pools_created_total",
			Help: "Total number of pools created",
		}),
		PoolsRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fueleu_pools_rejected_total",
				Help: "Total pool creations rejected by reason",
			},
			[]string{"reason"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fueleu_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fueleu_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "fueleu_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fueleu_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fueleu_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fueleu_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Outbox metrics
		EventsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fueleu_events_published_total",
			Help: "Total outbox events published",
		}),
		PublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fueleu_event_publish_errors_total",
			Help: "Total outbox publish failures",
		}),
	}
}
