package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seckill_cache_lookups_total",
			Help: "Cache lookups by entity and result (hit, miss, null, stale)",
		},
		[]string{"entity", "result"},
	)

	CacheRebuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seckill_cache_rebuilds_total",
			Help: "Cache rebuilds by entity and outcome",
		},
		[]string{"entity", "outcome"},
	)

	Admissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seckill_admissions_total",
			Help: "Flash-sale admission attempts by result",
		},
		[]string{"result"},
	)

	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "seckill_order_queue_depth",
			Help: "Number of admitted orders waiting for persistence",
		},
	)

	OrdersPersisted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seckill_orders_persisted_total",
			Help: "Order persistence attempts by outcome",
		},
		[]string{"outcome"},
	)

	PersistFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seckill_order_persist_failures_total",
			Help: "Orders the background persister could not store",
		},
	)

	PersistDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seckill_order_persist_duration_seconds",
			Help:    "Time taken to persist one admitted order",
			Buckets: prometheus.DefBuckets,
		},
	)

	ReconciledOrders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seckill_orders_reconciled_total",
			Help: "Admission log entries replayed by the reconciler, by outcome",
		},
		[]string{"outcome"},
	)

	IDSequenceOverflows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seckill_id_sequence_overflows_total",
			Help: "Ids minted after the daily 32-bit sequence space was exhausted",
		},
		[]string{"prefix"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seckill_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seckill_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)
