package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lumen_orders_processed_total",
		Help: "Orders reaching a terminal state, by kind and status.",
	}, []string{"kind", "status"})

	ordersRequeued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lumen_orders_requeued_total",
		Help: "Running orders forcibly requeued after exceeding max run time.",
	})

	orderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lumen_order_duration_seconds",
		Help:    "Wall-clock duration of order execution.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	}, []string{"kind"})
)
