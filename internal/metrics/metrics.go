package metrics

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Package-level Prometheus collectors. They are registered via Register.
var (
	regOK atomic.Bool

	operationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ocureg",
			Subsystem: "graphql",
			Name:      "operations_total",
			Help:      "Number of resolved GraphQL operations by outcome.",
		}, []string{"operation", "status"},
	)
	operationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ocureg",
			Subsystem: "graphql",
			Name:      "operation_duration_seconds",
			Help:      "Resolver execution time per operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"},
	)
	recordCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ocureg",
			Name:      "records",
			Help:      "Current number of records in the store.",
		},
	)
)

// Register registers all metrics with the provided registerer.
// It is safe to call multiple times; subsequent calls after success are no-ops.
func Register(r prometheus.Registerer) error {
	if regOK.Load() {
		return nil
	}
	cs := []prometheus.Collector{operationsTotal, operationDuration, recordCount}
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			// If already registered, ignore (allows double Register with default registry)
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	regOK.Store(true)
	return nil
}

// Handler returns an http.Handler that serves Prometheus metrics for the DefaultGatherer.
// The caller is responsible for starting an HTTP server and wiring the route.
func Handler() http.Handler { return promhttp.Handler() }

// Below are lightweight helpers used by internal packages to record metrics.
// They no-op if Register hasn't been called.

func IncOperation(operation, status string) {
	if regOK.Load() {
		operationsTotal.WithLabelValues(operation, status).Inc()
	}
}

func ObserveOperationDuration(operation string, seconds float64) {
	if regOK.Load() {
		operationDuration.WithLabelValues(operation).Observe(seconds)
	}
}

func SetRecordCount(n int) {
	if regOK.Load() {
		recordCount.Set(float64(n))
	}
}
