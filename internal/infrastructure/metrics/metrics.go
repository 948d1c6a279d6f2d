// Package metrics define los colectores Prometheus de la API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resultados de una operación de venta.
const (
	OutcomeOK                = "ok"
	OutcomeInvalid           = "invalid"
	OutcomeNotFound          = "not_found"
	OutcomeInsufficientStock = "insufficient_stock"
	OutcomeError             = "error"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	// SalesOperationsTotal create/update/delete del coordinador por resultado.
	SalesOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_operations_total",
		Help: "Total number of sale mutations by operation and outcome",
	}, []string{"operation", "outcome"})
)
