package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EntitiesCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "entities_created_total",
		Help: "Total number of entities created, by resource",
	}, []string{"entity"})

	EntityCreateFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "entity_create_failures_total",
		Help: "Total number of failed entity creations, by resource and reason",
	}, []string{"entity", "reason"})

	ListRowsReturnedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "list_rows_returned_total",
		Help: "Total number of rows returned by list endpoints, by resource",
	}, []string{"entity"})

	OrderValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_validation_failures_total",
		Help: "Total number of order creations rejected for an invalid reference",
	}, []string{"field"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
