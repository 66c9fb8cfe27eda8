// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package observability provides Prometheus metrics for the storefront.
//
// Metrics are exposed via the /metrics endpoint. All metric operations are
// thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const metricsNamespace = "shopgrid"

// Subsystem for the HTTP API
const apiSubsystem = "api"

// APIMetrics holds the Prometheus metrics for the storefront API.
//
// # Fields
//
//   - RequestsTotal: Counter of API requests by route, method, and status class
//   - RequestDurationSeconds: Histogram of request latency by route
//   - EntitiesTotal: Gauge of stored records per entity collection
//   - MutationsTotal: Counter of entity mutations by entity and operation
type APIMetrics struct {
	// RequestsTotal counts requests by route template, method, and status.
	// Labels: route, method, status
	RequestsTotal *prometheus.CounterVec

	// RequestDurationSeconds measures request latency.
	// Labels: route, method
	RequestDurationSeconds *prometheus.HistogramVec

	// EntitiesTotal tracks how many records each store currently holds.
	// Labels: entity (users, products, orders)
	EntitiesTotal *prometheus.GaugeVec

	// MutationsTotal counts mutating operations applied to the stores.
	// Labels: entity, operation (create, update, delete, status, add_item, adjust_stock)
	MutationsTotal *prometheus.CounterVec
}

// DefaultMetrics is the singleton instance of APIMetrics.
// Initialized by InitMetrics().
var DefaultMetrics *APIMetrics

// InitMetrics creates and registers all storefront metrics. Call once at
// startup; calling twice panics on duplicate registration.
func InitMetrics() *APIMetrics {
	DefaultMetrics = &APIMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: apiSubsystem,
				Name:      "requests_total",
				Help:      "Total API requests by route, method, and status",
			},
			[]string{"route", "method", "status"},
		),

		RequestDurationSeconds: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: apiSubsystem,
				Name:      "request_duration_seconds",
				Help:      "Request latency in seconds by route and method",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"route", "method"},
		),

		EntitiesTotal: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: apiSubsystem,
				Name:      "entities_total",
				Help:      "Number of records currently held per entity store",
			},
			[]string{"entity"},
		),

		MutationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: apiSubsystem,
				Name:      "mutations_total",
				Help:      "Total mutating operations by entity and operation",
			},
			[]string{"entity", "operation"},
		),
	}

	return DefaultMetrics
}

// RecordRequest records a completed API request.
func (m *APIMetrics) RecordRequest(route, method, status string, seconds float64) {
	m.RequestsTotal.WithLabelValues(route, method, status).Inc()
	m.RequestDurationSeconds.WithLabelValues(route, method).Observe(seconds)
}

// RecordMutation counts one mutating operation against an entity store.
func (m *APIMetrics) RecordMutation(entity, operation string) {
	m.MutationsTotal.WithLabelValues(entity, operation).Inc()
}

// SetEntityCount publishes the current size of an entity store.
func (m *APIMetrics) SetEntityCount(entity string, n int) {
	m.EntitiesTotal.WithLabelValues(entity).Set(float64(n))
}
