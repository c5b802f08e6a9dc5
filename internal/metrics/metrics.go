// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

// Package metrics exposes Prometheus instrumentation for the HTTP
// surface, the recommendation engine, the demo inventory, and the
// scenario player. All collectors register on the default registry and
// are served at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP surface.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	RateLimitRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limit_rejections_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// Authentication.
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "total number of login attempts",
		},
		[]string{"outcome"}, // "success", "failure"
	)

	// Recommendation engine.
	DisplaysBuilt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "signage_displays_built_total",
			Help: "Total number of display snapshots assembled",
		},
	)

	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Total number of recommendations returned to clients",
		},
		[]string{"slot", "season"},
	)

	// Demo inventory.
	SimulatedSales = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_simulated_sales_total",
			Help: "Total number of simulated register sales",
		},
	)

	InventoryResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_resets_total",
			Help: "Total number of inventory reseeds",
		},
	)

	OutOfStockProducts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_out_of_stock_products",
			Help: "Current number of sold-out products",
		},
	)

	// Scenario player.
	ScenarioSteps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scenario_steps_total",
			Help: "Total number of scenario steps applied",
		},
		[]string{"scenario"},
	)

	ScenarioActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "scenario_active",
			Help: "Whether an auto-play scenario is currently running (0 or 1)",
		},
	)

	// WebSocket hub.
	WebSocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of connected signage screens",
		},
	)

	WebSocketBroadcasts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_broadcasts_total",
			Help: "Total number of display snapshots broadcast to screens",
		},
	)
)

// RecordHTTPRequest records one completed request.
func RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordLogin records a login attempt outcome.
func RecordLogin(success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	LoginAttempts.WithLabelValues(outcome).Inc()
}

// RecordRecommendations records recommendations served for a context.
func RecordRecommendations(slot, season string, count int) {
	RecommendationsServed.WithLabelValues(slot, season).Add(float64(count))
}

// RecordScenarioStep records one applied scenario step.
func RecordScenarioStep(scenario string) {
	ScenarioSteps.WithLabelValues(scenario).Inc()
}
