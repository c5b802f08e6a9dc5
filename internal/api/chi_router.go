// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/panbord/signage/internal/auth"
	"github.com/panbord/signage/internal/config"
	"github.com/panbord/signage/internal/metrics"
	"github.com/panbord/signage/internal/middleware"
)

// loginRateLimit bounds login attempts per IP to slow brute forcing.
const (
	loginRateLimit  = 10
	loginRateWindow = 5 * time.Minute
)

// Router assembles the HTTP routing tree.
type Router struct {
	handler *Handler
	authMW  *auth.Middleware
	cfg     *config.Config
}

// NewRouter creates a Router around the handler and auth middleware.
func NewRouter(handler *Handler, authMW *auth.Middleware, cfg *config.Config) *Router {
	return &Router{handler: handler, authMW: authMW, cfg: cfg}
}

// SetupChi builds the full routing tree with the global middleware stack.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   router.cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           86400,
	}))

	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/ws", router.handler.WebSocket)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.SecurityHeaders)
		r.Use(middleware.Prometheus)
		r.Use(router.rateLimit(router.cfg.Server.RateLimit, router.cfg.Server.RateLimitWindow))

		r.Get("/health", router.handler.Health)

		r.With(router.rateLimit(loginRateLimit, loginRateWindow)).
			Post("/auth/login", router.handler.Login)

		// Read endpoints the screen polls; no auth required.
		r.Get("/signage", router.handler.Signage)
		r.Get("/recommendations", router.handler.Recommendations)
		r.Get("/products", router.handler.Products)
		r.Get("/products/{code}", router.handler.Product)
		r.Get("/inventory", router.handler.Inventory)
		r.Get("/inventory/summary", router.handler.InventorySummary)
		r.Get("/inventory/low", router.handler.InventoryLow)
		r.Get("/inventory/out", router.handler.InventoryOut)
		r.Get("/inventory/overstocked", router.handler.InventoryOverstocked)
		r.Get("/crosssell/improvements", router.handler.CrossSellImprovements)
		r.Get("/crosssell/network", router.handler.CrossSellNetwork)
		r.Get("/crosssell/{code}", router.handler.CrossSell)
		r.Get("/crosssell/{code}/best", router.handler.BestCrossSell)

		// Control endpoints mutate demo state and require auth.
		r.Group(func(r chi.Router) {
			r.Use(router.authMW.Require)

			r.Put("/inventory/{code}/quantity", router.handler.SetQuantity)
			r.Post("/inventory/{code}/sell", router.handler.Sell)
			r.Post("/inventory/{code}/restock", router.handler.Restock)
			r.Post("/inventory/reset", router.handler.ResetInventory)

			r.Get("/demo/settings", router.handler.DemoSettings)
			r.Put("/demo/hour", router.handler.SetHour)
			r.Put("/demo/season", router.handler.SetSeason)
			r.Put("/demo/weights", router.handler.SetWeights)
			r.Post("/demo/weights/reset", router.handler.ResetWeights)
			r.Post("/demo/scenario/{id}/start", router.handler.StartScenario)
			r.Post("/demo/scenario/stop", router.handler.StopScenario)
		})
	})

	return r
}

// rateLimit builds an IP-keyed limiter that records rejections and answers
// with the standard error envelope.
func (router *Router) rateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RateLimitRejections.Inc()
			NewResponseWriter(w, r).Error(http.StatusTooManyRequests, ErrCodeTooManyRequests, "rate limit exceeded")
		}),
	)
}
