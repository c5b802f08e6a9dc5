// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

// Package main is the entry point for the Panbord signage server.
//
// Panbord drives a bakery storefront digital sign: it scores the product
// catalog against the time of day, the season and the shelf state, serves
// the ranked display over a REST API, and pushes fresh snapshots to
// connected screens over a websocket. A control panel mutates demo state
// (simulated hour and season, scoring weights, shelf quantities) and can
// auto-play scripted scenarios.
//
// # Startup order
//
//  1. Configuration: Koanf v2 layered load (defaults, config.yaml, SIGNAGE_* env)
//  2. Logging: zerolog per the logging config
//  3. Catalog and demo state: embedded product data, seeded inventory
//  4. Recommendation engine, cross-sell advisor, display builder
//  5. Authentication: JWT manager and bcrypt credential store
//  6. Supervisor tree: websocket hub, scenario player, HTTP server
//
// # Signal handling
//
// SIGINT and SIGTERM trigger graceful shutdown: the HTTP server drains
// in-flight requests within server.shutdown_timeout, the hub closes every
// screen connection, and the scenario player halts its ticker.
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/panbord/signage/internal/api"
	"github.com/panbord/signage/internal/auth"
	"github.com/panbord/signage/internal/catalog"
	"github.com/panbord/signage/internal/config"
	"github.com/panbord/signage/internal/crosssell"
	"github.com/panbord/signage/internal/demo"
	"github.com/panbord/signage/internal/logging"
	"github.com/panbord/signage/internal/recommend"
	"github.com/panbord/signage/internal/season"
	"github.com/panbord/signage/internal/signage"
	"github.com/panbord/signage/internal/supervisor"
	"github.com/panbord/signage/internal/supervisor/services"
	ws "github.com/panbord/signage/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logOutput := os.Stderr
	if cfg.Logging.Output == "stdout" {
		logOutput = os.Stdout
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: logOutput,
	})

	logging.Info().
		Str("addr", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)).
		Str("auth_mode", cfg.Auth.Mode).
		Msg("Starting Panbord signage server")

	logger := logging.Logger()

	cat, err := catalog.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load product catalog")
	}
	logging.Info().Int("products", cat.Len()).Msg("Catalog loaded")

	var rng *rand.Rand
	if cfg.Demo.RandomSeed != 0 {
		rng = rand.New(rand.NewSource(cfg.Demo.RandomSeed))
	}

	ctrl := demo.NewController(cat, rng, cfg.Recommend.Weights, logger)
	applyConfigOverrides(cfg, ctrl)

	engine := recommend.NewEngine(cat, logger)
	advisor, err := crosssell.NewAdvisor(cat, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load co-purchase data")
	}
	builder := signage.NewBuilder(cat, engine, advisor, logger)
	player := demo.NewPlayer(ctrl, logger)
	hub := ws.NewHub()

	creds, err := auth.NewCredentialStore(cfg.Auth.Username, cfg.Auth.Password)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize credential store")
	}
	jwtManager, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
	}
	if cfg.Auth.Mode == auth.ModeNone {
		logging.Warn().Msg("Authentication is DISABLED (auth.mode=none); control endpoints are open")
	}

	handler := api.NewHandler(api.HandlerDeps{
		Config:      cfg,
		Catalog:     cat,
		Engine:      engine,
		Advisor:     advisor,
		Builder:     builder,
		Controller:  ctrl,
		Player:      player,
		Hub:         hub,
		Credentials: creds,
		JWT:         jwtManager,
		Logger:      logger,
	})

	// Every state change pushes a fresh display to connected screens.
	ctrl.OnChange(handler.BroadcastDisplay)

	router := api.NewRouter(handler, auth.NewMiddleware(jwtManager, cfg.Auth.Mode, api.WriteUnauthorized), cfg)
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddMessagingService(services.NewScenarioPlayerService(player))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("Services added to supervisor tree")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Signage server stopped gracefully")
}

// applyConfigOverrides pins the simulated hour and season from config so a
// kiosk can boot straight into a fixed demo state.
func applyConfigOverrides(cfg *config.Config, ctrl *demo.Controller) {
	if cfg.Demo.SimulatedHour >= 0 {
		hour := cfg.Demo.SimulatedHour
		if err := ctrl.SetSimulatedHour(&hour); err != nil {
			logging.Warn().Err(err).Msg("Ignoring configured simulated hour")
		}
	}
	if cfg.Demo.SimulatedSeason != "" {
		if id, ok := season.Parse(cfg.Demo.SimulatedSeason); ok {
			if err := ctrl.SetSimulatedSeason(&id); err != nil {
				logging.Warn().Err(err).Msg("Ignoring configured simulated season")
			}
		} else {
			logging.Warn().Str("season", cfg.Demo.SimulatedSeason).Msg("Unknown configured season")
		}
	}
}
