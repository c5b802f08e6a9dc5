// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package services

import (
	"context"
)

// ScenarioRunner matches *demo.Player's Serve method without importing the
// demo package.
type ScenarioRunner interface {
	Serve(ctx context.Context) error
}

// ScenarioPlayerService runs the scenario auto-play loop under
// supervision. A restart after a crash comes back idle: stopping the loop
// clears the active scenario, so no stale ticker survives.
type ScenarioPlayerService struct {
	player ScenarioRunner
	name   string
}

// NewScenarioPlayerService wraps player as a supervised service.
func NewScenarioPlayerService(player ScenarioRunner) *ScenarioPlayerService {
	return &ScenarioPlayerService{player: player, name: "scenario-player"}
}

// Serve implements suture.Service.
func (s *ScenarioPlayerService) Serve(ctx context.Context) error {
	return s.player.Serve(ctx)
}

// String identifies the service in supervisor logs.
func (s *ScenarioPlayerService) String() string {
	return s.name
}
