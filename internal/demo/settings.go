// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

// Package demo owns the mutable demo session: simulated time and season
// overrides, score weights, the inventory snapshot, and the auto-play
// scenario player that steps them on a timer.
package demo

import (
	"fmt"
	"time"

	"github.com/panbord/signage/internal/recommend"
	"github.com/panbord/signage/internal/season"
)

// Scenario identifies an auto-play script.
type Scenario string

const (
	// ScenarioNone means no scenario is active.
	ScenarioNone Scenario = ""

	// ScenarioDayFlow walks the simulated hour from open to last call.
	ScenarioDayFlow Scenario = "dayFlow"

	// ScenarioStockOut sells the Jumbo Donut down to empty shelves.
	ScenarioStockOut Scenario = "stockOut"

	// ScenarioSeasonCompare cycles the simulated season through the year.
	ScenarioSeasonCompare Scenario = "seasonCompare"
)

// ParseScenario maps an identifier to a Scenario.
func ParseScenario(s string) (Scenario, error) {
	switch Scenario(s) {
	case ScenarioDayFlow, ScenarioStockOut, ScenarioSeasonCompare:
		return Scenario(s), nil
	default:
		return ScenarioNone, fmt.Errorf("unknown scenario %q", s)
	}
}

// Settings is one immutable snapshot of the demo session state. Mutations
// go through the Controller, which swaps whole snapshots.
type Settings struct {
	// SimulatedHour overrides the wall-clock hour when non-nil.
	SimulatedHour *int `json:"simulated_hour"`

	// SimulatedSeason overrides the calendar season when non-nil.
	SimulatedSeason *season.ID `json:"simulated_season"`

	// Weights are the active scoring coefficients.
	Weights recommend.Weights `json:"weights"`

	// AutoPlay reports whether a scenario is currently stepping.
	AutoPlay bool `json:"auto_play"`

	// ActiveScenario is the running scenario, or ScenarioNone.
	ActiveScenario Scenario `json:"active_scenario"`

	// ScenarioStep and ScenarioTotal track auto-play progress
	// (1-based step over total, both zero when idle).
	ScenarioStep  int `json:"scenario_step"`
	ScenarioTotal int `json:"scenario_total"`
}

// EffectiveHour resolves the hour the display should render for: the
// simulated override when set, otherwise the wall clock.
func (s Settings) EffectiveHour(now time.Time) int {
	if s.SimulatedHour != nil {
		return *s.SimulatedHour
	}
	return now.Hour()
}

// EffectiveSeason resolves the season the same way, falling back to the
// calendar month.
func (s Settings) EffectiveSeason(now time.Time) season.ID {
	if s.SimulatedSeason != nil {
		return *s.SimulatedSeason
	}
	return season.ForMonth(int(now.Month())).ID
}
