// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/panbord/signage/internal/metrics"
	"github.com/panbord/signage/internal/season"
)

// stockOutProduct is the Jumbo Donut, the product the stock-out scenario
// sells down to empty shelves.
const stockOutProduct = 102020

// step applies one scenario mutation to the controller.
type step func(c *Controller)

// script is a finite ordered step list plus its playback interval.
type script struct {
	id    Scenario
	steps []step
}

type command struct {
	scenario Scenario
	reply    chan error
}

// Player runs auto-play scenarios against a Controller. All stepping
// happens on the single Serve goroutine, so no two steps ever run
// concurrently and starting a new scenario implicitly cancels the prior
// one before its first step.
type Player struct {
	ctrl   *Controller
	logger zerolog.Logger
	cmds   chan command

	// intervals is keyed by scenario; tests shorten these.
	intervals map[Scenario]time.Duration
}

// NewPlayer builds a Player with the stock playback speeds.
func NewPlayer(ctrl *Controller, logger zerolog.Logger) *Player {
	return &Player{
		ctrl:   ctrl,
		logger: logger.With().Str("component", "scenario").Logger(),
		cmds:   make(chan command),
		intervals: map[Scenario]time.Duration{
			ScenarioDayFlow:       2000 * time.Millisecond,
			ScenarioStockOut:      1500 * time.Millisecond,
			ScenarioSeasonCompare: 2500 * time.Millisecond,
		},
	}
}

// Start begins the given scenario, stopping any scenario already playing.
// The first step is applied before Start returns. Blocks until the Serve
// loop accepts the command or ctx expires.
func (p *Player) Start(ctx context.Context, sc Scenario) error {
	if sc == ScenarioNone {
		return fmt.Errorf("no scenario named")
	}
	return p.send(ctx, sc)
}

// Stop cancels the active scenario, if any. Simulated overrides applied
// by completed steps stay in place.
func (p *Player) Stop(ctx context.Context) error {
	return p.send(ctx, ScenarioNone)
}

func (p *Player) send(ctx context.Context, sc Scenario) error {
	cmd := command{scenario: sc, reply: make(chan error, 1)}
	select {
	case p.cmds <- cmd:
	case <-ctx.Done():
		return fmt.Errorf("scenario player unavailable: %w", ctx.Err())
	}
	select {
	case err := <-cmd.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Serve runs the playback loop until ctx is canceled. It is the only
// goroutine that applies steps. Intended to run under the supervisor.
func (p *Player) Serve(ctx context.Context) error {
	var (
		active script
		idx    int
		ticker *time.Ticker
		tickC  <-chan time.Time
	)

	halt := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tickC = nil, nil
		}
		if active.id != ScenarioNone {
			p.logger.Info().Str("scenario", string(active.id)).Msg("scenario stopped")
			active = script{}
			metrics.ScenarioActive.Set(0)
			p.ctrl.setScenario(ScenarioNone, 0, 0)
		}
	}

	for {
		select {
		case <-ctx.Done():
			halt()
			return ctx.Err()

		case cmd := <-p.cmds:
			halt()
			if cmd.scenario == ScenarioNone {
				cmd.reply <- nil
				continue
			}
			sc, err := p.scriptFor(cmd.scenario)
			if err != nil {
				cmd.reply <- err
				continue
			}
			active, idx = sc, 0
			active.steps[0](p.ctrl)
			metrics.ScenarioActive.Set(1)
			metrics.RecordScenarioStep(string(active.id))
			p.ctrl.setScenario(active.id, 1, len(active.steps))
			ticker = time.NewTicker(p.intervals[active.id])
			tickC = ticker.C
			p.logger.Info().
				Str("scenario", string(active.id)).
				Int("steps", len(active.steps)).
				Msg("scenario started")
			cmd.reply <- nil

		case <-tickC:
			idx++
			if idx >= len(active.steps) {
				halt()
				continue
			}
			active.steps[idx](p.ctrl)
			metrics.RecordScenarioStep(string(active.id))
			p.ctrl.setScenario(active.id, idx+1, len(active.steps))
		}
	}
}

func (p *Player) scriptFor(sc Scenario) (script, error) {
	switch sc {
	case ScenarioDayFlow:
		return dayFlowScript(), nil
	case ScenarioStockOut:
		return stockOutScript(), nil
	case ScenarioSeasonCompare:
		return seasonCompareScript(), nil
	default:
		return script{}, fmt.Errorf("unknown scenario %q", sc)
	}
}

// dayFlowScript walks the simulated hour from open through the evening
// slot, one hour per step.
func dayFlowScript() script {
	hours := []int{9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
	steps := make([]step, len(hours))
	for i, h := range hours {
		hour := h
		steps[i] = func(c *Controller) { _ = c.SetSimulatedHour(&hour) }
	}
	return script{id: ScenarioDayFlow, steps: steps}
}

// stockOutScript resets the shelves, then sells the Jumbo Donut down to
// zero so the display walks through low-stock and sold-out states.
func stockOutScript() script {
	quantities := []int{10, 8, 6, 4, 3, 2, 1, 0}
	steps := make([]step, len(quantities))
	for i, q := range quantities {
		qty := q
		first := i == 0
		steps[i] = func(c *Controller) {
			if first {
				c.ResetInventory()
			}
			c.SetQuantity(stockOutProduct, qty)
		}
	}
	return script{id: ScenarioStockOut, steps: steps}
}

// seasonCompareScript cycles the simulated season through the year.
func seasonCompareScript() script {
	seasons := []season.ID{season.Spring, season.Summer, season.Autumn, season.Winter}
	steps := make([]step, len(seasons))
	for i, id := range seasons {
		sid := id
		steps[i] = func(c *Controller) { _ = c.SetSimulatedSeason(&sid) }
	}
	return script{id: ScenarioSeasonCompare, steps: steps}
}
